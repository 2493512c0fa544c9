package parser

import (
	"regexp"
	"strings"
)

type clauseKind int

const (
	clauseUnrecognized clauseKind = iota
	clauseColumn
	clauseConstraint
)

// Table-level clauses that must not be parsed as columns. KEY, INDEX and
// CHECK keep a trailing space so that columns named key_id or index_no
// are not misclassified.
var constraintPrefixes = []string{
	"PRIMARY KEY",
	"FOREIGN KEY",
	"UNIQUE KEY",
	"KEY ",
	"INDEX ",
	"CONSTRAINT",
	"CHECK ",
}

// A column clause starts with an identifier, optionally backtick- or
// quote-delimited, followed by whitespace.
var columnShapeRe = regexp.MustCompile("^[`\"']?\\w+[`\"']?\\s")

func classifyClause(clause string) clauseKind {
	upper := strings.ToUpper(clause)
	for _, prefix := range constraintPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return clauseConstraint
		}
	}
	if columnShapeRe.MatchString(clause) {
		return clauseColumn
	}
	return clauseUnrecognized
}
