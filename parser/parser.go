package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/schemakit/schemakit/types"
)

// ErrNoCreateTable is returned when the input contains no statement of the
// shape CREATE TABLE <name> ( ... ). It is the parser's only fatal
// condition; every other irregularity is absorbed so that one malformed
// clause never blocks extraction of the rest of a multi-table input.
var ErrNoCreateTable = errors.New("no CREATE TABLE statement found")

var (
	createHeaderRe = regexp.MustCompile(`(?is)CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?([` + "`" + `"\w.]+)\s*\(`)
	tableCommentRe = regexp.MustCompile(`(?is)\bCOMMENT\s*=?\s*(?:'([^']*)'|"([^"]*)")`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Parse extracts every CREATE TABLE statement from free-form DDL text and
// returns the tables in statement order. Duplicate table names are kept as
// distinct records. Interspersed SQL the parser does not understand is
// ignored.
func Parse(sql string) ([]*types.Table, error) {
	text := stripComments(sql)

	var tables []*types.Table
	for _, loc := range createHeaderRe.FindAllStringSubmatchIndex(text, -1) {
		name := tableName(text[loc[2]:loc[3]])
		if name == "" {
			continue
		}

		body, end, ok := captureBody(text, loc[1])
		if !ok {
			log.Debug().Str("table", name).Msg("unbalanced parentheses, skipping statement")
			continue
		}

		tables = append(tables, buildTable(name, body, statementTail(text, end)))
	}

	if len(tables) == 0 {
		return nil, ErrNoCreateTable
	}
	return tables, nil
}

func buildTable(name, body, tail string) *types.Table {
	table := &types.Table{Name: name, Comment: tableComment(tail)}
	for _, clause := range splitClauses(body) {
		switch classifyClause(clause) {
		case clauseColumn:
			if col := parseColumn(clause); col != nil {
				table.Columns = append(table.Columns, col)
			}
		case clauseConstraint:
			// table-level keys, indexes and checks are not columns
		case clauseUnrecognized:
			log.Debug().Str("table", name).Str("clause", clause).Msg("skipping unrecognized clause")
		}
	}
	return table
}

// stripComments removes block comments and whole-line comments before
// statement scanning. Comment lines mentioning 表 are kept verbatim: they
// usually carry an author-written table description.
func stripComments(sql string) string {
	text := blockCommentRe.ReplaceAllString(sql, "")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if (strings.HasPrefix(trimmed, "--") || strings.HasPrefix(trimmed, "#")) &&
			!strings.Contains(trimmed, "表") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// captureBody scans from the character after the opening parenthesis to
// its balanced close, with the same quote handling as the clause splitter.
// Returns the body, the index just past the closing parenthesis, and
// whether a balanced close was found.
func captureBody(text string, start int) (string, int, bool) {
	depth := 1
	var quote rune
	for i, ch := range text[start:] {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			depth--
			if depth == 0 {
				return text[start : start+i], start + i + 1, true
			}
		}
	}
	return "", 0, false
}

// statementTail is the table-options text between the closing parenthesis
// and the statement terminator.
func statementTail(text string, from int) string {
	tail := text[from:]
	if i := strings.IndexByte(tail, ';'); i >= 0 {
		tail = tail[:i]
	}
	return tail
}

func tableComment(tail string) string {
	m := tableCommentRe.FindStringSubmatch(tail)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

func tableName(raw string) string {
	raw = strings.Trim(raw, "`\"")
	if i := strings.LastIndex(raw, "."); i >= 0 {
		raw = raw[i+1:]
	}
	return strings.Trim(raw, "`\"")
}
