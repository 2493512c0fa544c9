package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/schemakit/schemakit/types"
)

var (
	// name, type token (with optional parenthesized length), constraint tail
	columnDefRe = regexp.MustCompile("(?s)^[`\"']?([\\w$]+)[`\"']?\\s+([A-Za-z]\\w*(?:\\s*\\([^)]*\\))?)\\s*(.*)$")

	defaultValueRe = regexp.MustCompile(`(?i)\bDEFAULT\s+('[^']*'|"[^"]*"|\S+)`)
	commentTextRe  = regexp.MustCompile(`(?i)\bCOMMENT\s+(?:'([^']*)'|"([^"]*)")`)

	decimalIntRe  = regexp.MustCompile(`^-?\d+$`)
	decimalFracRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// parseColumn extracts one column record from a classified column clause.
// Returns nil when the clause does not split into name, type and tail.
// The COMMENT text is located first and excluded from the flag and DEFAULT
// scans, so words like DEFAULT or PRIMARY KEY inside a comment never leak
// into the column record.
func parseColumn(clause string) *types.Column {
	m := columnDefRe.FindStringSubmatch(strings.TrimSpace(clause))
	if m == nil {
		return nil
	}
	name, typeToken, tail := m[1], m[2], m[3]

	constraints := tail
	var comment string
	if cm := commentTextRe.FindStringSubmatchIndex(tail); cm != nil {
		constraints = tail[:cm[0]]
		if cm[2] >= 0 {
			comment = tail[cm[2]:cm[3]]
		} else {
			comment = tail[cm[4]:cm[5]]
		}
	}
	upper := strings.ToUpper(constraints)

	col := &types.Column{
		Name:          name,
		Type:          normalizeType(typeToken),
		Nullable:      !strings.Contains(upper, "NOT NULL"),
		AutoIncrement: strings.Contains(upper, "AUTO_INCREMENT"),
		PrimaryKey:    strings.Contains(upper, "PRIMARY KEY"),
		Comment:       comment,
		Enum:          DecodeEnum(comment),
	}

	if dm := defaultValueRe.FindStringSubmatch(constraints); dm != nil {
		col.Default = parseDefault(dm[1])
	}
	return col
}

// parseDefault strips the quoting from a DEFAULT literal and coerces plain
// decimal numerals to numbers. Anything else stays a string: a leading zero
// is not octal here and 0x10 is not sixteen. CURRENT_TIMESTAMP is kept as a
// string sentinel, never evaluated; DEFAULT NULL means no default at all.
func parseDefault(token string) interface{} {
	if len(token) >= 2 && (token[0] == '\'' || token[0] == '"') && token[len(token)-1] == token[0] {
		token = token[1 : len(token)-1]
	}
	switch {
	case strings.EqualFold(token, "NULL"):
		return nil
	case strings.EqualFold(token, "CURRENT_TIMESTAMP"):
		return "CURRENT_TIMESTAMP"
	}
	if decimalIntRe.MatchString(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return n
		}
	}
	if decimalFracRe.MatchString(token) {
		if f, err := cast.ToFloat64E(token); err == nil {
			return f
		}
	}
	return token
}
