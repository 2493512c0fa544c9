package parser

import "strings"

// splitClauses splits a statement body into clauses on top-level commas.
// A single left-to-right scan tracks the opening quote character and the
// parenthesis depth, so a comma inside DECIMAL(10,2) or inside '0,00'
// never terminates a clause. Parens inside quotes are ignored.
func splitClauses(body string) []string {
	var (
		clauses []string
		buf     strings.Builder
		quote   rune // opening quote character, 0 when outside quotes
		depth   int
	)

	for _, ch := range body {
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
		case ch == ',' && depth == 0:
			clauses = append(clauses, strings.TrimSpace(buf.String()))
			buf.Reset()
			continue
		}
		buf.WriteRune(ch)
	}

	if last := strings.TrimSpace(buf.String()); last != "" {
		clauses = append(clauses, last)
	}
	return clauses
}
