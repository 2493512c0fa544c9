package parser

import (
	"regexp"
	"strings"

	"github.com/schemakit/schemakit/types"
)

var typeTokenRe = regexp.MustCompile(`^([A-Za-z]+)\s*(?:\(([^)]*)\))?`)

// normalizeType converts a raw type token such as VARCHAR(255) or
// DECIMAL(10,2) into a dialect-independent record. The parenthesized
// length spec is kept verbatim; consumers needing precision and scale
// split it themselves. Tokens that do not start with an alphabetic run
// are kept whole as the uppercased name, so normalization never fails.
func normalizeType(token string) types.TypeInfo {
	info := types.TypeInfo{Original: token}

	m := typeTokenRe.FindStringSubmatch(token)
	if m == nil {
		info.Name = strings.ToUpper(strings.TrimSpace(token))
		return info
	}
	info.Name = strings.ToUpper(m[1])
	info.Length = strings.TrimSpace(m[2])
	return info
}
