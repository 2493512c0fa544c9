package generator

import "github.com/schemakit/schemakit/types"

// Lang selects the target language for emitted code.
type Lang string

const (
	Go         Lang = "go"
	Java       Lang = "java"
	Python     Lang = "python"
	TypeScript Lang = "typescript"
)

var langTypes = map[Lang]map[types.Kind]string{
	Go: {
		types.String:   "string",
		types.Char:     "string",
		types.Integer:  "int64",
		types.Numeric:  "float64",
		types.Date:     "time.Time",
		types.Time:     "time.Time",
		types.DateTime: "time.Time",
		types.Boolean:  "bool",
		types.Binary:   "[]byte",
	},
	Java: {
		types.String:   "String",
		types.Char:     "String",
		types.Integer:  "Long",
		types.Numeric:  "BigDecimal",
		types.Date:     "LocalDate",
		types.Time:     "LocalTime",
		types.DateTime: "LocalDateTime",
		types.Boolean:  "Boolean",
		types.Binary:   "byte[]",
	},
	Python: {
		types.String:   "str",
		types.Char:     "str",
		types.Integer:  "int",
		types.Numeric:  "Decimal",
		types.Date:     "date",
		types.Time:     "time",
		types.DateTime: "datetime",
		types.Boolean:  "bool",
		types.Binary:   "bytes",
	},
	TypeScript: {
		types.String:   "string",
		types.Char:     "string",
		types.Integer:  "number",
		types.Numeric:  "number",
		types.Date:     "Date",
		types.Time:     "string",
		types.DateTime: "Date",
		types.Boolean:  "boolean",
		types.Binary:   "Uint8Array",
	},
}

// TypeName maps a parsed column type to the target language's type.
// TINYINT(1) follows the mysql convention of meaning boolean.
func TypeName(lang Lang, info types.TypeInfo) string {
	kind := types.KindOf(info.Name)
	if info.Name == "TINYINT" && info.Length == "1" {
		kind = types.Boolean
	}
	m, ok := langTypes[lang]
	if !ok {
		m = langTypes[Go]
	}
	return m[kind]
}
