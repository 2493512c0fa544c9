package types

type Kind = string

const (
	String   Kind = "string"
	Char     Kind = "char"
	Integer  Kind = "integer"
	Numeric  Kind = "numeric"
	Date     Kind = "date"
	Time     Kind = "time"
	DateTime Kind = "datetime"
	Boolean  Kind = "boolean"
	Binary   Kind = "binary"
)

var kindMap = map[string]Kind{
	"TINYINT":   Integer,
	"SMALLINT":  Integer,
	"MEDIUMINT": Integer,
	"INT":       Integer,
	"INTEGER":   Integer,
	"BIGINT":    Integer,
	"SERIAL":    Integer,
	"BIT":       Integer,

	"DECIMAL": Numeric,
	"NUMERIC": Numeric,
	"FLOAT":   Numeric,
	"DOUBLE":  Numeric,
	"REAL":    Numeric,

	"CHAR":  Char,
	"NCHAR": Char,

	"VARCHAR":    String,
	"NVARCHAR":   String,
	"TINYTEXT":   String,
	"TEXT":       String,
	"MEDIUMTEXT": String,
	"LONGTEXT":   String,
	"JSON":       String,
	"ENUM":       String,
	"SET":        String,

	"DATE":      Date,
	"TIME":      Time,
	"YEAR":      Date,
	"DATETIME":  DateTime,
	"TIMESTAMP": DateTime,

	"BOOL":    Boolean,
	"BOOLEAN": Boolean,

	"BINARY":     Binary,
	"VARBINARY":  Binary,
	"TINYBLOB":   Binary,
	"BLOB":       Binary,
	"MEDIUMBLOB": Binary,
	"LONGBLOB":   Binary,
}

// KindOf maps an uppercased SQL base type name to its neutral kind.
// Unknown names fall back to String, which is safe for every emitter.
func KindOf(name string) Kind {
	if k, ok := kindMap[name]; ok {
		return k
	}
	return String
}
