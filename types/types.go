package types

// TypeInfo is the dialect-independent description of a column type.
// Length keeps the raw parenthesized spec ("10", "10,2") because precision
// and scale are interpreted differently by each consumer.
type TypeInfo struct {
	Name     string `json:"name" yaml:"name"`
	Length   string `json:"length,omitempty" yaml:"length,omitempty"`
	Original string `json:"originalType" yaml:"originalType"`
}

// EnumEntry is one value-label pair decoded from an enum comment marker.
type EnumEntry struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Column struct {
	Name          string      `json:"name" yaml:"name"`
	Type          TypeInfo    `json:"type" yaml:"type"`
	Nullable      bool        `json:"nullable" yaml:"nullable"`
	Default       interface{} `json:"default,omitempty" yaml:"default,omitempty"`
	AutoIncrement bool        `json:"autoIncrement" yaml:"autoIncrement"`
	PrimaryKey    bool        `json:"primaryKey" yaml:"primaryKey"`
	Comment       string      `json:"comment" yaml:"comment"`
	Enum          []EnumEntry `json:"enum,omitempty" yaml:"enum,omitempty"`
}

type Table struct {
	Name    string    `json:"name" yaml:"name"`
	Comment string    `json:"comment" yaml:"comment"`
	Columns []*Column `json:"columns" yaml:"columns"`
}
