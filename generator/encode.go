package generator

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/schemakit/schemakit/types"
)

// JSON writes the parsed tables as an indented JSON array, the plain
// nested structure downstream generators consume.
func JSON(w io.Writer, tables []*types.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(tables), "encode json")
}

// YAML writes the same structure as a YAML document list.
func YAML(w io.Writer, tables []*types.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tables); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}
