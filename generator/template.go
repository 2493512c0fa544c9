package generator

import (
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"github.com/schemakit/schemakit/types"
)

// GoStructTemplate is the default emitter template: one struct per table,
// column comments carried over as trailing comments.
const GoStructTemplate = `type {{ .Name | camelcase }} struct {
{{- range .Columns }}
	{{ .Name | camelcase }} {{ typeName .Type }} ` + "`db:\"{{ .Name }}\" json:\"{{ .Name }}\"`" + `{{ with .Comment }} // {{ . }}{{ end }}
{{- end }}
}
`

// Template renders one parsed table at a time through a text/template
// extended with the sprig function map plus:
//
//	typeName  – column type mapped into the target language
//	kindOf    – neutral kind of a column type
type Template struct {
	tmpl *template.Template
}

func NewTemplate(name, text string, lang Lang) (*Template, error) {
	funcs := template.FuncMap{
		"typeName": func(info types.TypeInfo) string { return TypeName(lang, info) },
		"kindOf":   func(info types.TypeInfo) string { return types.KindOf(info.Name) },
	}
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Funcs(funcs).
		Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parse template %q", name)
	}
	return &Template{tmpl: tmpl}, nil
}

func (t *Template) Render(w io.Writer, table *types.Table) error {
	if err := t.tmpl.Execute(w, table); err != nil {
		return errors.Wrapf(err, "render table %q", table.Name)
	}
	return nil
}

// RenderAll renders every table in order, separated by a blank line.
func (t *Template) RenderAll(w io.Writer, tables []*types.Table) error {
	for i, table := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := t.Render(w, table); err != nil {
			return err
		}
	}
	return nil
}
