package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/generator"
	"github.com/schemakit/schemakit/parser"
)

var (
	genTemplate string
	genLang     string
	genOutput   string

	genCmd = &cobra.Command{
		Use:   "gen [file...]",
		Short: "Emit source code for the parsed schema through a template",
		Long: "Renders every parsed table through a text/template with sprig functions.\n" +
			"Without --template a Go struct per table is emitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(args)
			if err != nil {
				return err
			}

			tables, err := parser.Parse(sql)
			if err != nil {
				return err
			}

			name, text := "go-struct", generator.GoStructTemplate
			if genTemplate != "" {
				data, err := os.ReadFile(genTemplate)
				if err != nil {
					return errors.Wrapf(err, "read template %q", genTemplate)
				}
				name, text = genTemplate, string(data)
			}

			tmpl, err := generator.NewTemplate(name, text, generator.Lang(genLang))
			if err != nil {
				return err
			}

			return withOutput(genOutput, func(w io.Writer) error {
				return tmpl.RenderAll(w, tables)
			})
		},
	}
)

func init() {
	genCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "template file (default built-in Go struct template)")
	genCmd.Flags().StringVarP(&genLang, "lang", "l", string(generator.Go), "target language for type mapping [go|java|python|typescript]")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default stdout)")
}
