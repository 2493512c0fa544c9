package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/generator"
	"github.com/schemakit/schemakit/parser"
)

var (
	docOutput string

	docCmd = &cobra.Command{
		Use:   "doc [file...]",
		Short: "Render markdown documentation for the parsed schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(args)
			if err != nil {
				return err
			}

			tables, err := parser.Parse(sql)
			if err != nil {
				return err
			}

			return withOutput(docOutput, func(w io.Writer) error {
				return generator.Markdown(w, tables)
			})
		},
	}
)

func init() {
	docCmd.Flags().StringVarP(&docOutput, "output", "o", "", "output file (default stdout)")
}
