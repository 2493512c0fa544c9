package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/generator"
	"github.com/schemakit/schemakit/parser"
	"github.com/schemakit/schemakit/types"
)

var (
	parseFormat string
	parseOutput string

	parseCmd = &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse CREATE TABLE DDL and print the schema as json or yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(args)
			if err != nil {
				return err
			}

			tables, err := parser.Parse(sql)
			if err != nil {
				return err
			}
			log.Info().Int("tables", len(tables)).Msg("parsed input")

			return withOutput(parseOutput, func(w io.Writer) error {
				return encodeTables(w, parseFormat, tables)
			})
		},
	}
)

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format [json|yaml]")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output file (default stdout)")
}

func encodeTables(w io.Writer, format string, tables []*types.Table) error {
	switch format {
	case "json":
		return generator.JSON(w, tables)
	case "yaml":
		return generator.YAML(w, tables)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// withOutput runs fn against the named file, or stdout when path is empty.
func withOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer f.Close()
	return fn(f)
}
