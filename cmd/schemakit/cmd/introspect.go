package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schemakit/schemakit/introspect"
	"github.com/schemakit/schemakit/parser"
)

var (
	introspectFormat string
	introspectOutput string

	introspectCmd = &cobra.Command{
		Use:   "introspect",
		Short: "Pull CREATE TABLE DDL from a live mysql server",
		Long: "Connects with the DSN from --dsn (or mysql.dsn in the config file) and\n" +
			"dumps SHOW CREATE TABLE output for every base table of the schema.\n" +
			"With --format json or yaml the DDL is parsed and encoded instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := viper.GetString("mysql.dsn")
			if dsn == "" {
				return fmt.Errorf("mysql dsn is not configured")
			}

			db, err := introspect.OpenMySQL(dsn)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Warn().Err(err).Msg("closing mysql connection")
				}
			}()

			ddl, err := db.DumpDDL(cmd.Context())
			if err != nil {
				return err
			}

			return withOutput(introspectOutput, func(w io.Writer) error {
				if introspectFormat == "sql" {
					_, err := io.WriteString(w, ddl)
					return err
				}
				tables, err := parser.Parse(ddl)
				if err != nil {
					return err
				}
				return encodeTables(w, introspectFormat, tables)
			})
		},
	}
)

func init() {
	introspectCmd.Flags().String("dsn", "", "mysql DSN, e.g. user:pass@tcp(localhost:3306)/shop")
	introspectCmd.Flags().StringVarP(&introspectFormat, "format", "f", "sql", "output format [sql|json|yaml]")
	introspectCmd.Flags().StringVarP(&introspectOutput, "output", "o", "", "output file (default stdout)")

	if err := viper.BindPFlag("mysql.dsn", introspectCmd.Flags().Lookup("dsn")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
