package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schemakit/schemakit/logger"
)

var (
	Version string

	rootCmd = &cobra.Command{
		Use:   "schemakit",
		Short: "schemakit parses CREATE TABLE DDL into a neutral schema and feeds it to generators",
		Long: "schemakit extracts table structure from free-form SQL DDL, including the\n" +
			"enum micro-format embedded in column comments, and renders the result as\n" +
			"JSON, YAML, markdown documentation or templated source code.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Setup(viper.GetString("log.level"), viper.GetString("log.format"))
		},
	}

	cfgFile string
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().String("log-format", logger.FormatText,
		fmt.Sprintf("logging format [%s|%s]", logger.FormatText, logger.FormatJSON),
	)
	rootCmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("logging level [%s|%s|%s|%s]",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)

	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if Version != "" {
		rootCmd.Version = Version
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(introspectCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}
	viper.SetEnvPrefix("SCHEMAKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// readInput concatenates the named DDL files, or reads stdin when no file
// is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(data), nil
	}

	var sb strings.Builder
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", errors.Wrapf(err, "read %q", name)
		}
		sb.Write(data)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
