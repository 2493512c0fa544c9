package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// Setup configures the global zerolog logger with the requested level and
// output format.
func Setup(levelStr string, format string) error {
	var level zerolog.Level
	switch levelStr {
	case zerolog.LevelDebugValue:
		level = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		level = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		level = zerolog.WarnLevel
	case zerolog.LevelErrorValue:
		level = zerolog.ErrorLevel
	default:
		return fmt.Errorf("unknown log level %q", levelStr)
	}

	var w io.Writer
	switch format {
	case FormatJSON:
		w = os.Stderr
	case FormatText:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}
