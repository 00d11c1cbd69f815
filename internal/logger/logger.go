package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Setup configures the process-wide level and output. format is "json" or "console";
// APP_ENV=dev forces the console writer.
func Setup(level, format string) error {
	return SetupWriter(os.Stdout, level, format)
}

func SetupWriter(out io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.EqualFold(os.Getenv("APP_ENV"), "dev") {
		format = "console"
	}
	switch format {
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "", "json":
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	base = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// New returns a logger tagged with component.
func New(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
