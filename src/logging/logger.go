package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line
const ServiceName = "vehicle-registry"

// Config holds logging configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // json, pretty
	Output io.Writer // defaults to stdout
}

// Setup initializes the global logger
func Setup(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	log.Logger = zerolog.New(output).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// NewLogger creates a component-specific logger
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ComponentLogger returns a logger for a specific component with request ID
func ComponentLogger(component, requestID string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Str("request_id", requestID).
		Logger()
}
