package tone

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log levels accepted in TONE_LOG_LEVEL
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// NewLogger returns a JSON logger writing to stderr, tagged with component.
// The level comes from TONE_LOG_LEVEL and defaults to INFO.
func NewLogger(component string) zerolog.Logger {
	level, ok := os.LookupEnv("TONE_LOG_LEVEL")
	if !ok {
		level = LogLevelInfo
	}

	levelValue := zerolog.InfoLevel
	switch strings.ToUpper(level) {
	case LogLevelDebug:
		levelValue = zerolog.DebugLevel
	case LogLevelWarn:
		levelValue = zerolog.WarnLevel
	case LogLevelError:
		levelValue = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stderr).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(levelValue)
}
