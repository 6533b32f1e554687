// Package logx configures the process-wide zerolog logger.
//
// All diagnostics go to stderr; stdout carries protocol frames only.
package logx

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Component is attached to every log line.
const Component = "motley-mcp"

// Log is the shared logger used throughout the project.
var Log = newLogger(os.Stderr)

// Configure sets the global log level and redirects output to w.
// A nil writer keeps stderr.
func Configure(level string, w io.Writer) {
	zerolog.SetGlobalLevel(parseLevel(level))
	if w == nil {
		w = os.Stderr
	}
	Log = newLogger(w)
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Str("component", Component).Logger()
}

// parseLevel converts a string to a zerolog level.
// Accepts: all, trace, debug, info, warn, warning, error, fatal, none.
// Unknown values default to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "all", "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "none", "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Preview renders v as JSON and cuts it to at most limit bytes without
// splitting a UTF-8 sequence. Raw JSON is used as is.
func Preview(v interface{}, limit int) string {
	var text string
	switch actual := v.(type) {
	case json.RawMessage:
		text = string(actual)
	case []byte:
		text = string(actual)
	case string:
		text = actual
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "<unprintable>"
		}
		text = string(data)
	}
	if limit < 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
