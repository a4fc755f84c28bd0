// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the server, the storage gateway and the HTTP layer.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role.
// level is a zerolog level name ("debug", "info", ...); unknown values mean info.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

func newLogger(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger that inherits the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the trace middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or a disabled logger when none is set.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
