package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
)

const TraceIDHeader = "X-Trace-ID"

// TraceID attaches a child of base tagged with the request's trace id to the
// request context. An incoming X-Trace-ID is reused.
func TraceID(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := base.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}

// AccessLog writes one line per request through the request logger.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Hijack lets the websocket upgrader take over the connection.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
