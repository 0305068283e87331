// Package api contains helpers to write json responses and common http middlewares.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

type loggerKey struct{}

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// GetLogger returns request scoped logger put by LoggerMiddleware.
func GetLogger(ctx context.Context) logrus.FieldLogger {
	if l, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger); ok {
		return l
	}

	return logrus.StandardLogger()
}

// WriteOK writes v as json with status.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteError writes {"error": message} with status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalErrorf logs error and writes 500 without details to the client.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)

	WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// LoggerMiddleware puts request scoped logger into context and logs finished requests.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		l := logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"ip":         realip.FromRequest(r),
			"request_id": middleware.GetReqID(r.Context()),
		})

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey{}, logrus.FieldLogger(l))))

		l.WithFields(logrus.Fields{
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}

// BodyLimiterMiddleware limits request body to size bytes.
func BodyLimiterMiddleware(size int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > size {
				WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body is too large, limit is %d bytes", size))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, size)
			}
			next.ServeHTTP(w, r)
		})
	}
}
