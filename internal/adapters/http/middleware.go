package httpadapter

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/pdf-chat-assistant/internal/observability/metrics"
)

const requestIDHeader = "X-Request-Id"

// errorBodyCaptureLimit bounds how much of an error response body is copied
// into the access log entry.
const errorBodyCaptureLimit = 2048

type requestIDContextKey struct{}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDContextKey{}, requestID)
		r = r.WithContext(ctx)
		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r)
	})
}

// accessLogMiddleware logs every request; responses with status >= 400
// additionally carry the captured error detail.
func accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(recorder, r)

		remoteAddr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			remoteAddr = host
		}

		logAttrs := []any{
			"request_id", requestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"bytes", recorder.bytesWritten,
			"remote_addr", remoteAddr,
		}

		switch {
		case recorder.statusCode >= 500:
			logAttrs = append(logAttrs, "error", strings.TrimSpace(recorder.errorBody.String()))
			slog.Error("http_request", logAttrs...)
		case recorder.statusCode >= 400:
			logAttrs = append(logAttrs, "error", strings.TrimSpace(recorder.errorBody.String()))
			slog.Warn("http_request", logAttrs...)
		default:
			slog.Info("http_request", logAttrs...)
		}
	})
}

// recoveryMiddleware converts panics into the generic 500 response. The panic
// value is logged server-side and never reaches the client.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic_recovered",
					"request_id", requestIDFromContext(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": detailUnexpected})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func metricsMiddleware(m *metrics.HTTPServerMetrics, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.RequestStarted()
		defer m.RequestFinished()

		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		m.ObserveRequest(r.Method, metricsPathLabel(r.URL.Path), recorder.statusCode, time.Since(start))
	})
}

// metricsPathLabel collapses per-document path segments into route templates
// so document ids do not mint unbounded label values.
func metricsPathLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/pdf/"):
		return "/v1/pdf/{id}"
	case strings.HasPrefix(path, "/v1/chat/"):
		return "/v1/chat/{id}"
	default:
		return path
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	errorBody    bytes.Buffer
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	if w.statusCode >= 400 && w.errorBody.Len() < errorBodyCaptureLimit {
		remaining := errorBodyCaptureLimit - w.errorBody.Len()
		if remaining > len(b) {
			remaining = len(b)
		}
		w.errorBody.Write(b[:remaining])
	}
	return n, err
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}
