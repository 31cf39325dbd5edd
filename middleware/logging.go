package middleware

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mariage-backend/constants"
	"mariage-backend/services"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wrapper pour capturer le code de statut
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.written = true
	return rw.ResponseWriter.Write(b)
}

// Hijack est nécessaire à l'upgrade WebSocket
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("le ResponseWriter ne supporte pas Hijack")
	}
	return hijacker.Hijack()
}

func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// RequestID retourne l'identifiant de la requête en cours ("" si absent)
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Logging enregistre les requêtes HTTP avec un identifiant de requête.
// Les erreurs serveur (5xx) sont aussi signalées sur Slack si configuré.
func Logging(slackService *services.SlackService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Réutiliser l'identifiant fourni par le client s'il existe
			requestID := r.Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(constants.HeaderRequestID, requestID)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := rw.statusCode
			fields := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusCode,
				"duration", duration,
				"request_id", requestID,
			}

			switch {
			case statusCode >= http.StatusInternalServerError:
				log.Error("❌ requête", fields...)
				slackService.NotifyServerError(services.ServerError{
					Method:     r.Method,
					Path:       r.URL.Path,
					StatusCode: statusCode,
					RequestID:  requestID,
					Origin:     r.Header.Get("Origin"),
					UserAgent:  r.Header.Get("User-Agent"),
				})
			case statusCode >= http.StatusBadRequest:
				log.Warn("⚠️ requête", fields...)
			default:
				log.Info("requête", fields...)
			}
		})
	}
}
