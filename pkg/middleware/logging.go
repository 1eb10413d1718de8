package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

// SlowRequestThreshold é o tempo a partir do qual uma requisição comum gera aviso de lentidão.
// Rotas marcadas com LongRunning (lote e cron) ficam fora desse aviso.
const SlowRequestThreshold = 500 * time.Millisecond

// now é substituído nos testes
var now = time.Now

type requestStateKey struct{}

// requestState acumula o que os handlers querem ver na linha final de log da requisição
type requestState struct {
	mu          sync.Mutex
	fields      log.Fields
	longRunning bool
}

func stateFromContext(ctx context.Context) *requestState {
	state, _ := ctx.Value(requestStateKey{}).(*requestState)
	return state
}

// AddLogFields anexa campos (job, run_id, domain) ao log de conclusão da requisição.
// Fora do LoggingMiddleware a chamada não tem efeito.
func AddLogFields(ctx context.Context, fields log.Fields) {
	state := stateFromContext(ctx)
	if state == nil {
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	for k, v := range fields {
		state.fields[k] = v
	}
}

// LongRunning marca a rota como de longa duração
func LongRunning() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if state := stateFromContext(r.Context()); state != nil {
				state.mu.Lock()
				state.longRunning = true
				state.mu.Unlock()
			}
			next.ServeHTTP(w, r)
		})
	}
}

// snapshot copia os campos acumulados para não segurar o lock durante o log
func (s *requestState) snapshot() (log.Fields, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := make(log.Fields, len(s.fields))
	for k, v := range s.fields {
		fields[k] = v
	}
	return fields, s.longRunning
}

// LoggingMiddleware registra o início e o fim de cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			state := &requestState{fields: log.Fields{}}
			ctx = context.WithValue(ctx, requestStateKey{}, state)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			responseTime := now().Sub(startTime)
			extra, longRunning := state.snapshot()

			logFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			}
			for k, v := range extra {
				logFields[k] = v
			}
			logger := log.L.WithFields(logFields)

			msg := "Requisição finalizada"
			if isDev {
				statusSymbol := "✓"
				if lrw.statusCode >= 400 {
					statusSymbol = "✗"
				}
				msg = fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime))
			}

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if !longRunning && responseTime > SlowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(responseTime))
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em 500 com o corpo de erro padrão da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
