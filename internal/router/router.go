package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/internal/account"
	"github.com/greenbdg/atlas-api/internal/auth"
	"github.com/greenbdg/atlas-api/internal/invoice"
	"github.com/greenbdg/atlas-api/internal/organisation"
	"github.com/greenbdg/atlas-api/internal/site"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware logs requests at debug level using the provided sugared
// logger. Request bodies and Authorization headers are never logged.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
				"request_id", lrw.Header().Get("X-Request-Id"),
			)
		})
	}
}

// RequestIDMiddleware tags every request with an X-Request-Id response
// header so log lines and client reports can be correlated. An incoming id
// is kept as-is.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets common HTTP security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
			if r.TLS != nil {
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes wires handlers, the auth core, and middleware onto the
// standard library mux. Everything except /health and /auth/login sits
// behind the admin gate.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB, authCfg auth.Config) (http.Handler, error) {
	codec, err := auth.NewTokenCodec(authCfg)
	if err != nil {
		return nil, err
	}

	accounts := account.NewRepo(db)
	guard := auth.NewMiddleware(auth.NewResolver(codec, accounts), logger)
	authHandler := auth.NewHandler(auth.NewService(accounts, nil, codec), logger)
	orgHandler := organisation.NewHandler(db, logger)
	siteHandler := site.NewHandler(db, logger)
	invoiceHandler := invoice.NewHandler(db, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /auth/login", authHandler.Login)

	mux.HandleFunc("GET /organisations", guard.RequireAdmin(orgHandler.List))
	mux.HandleFunc("POST /organisations", guard.RequireAdmin(orgHandler.Create))
	mux.HandleFunc("GET /organisations/{id}", guard.RequireAdmin(orgHandler.Get))

	mux.HandleFunc("GET /sites", guard.RequireAdmin(siteHandler.List))
	mux.HandleFunc("POST /sites", guard.RequireAdmin(siteHandler.Create))

	mux.HandleFunc("GET /invoices", guard.RequireAdmin(invoiceHandler.List))
	mux.HandleFunc("POST /invoices", guard.RequireAdmin(invoiceHandler.Create))

	handler := LoggingMiddleware(logger)(SecurityHeadersMiddleware()(RequestIDMiddleware()(mux)))
	return handler, nil
}
