package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/internal/account"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Middleware guards HTTP routes with the resolve-then-gate sequence.
type Middleware struct {
	resolver *Resolver
	logger   *zap.SugaredLogger
}

func NewMiddleware(resolver *Resolver, logger *zap.SugaredLogger) *Middleware {
	return &Middleware{resolver: resolver, logger: logger}
}

// PrincipalFromContext returns the account stored by RequireAuth.
func PrincipalFromContext(ctx context.Context) (*account.Account, bool) {
	acct, ok := ctx.Value(principalKey).(*account.Account)
	return acct, ok
}

// RequireAuth resolves the bearer token and stores the principal in the
// request context. Missing and invalid tokens get the same 401.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			unauthorized(w)
			return
		}
		acct, err := m.resolver.Resolve(r.Context(), tok)
		if err != nil {
			m.logger.Debugw("auth rejected", "path", r.URL.Path)
			unauthorized(w)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), principalKey, acct)))
	}
}

// RequireAdmin is RequireAuth plus an admin role gate.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		acct, _ := PrincipalFromContext(r.Context())
		if _, err := RequireRole(acct, RoleAdmin); err != nil {
			m.logger.Debugw("admin access denied", "path", r.URL.Path)
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "could not validate credentials")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
