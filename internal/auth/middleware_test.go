package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/internal/account"
)

func newGuardFixture(t *testing.T) (*Middleware, *TokenCodec) {
	t.Helper()

	codec := newTestCodec(t, time.Hour)
	store := &fakeStore{accounts: map[string]*account.Account{
		"admin@b.com":    testAccount("admin@b.com", RoleAdmin, true),
		"user@b.com":     testAccount("user@b.com", RoleUser, true),
		"inactive@b.com": testAccount("inactive@b.com", RoleAdmin, false),
	}}
	return NewMiddleware(NewResolver(codec, store), zap.NewNop().Sugar()), codec
}

func issueFor(t *testing.T, codec *TokenCodec, email, role string) string {
	t.Helper()
	tok, err := codec.Issue(email, role, "acct-"+email)
	require.NoError(t, err)
	return tok
}

func doRequest(handler http.HandlerFunc, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestMiddleware_RequireAuth(t *testing.T) {
	t.Parallel()

	guard, codec := newGuardFixture(t)
	handler := guard.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		acct, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(acct.Email))
	})

	rec := doRequest(handler, issueFor(t, codec, "user@b.com", RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@b.com", rec.Body.String())
}

func TestMiddleware_MissingAndInvalidTokens(t *testing.T) {
	t.Parallel()

	guard, codec := newGuardFixture(t)
	handler := guard.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	for name, bearer := range map[string]string{
		"missing header": "",
		"garbage token":  "not.a.jwt",
		"inactive":       issueFor(t, codec, "inactive@b.com", RoleAdmin),
		"unknown":        issueFor(t, codec, "ghost@b.com", RoleUser),
	} {
		rec := doRequest(handler, bearer)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"), name)
		assert.JSONEq(t, `{"error":"could not validate credentials"}`, rec.Body.String(), name)
	}
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	t.Parallel()

	guard, codec := newGuardFixture(t)
	handler := guard.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(handler, issueFor(t, codec, "admin@b.com", RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	// authenticated but not permitted: 403, not 401
	rec = doRequest(handler, issueFor(t, codec, "user@b.com", RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"admin access required"}`, rec.Body.String())

	rec = doRequest(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
