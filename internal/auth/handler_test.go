package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenbdg/atlas-api/internal/account"
)

func newLoginHandler(t *testing.T) *Handler {
	t.Helper()

	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("Secret123!")
	require.NoError(t, err)

	acct := testAccount("a@b.com", RoleAdmin, true)
	acct.PasswordHash = hash
	store := &fakeStore{accounts: map[string]*account.Account{"a@b.com": acct}}

	svc := NewService(store, hasher, newTestCodec(t, time.Hour))
	return NewHandler(svc, zap.NewNop().Sugar())
}

func postLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestHandler_LoginSuccess(t *testing.T) {
	t.Parallel()

	rec := postLogin(newLoginHandler(t), `{"email":"a@b.com","password":"Secret123!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":`)
	assert.Contains(t, body, `"token_type":"bearer"`)
	assert.Contains(t, body, `"email":"a@b.com"`)
	assert.Contains(t, body, `"role":"admin"`)
	assert.NotContains(t, body, "password", "response must not carry credential material")
	assert.NotContains(t, body, "$2a$", "response must not carry the stored hash")
}

func TestHandler_LoginRejections(t *testing.T) {
	t.Parallel()

	h := newLoginHandler(t)

	wrongPassword := postLogin(h, `{"email":"a@b.com","password":"nope"}`)
	unknownEmail := postLogin(h, `{"email":"ghost@b.com","password":"Secret123!"}`)

	// identical status and body for both failure causes
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestHandler_LoginBadPayload(t *testing.T) {
	t.Parallel()

	h := newLoginHandler(t)
	for name, body := range map[string]string{
		"not json":         "{",
		"missing email":    `{"password":"x"}`,
		"missing password": `{"email":"a@b.com"}`,
	} {
		rec := postLogin(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}
