package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole_Match(t *testing.T) {
	t.Parallel()

	acct := testAccount("a@b.com", RoleAdmin, true)
	got, err := RequireRole(acct, RoleAdmin)
	require.NoError(t, err)
	assert.Same(t, acct, got, "gate must pass the principal through unchanged")
}

func TestRequireRole_Mismatch(t *testing.T) {
	t.Parallel()

	acct := testAccount("a@b.com", RoleUser, true)
	_, err := RequireRole(acct, RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequireRole_FlatModel(t *testing.T) {
	t.Parallel()

	// admin is not a superset of other labels
	acct := testAccount("a@b.com", RoleAdmin, true)
	_, err := RequireRole(acct, "auditor")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequireRole_NilPrincipal(t *testing.T) {
	t.Parallel()

	_, err := RequireRole(nil, RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
