package auth

import "github.com/greenbdg/atlas-api/internal/account"

// Role labels form a flat enumeration. admin is not a superset of other
// roles; each required role must be gated explicitly.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RequireRole returns the principal unchanged when its role matches, so
// checks compose, and ErrForbidden otherwise. ErrForbidden is distinct from
// ErrUnauthenticated: the caller is known, just not permitted.
func RequireRole(acct *account.Account, role string) (*account.Account, error) {
	if acct == nil {
		return nil, ErrUnauthenticated
	}
	if acct.Role != role {
		return nil, ErrForbidden
	}
	return acct, nil
}
