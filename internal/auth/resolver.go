package auth

import (
	"context"
	"strings"

	"github.com/greenbdg/atlas-api/internal/account"
)

// AccountStore is the slice of the account store the auth core consumes.
// FindByEmail matches exactly; callers pass an already-normalized email.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
}

// Resolver turns a raw bearer token into an authenticated principal backed
// by the current account row. The store lookup is the only IO in the auth
// core, so deactivated accounts lose access on their next request even while
// their token is unexpired.
type Resolver struct {
	codec *TokenCodec
	store AccountStore
}

func NewResolver(codec *TokenCodec, store AccountStore) *Resolver {
	return &Resolver{codec: codec, store: store}
}

// Resolve validates tokenStr and loads the account it names. Every failure
// mode — bad signature, expiry, malformed token, missing subject, unknown
// email, inactive account, store error or timeout — collapses to
// ErrUnauthenticated so callers cannot probe which check failed.
func (r *Resolver) Resolve(ctx context.Context, tokenStr string) (*account.Account, error) {
	claims, err := r.codec.Parse(tokenStr)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	email := NormalizeEmail(claims.Subject)
	if email == "" {
		return nil, ErrUnauthenticated
	}
	acct, err := r.store.FindByEmail(ctx, email)
	if err != nil {
		// fail closed: not-found, cancellation and infrastructure errors
		// are indistinguishable here
		return nil, ErrUnauthenticated
	}
	if !acct.IsActive {
		return nil, ErrUnauthenticated
	}
	return acct, nil
}

// NormalizeEmail lowercases and trims an email address. Accounts are stored
// with normalized emails, and both lookup sides must apply the same
// transform or case differences turn into authentication failures.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
