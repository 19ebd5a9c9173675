package auth

import (
	"context"

	"github.com/greenbdg/atlas-api/internal/account"
)

// LoginStore extends AccountStore with the success-path bookkeeping write.
type LoginStore interface {
	AccountStore
	TouchLastLogin(ctx context.Context, id string) error
}

// Service handles password login: credential verification and token minting.
type Service struct {
	store  LoginStore
	hasher PasswordHasher
	codec  *TokenCodec
}

func NewService(store LoginStore, hasher PasswordHasher, codec *TokenCodec) *Service {
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	return &Service{store: store, hasher: hasher, codec: codec}
}

// Login verifies email+password and mints an access token. Unknown email,
// account rows without a stored hash, and wrong passwords all return
// ErrInvalidCredentials so responses cannot reveal which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, *account.Account, error) {
	acct, err := s.store.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if acct.PasswordHash == "" || !s.hasher.Verify(password, acct.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.codec.Issue(acct.Email, acct.Role, acct.ID)
	if err != nil {
		return "", nil, err
	}
	// best effort; a failed timestamp write must not fail the login
	_ = s.store.TouchLastLogin(ctx, acct.ID)
	return token, acct, nil
}
