package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only consumes the first 72 bytes of its input. The previous backend
// truncated explicitly before hashing, so the same transform has to run at
// both hash and verify time or stored hashes for long passwords stop
// verifying.
const maxSecretBytes = 72

// PasswordHasher abstracts the hash algorithm so the login flow does not
// change if we move to argon2 later.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, storedHash string) bool
}

// BcryptHasher hashes with bcrypt. Cost 0 means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

// Hash returns a salted bcrypt hash of password. Every call draws a fresh
// salt, so hashing the same password twice yields different strings.
//
// The UTF-8 encoding is cut at exactly 72 bytes even when that splits a
// multi-byte character. Known sharp edge, kept for compatibility with hashes
// written by earlier deployments.
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword(truncateSecret(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches storedHash. A malformed stored
// hash verifies as false rather than erroring, so callers cannot tell bad
// stored data apart from a wrong password.
func (b BcryptHasher) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), truncateSecret(password)) == nil
}

func truncateSecret(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxSecretBytes {
		raw = raw[:maxSecretBytes]
	}
	return raw
}
