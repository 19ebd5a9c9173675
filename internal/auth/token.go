package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set carried by an access token: subject email,
// role label, account id, and the iat/exp timestamps.
type Claims struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenCodec signs and parses HS256 access tokens. The secret and TTL are
// fixed at construction; the codec is safe for unsynchronized concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec validates cfg and returns a codec. A zero AccessTTL falls
// back to 8 hours.
func NewTokenCodec(cfg Config) (*TokenCodec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("missing signing secret")
	}
	ttl := cfg.AccessTTL
	if ttl == 0 {
		ttl = defaultAccessTTL
	}
	if ttl < 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	return &TokenCodec{secret: cfg.Secret, ttl: ttl}, nil
}

// Issue mints a token for the given subject. iat is the current UTC instant
// and exp is iat plus the configured TTL. An empty role defaults to "user".
func (c *TokenCodec) Issue(email, role, accountID string) (string, error) {
	if email == "" {
		return "", errors.New("empty token subject")
	}
	if role == "" {
		role = RoleUser
	}
	now := time.Now().UTC()
	claims := Claims{
		Role:   role,
		UserID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse recomputes the signature, checks expiry, and returns the claims.
// Failures are classified as ErrTokenExpired, ErrInvalidSignature or
// ErrTokenMalformed; no claims are ever returned alongside an error. A token
// is already invalid at the instant exp is reached.
func (c *TokenCodec) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
