package auth

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultSecret    = "change_me_in_production"
	defaultAccessTTL = 8 * time.Hour
)

// Config carries the process-wide signing secret and access token lifetime.
// It is read once at startup and treated as immutable afterwards; rotating
// the secret invalidates every previously issued token.
type Config struct {
	Secret    []byte
	AccessTTL time.Duration
}

// ConfigFromEnv reads JWT settings from environment variables.
// JWT_EXPIRES_HOURS defaults to 8.
func ConfigFromEnv() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}
	ttl := defaultAccessTTL
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			ttl = time.Duration(h) * time.Hour
		}
	}
	return Config{Secret: []byte(secret), AccessTTL: ttl}
}

// UsingDefaultSecret reports whether the config fell back to the built-in
// development secret, so entrypoints can warn loudly.
func (c Config) UsingDefaultSecret() bool {
	return string(c.Secret) == defaultSecret
}
