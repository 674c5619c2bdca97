package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("token not found")
	ErrNoExpiry     = errors.New("token has no expiration claim")
	ErrBadToken     = errors.New("token cannot be decoded")
	ErrTokenExpired = errors.New("token has expired")
)

// Expiry decodes the exp claim from a JWT without verifying the signature.
// This side never holds the signing key; only the claim matters here.
func Expiry(token string) (time.Time, error) {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, ErrBadToken
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// Check reports whether the stored credential is present and unexpired at
// the given instant. An absent token is its own condition, distinct from a
// stored token that cannot be decoded.
func Check(store Store, now time.Time) error {
	token, ok := store.Token()
	if !ok {
		return ErrNoToken
	}

	exp, err := Expiry(token)
	if err != nil {
		return err
	}
	if !exp.After(now) {
		return ErrTokenExpired
	}
	return nil
}
