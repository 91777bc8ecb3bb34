// Package token inspects bearer tokens without verifying them. The remote API
// owns token issuance and signature validation; this package only peeks at
// claims so a restore can fail fast on a token that is already expired
// locally instead of spending a round trip on it.
//
// # What this package must NOT do
//
//   - Treat an unverified token as authenticated.
//   - Import clubadmin or session (no upward imports).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired is returned by [CheckNotExpired] for a token whose exp claim is
// in the past.
var ErrExpired = errors.New("token expired")

// Claims is the unverified view of a bearer token's payload.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Inspect parses the token without signature verification and returns its
// registered claims. Opaque (non-JWT) tokens return an error; callers should
// treat that as "cannot pre-check" rather than "invalid".
func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()

	var registered jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(tokenString, &registered); err != nil {
		return nil, err
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	return claims, nil
}

// CheckNotExpired reports [ErrExpired] when the token carries an exp claim in
// the past. Opaque tokens and tokens without exp pass: expiry is then the
// remote API's call.
func CheckNotExpired(tokenString string, now time.Time) error {
	claims, err := Inspect(tokenString)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt.IsZero() {
		return nil
	}
	if !now.Before(claims.ExpiresAt) {
		return ErrExpired
	}
	return nil
}
