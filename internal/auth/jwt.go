package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and verifies HS256 access tokens carrying the username as subject.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration

	now func() time.Time
}

func NewTokenIssuer(config Config) *TokenIssuer {
	return &TokenIssuer{
		secret: config.SecretKey,
		issuer: config.Issuer,
		ttl:    config.AccessTokenTTL,

		now: time.Now,
	}
}

// Issue returns a token valid from now for the configured TTL. The result only
// depends on its arguments and the configuration.
func (i *TokenIssuer) Issue(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify returns the token subject. Every failure wraps ErrTokenInvalid.
func (i *TokenIssuer) Verify(raw string) (string, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		options = append(options, jwt.WithIssuer(i.issuer))
	}

	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, options...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
