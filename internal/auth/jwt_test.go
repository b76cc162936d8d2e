package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(Config{
		SecretKey:      []byte("test-secret"),
		Issuer:         "codebar",
		AccessTokenTTL: 30 * time.Minute,
	})
	issuer.now = func() time.Time { return now }

	return issuer
}

func TestTokenIssuer_IssueVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)

	token, err := issuer.Issue("ada", now)
	require.NoError(t, err)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ada", subject)
}

func TestTokenIssuer_Deterministic(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)

	first, err := issuer.Issue("ada", now)
	require.NoError(t, err)
	second, err := issuer.Issue("ada", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenIssuer_Verify_Invalid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)

	valid, err := issuer.Issue("ada", now)
	require.NoError(t, err)

	expired, err := issuer.Issue("ada", now.Add(-time.Hour))
	require.NoError(t, err)

	empty, err := issuer.Issue("", now)
	require.NoError(t, err)

	otherSecret, err := NewTokenIssuer(Config{
		SecretKey:      []byte("other-secret"),
		Issuer:         "codebar",
		AccessTokenTTL: 30 * time.Minute,
	}).Issue("ada", now)
	require.NoError(t, err)

	otherIssuer, err := NewTokenIssuer(Config{
		SecretKey:      []byte("test-secret"),
		Issuer:         "someone-else",
		AccessTokenTTL: 30 * time.Minute,
	}).Issue("ada", now)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "ada",
		Issuer:    "codebar",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "ada",
		Issuer:  "codebar",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expired},
		{name: "empty subject", token: empty},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong issuer", token: otherIssuer},
		{name: "wrong algorithm", token: hs512},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTokenInvalid), "got %v", err)
		})
	}
}

func TestTokenIssuer_Verify_ExpiresWithClock(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)

	token, err := issuer.Issue("ada", now)
	require.NoError(t, err)

	issuer.now = func() time.Time { return now.Add(31 * time.Minute) }

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
