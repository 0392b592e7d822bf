package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	m := NewJWTManager("top-secret")

	token, err := m.Generate("grace")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "grace", claims.Username)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("top-secret").Generate("grace")
	require.NoError(t, err)

	_, err = NewJWTManager("other-secret").Parse(token)
	assert.Error(t, err)
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("top-secret").Parse("not-a-token")
	assert.Error(t, err)
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	// Sign a token whose expiry is already in the past with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "grace",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte("top-secret"))
	require.NoError(t, err)

	_, err = NewJWTManager("top-secret").Parse(token)
	assert.Error(t, err)
}

func TestJWTManagerRejectsUnsignedToken(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "grace"})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("top-secret").Parse(token)
	assert.Error(t, err)
}
