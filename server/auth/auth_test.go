package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mint(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	token := mint(t, "test-secret", jwt.MapClaims{
		"userId":  42,
		"isAdmin": true,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Parse(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, 42, claims.MemberID)
	require.True(t, claims.Admin)
}

func TestParse_WrongSecret(t *testing.T) {
	token := mint(t, "other-secret", jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	_, err := Parse(token, []byte("test-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token := mint(t, "test-secret", jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})

	_, err := Parse(token, []byte("test-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Missing(t *testing.T) {
	_, err := Parse("", []byte("test-secret"))
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestParse_NoMemberID(t *testing.T) {
	token := mint(t, "test-secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := Parse(token, []byte("test-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}
