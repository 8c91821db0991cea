package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Claims is the resolved identity of an authenticated request. Access
// tokens are minted by the login flow, which lives outside this service;
// here they are only verified.
type Claims struct {
	MemberID int
	Admin    bool
}

func Parse(token string, secret []byte) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	memberID, ok := claims["userId"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	admin, _ := claims["isAdmin"].(bool)

	return &Claims{
		MemberID: int(memberID),
		Admin:    admin,
	}, nil
}
