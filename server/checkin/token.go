package checkin

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names are kept short to keep the resulting QR codes small.
const (
	claimMemberID = "u"
	claimIssuedAt = "d"
	claimEventID  = "id"
)

type TokenKind int

const (
	// TokenKindMember is a token pulled by a member, bound to the time it
	// was requested.
	TokenKindMember TokenKind = iota
	// TokenKindEvent is a token displayed at the venue for a specific
	// opening day.
	TokenKindEvent
)

// Payload is the verified content of a check-in token. SubjectID is a
// member id for member tokens and an opening day id for event tokens.
// IssuedAt is only set for member tokens.
type Payload struct {
	Kind      TokenKind
	SubjectID int
	IssuedAt  time.Time
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{
		secret: secret,
	}
}

// TokenCodec signs and verifies check-in tokens with an HMAC secret. It
// performs no I/O; callers supply all timestamps.
type TokenCodec struct {
	secret []byte
}

func (c *TokenCodec) IssueMember(memberID int, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		claimMemberID: memberID,
		claimIssuedAt: issuedAt.Unix(),
		"exp":         issuedAt.Add(ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign member token: %w", err)
	}

	return token, nil
}

func (c *TokenCodec) IssueEvent(eventID int, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		claimEventID: eventID,
		"exp":        expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign event token: %w", err)
	}

	return token, nil
}

// Verify checks the signature and expiry of a token and decodes its
// payload. Expired tokens return ErrExpiredToken, everything else that is
// not a valid token returns ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}

	if eventID, ok := claims[claimEventID].(float64); ok {
		return Payload{
			Kind:      TokenKindEvent,
			SubjectID: int(eventID),
		}, nil
	}

	memberID, ok := claims[claimMemberID].(float64)
	if !ok {
		return Payload{}, ErrInvalidToken
	}
	issuedAt, ok := claims[claimIssuedAt].(float64)
	if !ok {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		Kind:      TokenKindMember,
		SubjectID: int(memberID),
		IssuedAt:  time.Unix(int64(issuedAt), 0),
	}, nil
}
