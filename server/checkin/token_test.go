package checkin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_MemberRoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))
	issuedAt := time.Now().Truncate(time.Second)

	token, err := codec.IssueMember(42, issuedAt, time.Hour)
	require.NoError(t, err)

	payload, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, TokenKindMember, payload.Kind)
	require.Equal(t, 42, payload.SubjectID)
	require.Equal(t, issuedAt.Unix(), payload.IssuedAt.Unix())
}

func TestTokenCodec_EventRoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := codec.IssueEvent(7, time.Now().Add(12*time.Hour))
	require.NoError(t, err)

	payload, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, TokenKindEvent, payload.Kind)
	require.Equal(t, 7, payload.SubjectID)
	require.True(t, payload.IssuedAt.IsZero())
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := codec.IssueMember(42, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)

	token, err = codec.IssueEvent(7, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenCodec_Tampered(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := codec.IssueMember(42, time.Now(), time.Hour)
	require.NoError(t, err)

	for i := range token {
		flipped := 'A'
		if token[i] == 'A' {
			flipped = 'B'
		}
		tampered := token[:i] + string(flipped) + token[i+1:]
		if tampered == token {
			continue
		}

		_, err = codec.Verify(tampered)
		require.ErrorIs(t, err, ErrInvalidToken, "position %d", i)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := NewTokenCodec([]byte("other-secret")).IssueMember(42, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_NoneAlgorithm(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		claimMemberID: 42,
		claimIssuedAt: time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_MissingExpiry(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimMemberID: 42,
		claimIssuedAt: time.Now().Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_UnknownShape(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
