package checkin

import "errors"

var (
	// ErrInvalidToken covers signature mismatches, malformed tokens and
	// unknown payload shapes.
	ErrInvalidToken = errors.New("invalid check-in token")
	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("expired check-in token")

	ErrMemberNotFound = errors.New("member not found")
	ErrEventNotFound  = errors.New("no event found")
)
