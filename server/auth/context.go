package auth

import (
	"context"
	"net/http"
)

type claimsKey struct{}

var claimsContextKey = &claimsKey{}

func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func GetClaims(r *http.Request) Claims {
	return r.Context().Value(claimsContextKey).(Claims)
}
