package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ritrovo/ritrovo/internal/xslog"
	"github.com/ritrovo/ritrovo/server/auth"
)

// auth resolves the Authorization bearer token into claims for every
// request. Tokens are minted by the login service, not here.
func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := auth.Parse(strings.TrimSpace(header[len("Bearer "):]), []byte(h.Cfg.Auth.Secret))
		if err != nil {
			slog.DebugContext(ctx, "rejected bearer token", slog.Any("error", err))
			http.Error(w, "Invalid bearer token", http.StatusUnauthorized)
			return
		}

		r = r.WithContext(auth.SetClaims(ctx, *claims))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.GetClaims(r).Admin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func (h *handler) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.qrLimiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := xslog.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		slog.InfoContext(ctx, "request received",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
