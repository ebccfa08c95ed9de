// Package mwauth hands off the user identity established by the upstream
// identity layer. Session validation itself happens before requests reach
// this service; the gateway forwards the verified user id in X-User-Id.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"hotelBooker/internal/lib/api/response"
)

const userIDHeader = "X-User-Id"

type ctxKey struct{}

func New(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(userIDHeader)
			if userIDStr == "" {
				log.Warn("request without user identity")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			userID, err := strconv.Atoi(userIDStr)
			if err != nil || userID <= 0 {
				log.Warn("invalid user identity", slog.String("user_id", userIDStr))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated user id placed in the context by New.
// The second result is false when the middleware did not run.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ctxKey{}).(int)
	return id, ok
}
