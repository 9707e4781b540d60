package http

import (
	"net/http"
	"strconv"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
)

const userIDHeader = "X-User-ID"

// withIdentity extracts the caller identity placed in the X-User-ID header
// by the auth layer in front of this service. Requests without a parseable
// user ID never reach the sync service.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawUserID := r.Header.Get(userIDHeader)
		if rawUserID == "" {
			log.Error().Str("func", "*Handler.withIdentity").Msg("missing `X-User-ID` header")
			http.Error(w, "missing `X-User-ID` header", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			log.Error().Str("func", "*Handler.withIdentity").Str("user_id", rawUserID).Msg("invalid `X-User-ID` header")
			http.Error(w, "invalid `X-User-ID` header", http.StatusUnauthorized)
			return
		}

		ctx := utils.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
