package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.AuthService.ParseToken] and, on success, stores the user
// id in the request context under [utils.UserIDCtxKey].
//
// Requests are rejected with:
//   - 401 Unauthorized when the header is absent or holds no bearer token;
//   - 403 Forbidden when a token is present but expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeErrorStatus(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeErrorStatus(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Debug().Err(err).Msg("token expired")
				writeErrorStatus(w, http.StatusForbidden, service.ErrTokenIsExpired.Error())
			default:
				log.Warn().Err(err).Msg("error occurred during parsing token")
				writeErrorStatus(w, http.StatusForbidden, service.ErrTokenIsExpiredOrInvalid.Error())
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
