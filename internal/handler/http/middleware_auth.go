package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/utils"
)

const (
	detailNotAuthenticated = "Not authenticated"
	detailInvalidToken     = "Invalid token"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// A request without an "Authorization" header is rejected with 403
// "Not authenticated"; a malformed header or a token that fails
// [service.AuthService.ParseToken] gets 401 "Invalid token" and a
// WWW-Authenticate challenge. On success the user id from the "sub" claim is
// stored under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, detailNotAuthenticated, http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			unauthorized(w, detailInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, detailInvalidToken)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Err(err).Msg("token has no usable subject")
			unauthorized(w, detailInvalidToken)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes a 401 with the Bearer challenge header.
func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, detail, http.StatusUnauthorized)
}
