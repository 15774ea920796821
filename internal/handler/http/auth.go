package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/utils"
	"github.com/MKhiriev/go-auth-session/models"
)

const (
	msgSignedUp    = "User created successfully. Please sign in."
	msgTokenValid  = "Token is valid"
	detailBadJSON  = "Invalid JSON was passed"
	detailNoUserID = detailInvalidToken
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(detailBadJSON)
		utils.WriteError(w, detailBadJSON, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create user")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: msgSignedUp, Success: true}, http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(detailBadJSON)
		utils.WriteError(w, detailBadJSON, http.StatusUnprocessableEntity)
		return
	}

	token, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to sign in")
		return
	}

	log.Debug().Str("user_id", token.User.ID).Msg("user successfully signed in")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(w, detailNoUserID)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load user")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// verifyToken does nothing beyond the auth middleware: reaching it means the
// bearer token parsed and validated.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgTokenValid, Success: true}, http.StatusOK)
}
