// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/utils"
	"github.com/MKhiriev/go-auth-session/models"
)

const (
	// msgResetRequested is returned whether or not the email is registered.
	msgResetRequested = "If the email exists, a password reset link has been sent."
	msgPasswordReset  = "Password updated successfully"
)

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(detailBadJSON)
		utils.WriteError(w, detailBadJSON, http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err, "Failed to generate reset token")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgResetRequested, Success: true}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(detailBadJSON)
		utils.WriteError(w, detailBadJSON, http.StatusUnprocessableEntity)
		return
	}

	err := h.services.PasswordResetService.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update password")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgPasswordReset, Success: true}, http.StatusOK)
}
