package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/internal/utils"
)

type errorResponse struct {
	status int
	// detail is the client-facing message. Empty means "use err.Error()".
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {status: http.StatusUnprocessableEntity},
	service.ErrInvalidCredentials:      {status: http.StatusUnauthorized, detail: "Invalid email or password"},
	service.ErrEmailAlreadyRegistered:  {status: http.StatusBadRequest, detail: "Email already registered"},
	service.ErrUserNotFound:            {status: http.StatusNotFound, detail: "User not found"},
	service.ErrTokenIsExpiredOrInvalid: {status: http.StatusUnauthorized, detail: detailInvalidToken},
	service.ErrInvalidResetToken:       {status: http.StatusBadRequest, detail: "Invalid or expired reset token"},
	service.ErrResetTokenGeneration:    {status: http.StatusInternalServerError, detail: "Failed to generate reset token"},
	service.ErrResetEmailFailed:        {status: http.StatusInternalServerError, detail: "Failed to send reset email"},
}

// responseFromError resolves err against errorStatusMap. Unknown errors become
// a 500 carrying fallbackDetail so internals never leak to the client.
func responseFromError(err error, fallbackDetail string) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.detail == "" {
				resp.detail = err.Error()
			}
			return resp
		}
	}
	return errorResponse{status: http.StatusInternalServerError, detail: fallbackDetail}
}

// writeServiceError logs err and writes the mapped {"detail": ...} response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackDetail string) {
	resp := responseFromError(err, fallbackDetail)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if resp.status == http.StatusUnauthorized {
		unauthorized(w, resp.detail)
		return
	}
	utils.WriteError(w, resp.detail, resp.status)
}
