package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/utils"
	"github.com/MKhiriev/go-auth-session/models"
	"github.com/go-resty/resty/v2"
)

const (
	signUpPath         = "/signup"
	signInPath         = "/signin"
	forgotPasswordPath = "/forgot-password"
	resetPasswordPath  = "/reset-password"
	mePath             = "/me"
	verifyTokenPath    = "/verify-token"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// appends adapterCfg.BasePath, so endpoint paths resolve under one prefix
// (e.g. "http://localhost:8000/api/auth/signin").
//
// A zero adapterCfg.RequestTimeout leaves the client without a timeout; the
// caller's context is then the only way to abandon a request. Retries are
// disabled.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress, adapterCfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw, basePath string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	basePath = strings.Trim(strings.TrimSpace(basePath), "/")
	if basePath != "" {
		u = u.JoinPath(basePath)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignUp implements [ServerAdapter]. It POSTs the new account data to /signup.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.MessageResponse, error) {
	var ack models.MessageResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&ack).
		Post(signUpPath)
	if err != nil {
		return models.MessageResponse{}, requestError("signup", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return ack, nil
}

// SignIn implements [ServerAdapter]. It POSTs credentials to /signin and
// returns the decoded access token together with the profile snapshot.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&token).
		Post(signInPath)
	if err != nil {
		return models.AccessToken{}, requestError("signin", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	if strings.TrimSpace(token.AccessToken) == "" {
		return models.AccessToken{}, &RequestError{
			Status: resp.StatusCode(),
			Detail: "Server returned no access token",
			Err:    ErrUnexpectedStatus,
		}
	}

	return token, nil
}

// ForgotPassword implements [ServerAdapter]. It POSTs the email to /forgot-password.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	var ack models.MessageResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&ack).
		Post(forgotPasswordPath)
	if err != nil {
		return models.MessageResponse{}, requestError("forgot password", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return ack, nil
}

// ResetPassword implements [ServerAdapter]. It POSTs the reset token and the
// new password to /reset-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	var ack models.MessageResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&ack).
		Post(resetPasswordPath)
	if err != nil {
		return models.MessageResponse{}, requestError("reset password", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return ack, nil
}

// Me implements [ServerAdapter]. It GETs /me with the bearer token.
func (h *httpServerAdapter) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx, token).
		SetResult(&user).
		Get(mePath)
	if err != nil {
		return models.User{}, requestError("me", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// VerifyToken implements [ServerAdapter]. It POSTs to /verify-token with the
// bearer token and no body.
func (h *httpServerAdapter) VerifyToken(ctx context.Context, token string) (models.MessageResponse, error) {
	var ack models.MessageResponse

	resp, err := h.authedRequest(ctx, token).
		SetResult(&ack).
		Post(verifyTokenPath)
	if err != nil {
		return models.MessageResponse{}, requestError("verify token", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return ack, nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BearerHeader(strings.TrimSpace(token)))
}
