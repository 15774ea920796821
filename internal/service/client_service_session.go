package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-session/internal/adapter"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/store"
	"github.com/MKhiriev/go-auth-session/models"
)

// PasswordResetRequestedAck is what RequestPasswordReset reports on success.
var PasswordResetRequestedAck = models.MessageResponse{
	Message: "If the email exists, a password reset link has been sent.",
	Success: true,
}

type clientSessionService struct {
	adapter     adapter.ServerAdapter
	sessionRepo store.LocalSessionRepository
	logger      *logger.Logger
}

func NewClientSessionService(serverAdapter adapter.ServerAdapter, sessionRepo store.LocalSessionRepository, logger *logger.Logger) ClientSessionService {
	logger.Debug().Msg("creating client session service")
	return &clientSessionService{
		adapter:     serverAdapter,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *clientSessionService) Register(ctx context.Context, req models.SignUpRequest) (models.MessageResponse, error) {
	ack, err := s.adapter.SignUp(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.Register").Msg("sign up failed")
		return models.MessageResponse{}, err
	}

	return ack, nil
}

func (s *clientSessionService) Authenticate(ctx context.Context, req models.SignInRequest) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	token, err := s.adapter.SignIn(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*clientSessionService.Authenticate").Msg("sign in failed")
		return models.AccessToken{}, err
	}

	// token and profile are written in one transaction, overwriting the previous session
	if err = s.sessionRepo.SaveSession(ctx, token.AccessToken, token.User); err != nil {
		log.Err(err).Str("func", "*clientSessionService.Authenticate").Msg("error saving session")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrSessionNotPersisted, err)
	}

	log.Info().Str("func", "*clientSessionService.Authenticate").Str("user_id", token.User.ID).Msg("signed in")
	return token, nil
}

func (s *clientSessionService) RequestPasswordReset(ctx context.Context, email string) (models.MessageResponse, error) {
	if _, err := s.adapter.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.RequestPasswordReset").Msg("forgot password request failed")
		return models.MessageResponse{}, err
	}

	return PasswordResetRequestedAck, nil
}

func (s *clientSessionService) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) (models.MessageResponse, error) {
	ack, err := s.adapter.ResetPassword(ctx, models.ResetPasswordRequest{
		Token:       resetToken,
		NewPassword: newPassword,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.CompletePasswordReset").Msg("reset password failed")
		return models.MessageResponse{}, err
	}

	return ack, nil
}

func (s *clientSessionService) FetchCurrentProfile(ctx context.Context) (models.User, error) {
	token, ok := s.CurrentToken(ctx)
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}

	profile, err := s.adapter.Me(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.FetchCurrentProfile").Msg("error fetching profile")
		return models.User{}, err
	}

	return profile, nil
}

func (s *clientSessionService) VerifySession(ctx context.Context) bool {
	token, ok := s.CurrentToken(ctx)
	if !ok {
		return false
	}

	if _, err := s.adapter.VerifyToken(ctx, token); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*clientSessionService.VerifySession").Msg("stored token was not accepted")
		return false
	}

	return true
}

func (s *clientSessionService) EndSession(ctx context.Context) {
	if err := s.sessionRepo.DeleteSession(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.EndSession").Msg("error deleting session")
		return
	}
	logger.FromContext(ctx).Info().Str("func", "*clientSessionService.EndSession").Msg("signed out")
}

func (s *clientSessionService) HasStoredToken(ctx context.Context) bool {
	_, ok := s.CurrentToken(ctx)
	return ok
}

func (s *clientSessionService) CurrentToken(ctx context.Context) (string, bool) {
	token, err := s.sessionRepo.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.CurrentToken").Msg("error reading stored token")
		}
		return "", false
	}

	return token, token != ""
}

func (s *clientSessionService) CachedProfile(ctx context.Context) (models.User, bool) {
	profile, err := s.sessionRepo.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*clientSessionService.CachedProfile").Msg("error reading cached profile")
		}
		return models.User{}, false
	}

	return profile, true
}
