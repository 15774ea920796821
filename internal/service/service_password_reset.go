// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/crypto"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/mailer"
	"github.com/MKhiriev/go-auth-session/internal/store"
	"github.com/MKhiriev/go-auth-session/internal/utils"
	"github.com/MKhiriev/go-auth-session/internal/validators"
	"github.com/MKhiriev/go-auth-session/models"
)

// resetTokenBytes is the entropy of a reset token before encoding.
const resetTokenBytes = 32

type passwordResetService struct {
	userRepository  store.UserRepository
	resetRepository store.PasswordResetRepository
	hasher          crypto.PasswordHasher
	mailer          mailer.Mailer

	// hashKey keys the HMAC of stored reset tokens.
	hashKey       string
	resetDuration time.Duration
	frontendURL   string

	now    func() time.Time
	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	resetRepository store.PasswordResetRepository,
	hasher crypto.PasswordHasher,
	m mailer.Mailer,
	cfg config.ServerApp,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository:  userRepository,
		resetRepository: resetRepository,
		hasher:          hasher,
		mailer:          m,
		hashKey:         cfg.TokenSignKey,
		resetDuration:   cfg.ResetTokenDuration,
		frontendURL:     cfg.FrontendURL,
		now:             time.Now,
		logger:          logger,
	}
}

// RequestReset stores the hash of a fresh token (dropping older ones of the
// same user) and emails the plaintext link. Unknown addresses return nil so
// the response never reveals whether an account exists.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if err := validators.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", email).Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := utils.GenerateSecureToken(resetTokenBytes)
	if err != nil {
		log.Err(err).Msg("error generating reset token")
		return fmt.Errorf("%w: %w", ErrResetTokenGeneration, err)
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Email:     user.Email,
		TokenHash: utils.HashString(token, s.hashKey),
		ExpiresAt: s.now().Add(s.resetDuration).UTC(),
	}
	if err = s.resetRepository.ReplaceResetToken(ctx, reset); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error storing reset token")
		return fmt.Errorf("%w: %w", ErrResetTokenGeneration, err)
	}

	if err = s.mailer.SendPasswordReset(ctx, user.Email, mailer.ResetLink(s.frontendURL, token), s.resetDuration); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error sending reset email")
		return fmt.Errorf("%w: %w", ErrResetEmailFailed, err)
	}

	log.Info().Str("user_id", user.ID).Msg("password reset link sent")
	return nil
}

// ResetPassword checks the token against its stored hash, then updates the
// password and marks the grant used in one transaction.
func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrInvalidResetToken
	}
	if err := validators.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now().UTC()
	tokenHash := utils.HashString(token, s.hashKey)

	reset, err := s.resetRepository.FindActiveResetToken(ctx, tokenHash, now)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		log.Err(err).Msg("error looking up reset token")
		return fmt.Errorf("error looking up reset token: %w", err)
	}
	if !utils.EqualHash(reset.TokenHash, tokenHash) || reset.Used || reset.IsExpired(now) {
		return ErrInvalidResetToken
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = s.resetRepository.ConsumeResetToken(ctx, reset, passwordHash)
	switch {
	case errors.Is(err, store.ErrResetTokenNotFound):
		return ErrInvalidResetToken
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case err != nil:
		log.Err(err).Str("user_id", reset.UserID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("user_id", reset.UserID).Msg("password updated via reset token")
	return nil
}

func (s *passwordResetService) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.resetRepository.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("error purging reset tokens: %w", err)
	}
	return n, nil
}
