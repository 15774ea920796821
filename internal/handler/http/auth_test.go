package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/internal/validators"
	"github.com/MKhiriev/go-auth-session/models"
)

var signUpReq = models.SignUpRequest{
	Email:     "john@example.com",
	Password:  "secret123",
	FirstName: "John",
	LastName:  "Doe",
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "created",
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate email",
			err:        service.ErrEmailAlreadyRegistered,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Email already registered",
		},
		{
			name:       "validation failure keeps the reason",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Failed to create user",
		},
		{
			name:       "broken json",
			body:       `{"email":`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: detailBadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &fakeAuthService{
				signUpFn: func(_ context.Context, req models.SignUpRequest) (models.User, error) {
					called = true
					assert.Equal(t, signUpReq, req)
					if tt.err != nil {
						return models.User{}, tt.err
					}
					return models.User{ID: testUserID, Email: req.Email}, nil
				},
			}
			h, _ := newTestHandler(t, auth)

			body := tt.body
			if body == "" {
				b, _ := json.Marshal(signUpReq)
				body = string(b)
			}
			rec := httptest.NewRecorder()
			h.signUp(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			switch {
			case tt.wantStatus == http.StatusOK:
				assert.Equal(t, models.MessageResponse{Message: msgSignedUp, Success: true}, decodeMessage(t, rec))
			case tt.wantDetail != "":
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
			default:
				assert.Contains(t, decodeDetail(t, rec), validators.ErrInvalidEmail.Error())
			}
			assert.Equal(t, tt.body == "", called)
		})
	}
}

// ─────────────────────────────────────────────
// signin
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	auth := &fakeAuthService{
		signInFn: func(_ context.Context, req models.SignInRequest) (models.AccessToken, error) {
			assert.Equal(t, "john@example.com", req.Email)
			return models.AccessToken{
				AccessToken: "signed.jwt.token",
				TokenType:   models.TokenTypeBearer,
				User:        models.User{ID: testUserID, Email: req.Email, FirstName: "John"},
			}, nil
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		jsonBody(t, models.SignInRequest{Email: "john@example.com", Password: "secret123"}))
	h.signIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AccessToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.token", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, testUserID, got.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	auth := &fakeAuthService{
		signInFn: func(context.Context, models.SignInRequest) (models.AccessToken, error) {
			return models.AccessToken{}, service.ErrInvalidCredentials
		},
	}
	h, _ := newTestHandler(t, auth)

	rec := httptest.NewRecorder()
	h.signIn(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		jsonBody(t, models.SignInRequest{Email: "john@example.com", Password: "nope"})))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Invalid email or password", decodeDetail(t, rec))
}

// ─────────────────────────────────────────────
// me / verify-token
// ─────────────────────────────────────────────

func TestMe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "profile", wantStatus: http.StatusOK},
		{name: "user gone", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantDetail: "User not found"},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantDetail: "Failed to load user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := acceptingAuth()
			auth.currentUserFn = func(_ context.Context, userID string) (models.User, error) {
				assert.Equal(t, testUserID, userID)
				if tt.err != nil {
					return models.User{}, tt.err
				}
				return models.User{ID: userID, Email: "john@example.com", IsVerified: true}, nil
			}
			h, _ := newTestHandler(t, auth)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
				return
			}

			var user models.User
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
			assert.Equal(t, testUserID, user.ID)
			assert.True(t, user.IsVerified)
		})
	}
}

func TestMe_WithoutUserIDInContext(t *testing.T) {
	h, _ := newTestHandler(t, acceptingAuth())

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken(t *testing.T) {
	h, _ := newTestHandler(t, acceptingAuth())
	router := h.Init()

	valid := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	valid.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, valid)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MessageResponse{Message: msgTokenValid, Success: true}, decodeMessage(t, rec))

	invalid := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	invalid.Header.Set("Authorization", "Bearer stale-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, invalid)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, detailInvalidToken, decodeDetail(t, rec))
}
