// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, BasePath: "/api/auth"}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireRequestError(t *testing.T, err error, status int, detail string) *RequestError {
	t.Helper()
	reqErr, ok := AsRequestError(err)
	require.True(t, ok, "expected *RequestError, got %T: %v", err, err)
	assert.Equal(t, status, reqErr.Status)
	assert.Equal(t, detail, reqErr.Detail)
	return reqErr
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		basePath string
		want     string
		wantErr  bool
	}{
		{"host and port", "localhost:8000", "/api/auth", "http://localhost:8000/api/auth", false},
		{"full url", "https://auth.test/", "api/auth/", "https://auth.test/api/auth", false},
		{"url with prefix", "http://auth.test/v1", "/api/auth", "http://auth.test/v1/api/auth", false},
		{"no base path", "http://auth.test", "", "http://auth.test", false},
		{"empty", "  ", "/api/auth", "", true},
		{"no host", "http://", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw, tt.basePath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	req := models.SignUpRequest{Email: "a@x.com", Password: "secret123", FirstName: "A", LastName: "B"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"email":      "a@x.com",
			"password":   "secret123",
			"first_name": "A",
			"last_name":  "B",
		}, body)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User created successfully. Please sign in.", Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.SignUp(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "User created successfully. Please sign in.", ack.Message)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: "Email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Email: "a@x.com"})

	requireRequestError(t, err, http.StatusBadRequest, "Email already registered")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSignUp_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Email: "a@x.com"})

	requireRequestError(t, err, http.StatusInternalServerError, "internal server error")
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestSignUp_ValidationErrorList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"msg":"field required"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{})

	requireRequestError(t, err, http.StatusUnprocessableEntity, "value is not a valid email address; field required")
	assert.ErrorIs(t, err, ErrUnprocessableEntity)
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signin", r.URL.Path)

		var body models.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body.Email)
		assert.Equal(t, "secret123", body.Password)

		writeJSON(t, w, http.StatusOK, models.AccessToken{
			AccessToken: "T",
			TokenType:   models.TokenTypeBearer,
			User: models.User{
				ID: "2f7c3f4e-1111-4c5e-9a0b-000000000001", Email: "a@x.com",
				FirstName: "A", LastName: "B", CreatedAt: created,
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "T", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "a@x.com", token.User.Email)
	assert.True(t, created.Equal(token.User.CreatedAt))
	assert.False(t, token.User.IsVerified)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com", Password: "nope"})

	requireRequestError(t, err, http.StatusUnauthorized, "Invalid email or password")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignIn_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"token_type": "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{})

	requireRequestError(t, err, http.StatusOK, "Server returned no access token")
}

func writeRawJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestSignIn_ZonelessCreatedAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRawJSON(w, http.StatusOK, `{"access_token":"T","token_type":"bearer","user":{"id":"u1","email":"a@x.com","first_name":"A","last_name":"B","is_verified":false,"created_at":"2024-01-01T00:00:00"}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "T", token.AccessToken)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(token.User.CreatedAt))
}

func TestSignIn_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRawJSON(w, http.StatusOK, `{"access_token":42,"token_type":"bearer"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{})

	// ответ получен, поэтому это не транспортная ошибка
	reqErr := requireRequestError(t, err, http.StatusOK, MalformedResponseDetail)
	assert.False(t, reqErr.IsTransport())
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "http 200")
}

func TestSignIn_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com"})

	reqErr := requireRequestError(t, err, 0, DefaultErrorDetail)
	assert.True(t, reqErr.IsTransport())
	assert.Contains(t, err.Error(), "signin request")
}

func TestSignIn_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(ctx, models.SignInRequest{})

	requireRequestError(t, err, 0, DefaultErrorDetail)
	assert.True(t, errors.Is(err, context.Canceled))
}

// ── ForgotPassword ──────────────────────────────────────────────────────────

func TestForgotPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/forgot-password", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "a@x.com"}, body)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "sent", Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "sent", ack.Message)
}

func TestForgotPassword_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to send reset email"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})

	requireRequestError(t, err, http.StatusInternalServerError, "Failed to send reset email")
}

// ── ResetPassword ───────────────────────────────────────────────────────────

func TestResetPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/reset-password", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"token": "reset-tok", "new_password": "newpass1"}, body)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Password updated successfully", Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "reset-tok", NewPassword: "newpass1"})

	require.NoError(t, err)
	assert.Equal(t, "Password updated successfully", ack.Message)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid or expired reset token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "bad-token", NewPassword: "newpass1"})

	requireRequestError(t, err, http.StatusBadRequest, "Invalid or expired reset token")
}

// ── Me ──────────────────────────────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.User{ID: "id-1", Email: "a@x.com", IsVerified: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Me(context.Background(), "T")

	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.True(t, user.IsVerified)
}

func TestMe_UnparseableCreatedAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRawJSON(w, http.StatusOK, `{"id":"u1","email":"a@x.com","created_at":"yesterday"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background(), "T")

	requireRequestError(t, err, http.StatusOK, MalformedResponseDetail)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestMe_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background(), "expired")

	requireRequestError(t, err, http.StatusUnauthorized, "Invalid token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "User not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background(), "T")

	requireRequestError(t, err, http.StatusNotFound, "User not found")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── VerifyToken ─────────────────────────────────────────────────────────────

func TestVerifyToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/verify-token", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Token is valid", Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.VerifyToken(context.Background(), "T")

	require.NoError(t, err)
	assert.True(t, ack.Success)
}

func TestVerifyToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyToken(context.Background(), "T")

	requireRequestError(t, err, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
}

// ── extractDetail ───────────────────────────────────────────────────────────

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"string detail", `{"detail":"Invalid token"}`, 401, "Invalid token"},
		{"empty detail", `{"detail":""}`, 400, DefaultErrorDetail},
		{"null detail", `{"detail":null}`, 400, DefaultErrorDetail},
		{"missing detail", `{"error":"x"}`, 400, DefaultErrorDetail},
		{"plain text", "gateway down", 502, "gateway down"},
		{"empty body", "", 503, "Service Unavailable"},
		{"empty body unknown status", "", 599, DefaultErrorDetail},
		{"detail list", `{"detail":[{"msg":"a"},{"msg":"b"}]}`, 422, "a; b"},
		{"detail object", `{"detail":{"code":1}}`, 400, DefaultErrorDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body), tt.status))
		})
	}
}

func TestRequestError_Error(t *testing.T) {
	httpErr := &RequestError{Status: 400, Detail: "Email already registered", Err: ErrBadRequest}
	assert.Equal(t, "http 400: Email already registered", httpErr.Error())
	assert.False(t, httpErr.IsTransport())

	netErr := &RequestError{Detail: DefaultErrorDetail, Err: errors.New("dial tcp: refused")}
	assert.Equal(t, "Request failed: dial tcp: refused", netErr.Error())
}

func TestMapHTTPError_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTeapot, models.ErrorResponse{Detail: "teapot"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyToken(context.Background(), "T")

	requireRequestError(t, err, http.StatusTeapot, "teapot")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
