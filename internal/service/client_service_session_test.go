package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-session/internal/adapter"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/mock"
	"github.com/MKhiriev/go-auth-session/internal/store"
	"github.com/MKhiriev/go-auth-session/models"
)

// newTestSessionSvc — хелпер для создания clientSessionService с моками
func newTestSessionSvc(t *testing.T) (*clientSessionService, *mock.MockServerAdapter, *mock.MockLocalSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockLocalSessionRepository(ctrl)

	svc := NewClientSessionService(mockAdapter, mockRepo, logger.Nop()).(*clientSessionService)
	return svc, mockAdapter, mockRepo
}

// memorySessionRepo — простое in-memory хранилище для сценарных тестов
type memorySessionRepo struct {
	token   string
	profile *models.User
}

func (r *memorySessionRepo) SaveSession(_ context.Context, token string, profile models.User) error {
	r.token = token
	r.profile = &profile
	return nil
}

func (r *memorySessionRepo) GetToken(context.Context) (string, error) {
	if r.token == "" {
		return "", store.ErrLocalSessionNotFound
	}
	return r.token, nil
}

func (r *memorySessionRepo) GetProfile(context.Context) (models.User, error) {
	if r.profile == nil {
		return models.User{}, store.ErrLocalSessionNotFound
	}
	return *r.profile, nil
}

func (r *memorySessionRepo) DeleteSession(context.Context) error {
	r.token = ""
	r.profile = nil
	return nil
}

func testProfile() models.User {
	return models.User{
		ID:        "7b1f0c7e-52a4-4d7b-9a35-3f3c1c9e2d11",
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
	}
}

func unauthorized(detail string) error {
	return &adapter.RequestError{Status: http.StatusUnauthorized, Detail: detail, Err: adapter.ErrUnauthorized}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientSessionService_Register_DoesNotPersist(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	req := models.SignUpRequest{Email: "a@x.com", Password: "secret123", FirstName: "A", LastName: "B"}
	ack := models.MessageResponse{Message: "User created successfully. Please sign in.", Success: true}

	// репозиторий не должен вызываться вовсе
	mockAdapter.EXPECT().SignUp(ctx, req).Return(ack, nil)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, ack, got)
}

func TestClientSessionService_Register_DuplicateEmail(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	reqErr := &adapter.RequestError{Status: http.StatusBadRequest, Detail: "Email already registered", Err: adapter.ErrBadRequest}
	mockAdapter.EXPECT().SignUp(ctx, gomock.Any()).Return(models.MessageResponse{}, reqErr)

	_, err := svc.Register(ctx, models.SignUpRequest{Email: "a@x.com"})

	var got *adapter.RequestError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "Email already registered", got.Detail)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestClientSessionService_Authenticate_PersistsTokenAndProfile(t *testing.T) {
	svc, mockAdapter, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	req := models.SignInRequest{Email: "a@x.com", Password: "secret123"}
	resp := models.AccessToken{AccessToken: "T", TokenType: models.TokenTypeBearer, User: testProfile()}

	gomock.InOrder(
		mockAdapter.EXPECT().SignIn(ctx, req).Return(resp, nil),
		mockRepo.EXPECT().SaveSession(ctx, "T", resp.User).Return(nil),
	)

	got, err := svc.Authenticate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestClientSessionService_Authenticate_FailurePersistsNothing(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.AccessToken{}, unauthorized("Invalid email or password"))
	// SaveSession не ожидается → gomock упадёт, если будет вызван

	_, err := svc.Authenticate(ctx, models.SignInRequest{Email: "a@x.com", Password: "wrong"})

	var reqErr *adapter.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientSessionService_Authenticate_SaveFails(t *testing.T) {
	svc, mockAdapter, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.AccessToken{AccessToken: "T", User: testProfile()}, nil)
	mockRepo.EXPECT().SaveSession(ctx, "T", gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Authenticate(ctx, models.SignInRequest{Email: "a@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrSessionNotPersisted)
}

func TestClientSessionService_Authenticate_TransportFailure(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	cause := errors.New("connection refused")
	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).
		Return(models.AccessToken{}, &adapter.RequestError{Status: 0, Detail: adapter.DefaultErrorDetail, Err: cause})

	_, err := svc.Authenticate(ctx, models.SignInRequest{Email: "a@x.com", Password: "secret123"})

	var reqErr *adapter.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.IsTransport())
	assert.ErrorIs(t, err, cause)
}

// ── RequestPasswordReset ─────────────────────────────────────────────────────

func TestClientSessionService_RequestPasswordReset_FixedAck(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	// сервер отвечает по-разному, клиент всегда отдаёт одинаковый ack
	mockAdapter.EXPECT().ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "unknown@x.com"}).
		Return(models.MessageResponse{Message: "whatever", Success: true}, nil)
	mockAdapter.EXPECT().ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "a@x.com"}).
		Return(models.MessageResponse{Message: "something else"}, nil)

	unknown, err := svc.RequestPasswordReset(ctx, "unknown@x.com")
	require.NoError(t, err)
	known, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, PasswordResetRequestedAck, unknown)
	assert.Equal(t, unknown, known)
}

func TestClientSessionService_RequestPasswordReset_ServerError(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	reqErr := &adapter.RequestError{Status: http.StatusInternalServerError, Detail: "Failed to send reset email", Err: adapter.ErrInternalServerError}
	mockAdapter.EXPECT().ForgotPassword(ctx, gomock.Any()).Return(models.MessageResponse{}, reqErr)

	_, err := svc.RequestPasswordReset(ctx, "a@x.com")
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── CompletePasswordReset ────────────────────────────────────────────────────

func TestClientSessionService_CompletePasswordReset_Success(t *testing.T) {
	svc, mockAdapter, _ := newTestSessionSvc(t)
	ctx := context.Background()

	ack := models.MessageResponse{Message: "Password updated successfully", Success: true}
	mockAdapter.EXPECT().ResetPassword(ctx, models.ResetPasswordRequest{Token: "good", NewPassword: "newpass1"}).Return(ack, nil)

	got, err := svc.CompletePasswordReset(ctx, "good", "newpass1")
	require.NoError(t, err)
	assert.Equal(t, ack, got)
}

// ── FetchCurrentProfile ──────────────────────────────────────────────────────

func TestClientSessionService_FetchCurrentProfile_NoToken_NoNetwork(t *testing.T) {
	svc, _, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetToken(ctx).Return("", store.ErrLocalSessionNotFound)
	// mockAdapter.Me не ожидается

	_, err := svc.FetchCurrentProfile(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientSessionService_FetchCurrentProfile_UsesStoredToken(t *testing.T) {
	svc, mockAdapter, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	fresh := testProfile()
	fresh.IsVerified = true

	mockRepo.EXPECT().GetToken(ctx).Return("T", nil)
	mockAdapter.EXPECT().Me(ctx, "T").Return(fresh, nil)

	got, err := svc.FetchCurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestClientSessionService_FetchCurrentProfile_RejectedToken_NoAutoClear(t *testing.T) {
	svc, mockAdapter, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetToken(ctx).Return("T", nil)
	mockAdapter.EXPECT().Me(ctx, "T").Return(models.User{}, unauthorized("Invalid token"))
	// DeleteSession не ожидается

	_, err := svc.FetchCurrentProfile(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── VerifySession ────────────────────────────────────────────────────────────

func TestClientSessionService_VerifySession_NoToken_NoNetwork(t *testing.T) {
	svc, _, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetToken(ctx).Return("", store.ErrLocalSessionNotFound)

	assert.False(t, svc.VerifySession(ctx))
}

func TestClientSessionService_VerifySession(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		want      bool
	}{
		{name: "accepted", want: true},
		{name: "rejected", verifyErr: unauthorized("Invalid token"), want: false},
		{name: "transport failure", verifyErr: &adapter.RequestError{Detail: adapter.DefaultErrorDetail, Err: errors.New("timeout")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter, mockRepo := newTestSessionSvc(t)
			ctx := context.Background()

			mockRepo.EXPECT().GetToken(ctx).Return("T", nil)
			mockAdapter.EXPECT().VerifyToken(ctx, "T").
				Return(models.MessageResponse{Message: "Token is valid", Success: true}, tt.verifyErr)
			// при отказе токен не удаляется

			assert.Equal(t, tt.want, svc.VerifySession(ctx))
		})
	}
}

// ── EndSession / local reads ─────────────────────────────────────────────────

func TestClientSessionService_EndSession_StorageErrorKeepsSession(t *testing.T) {
	svc, _, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().DeleteSession(ctx).Return(errors.New("readonly")),
		mockRepo.EXPECT().GetToken(ctx).Return("T", nil),
	)

	assert.NotPanics(t, func() { svc.EndSession(ctx) })
	// ошибка хранилища только логируется, сессия остаётся на месте
	assert.True(t, svc.HasStoredToken(ctx))
}

func TestClientSessionService_CurrentToken_StorageErrorIsAbsent(t *testing.T) {
	svc, _, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetToken(ctx).Return("", errors.New("io error"))

	token, ok := svc.CurrentToken(ctx)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestClientSessionService_CachedProfile(t *testing.T) {
	svc, _, mockRepo := newTestSessionSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetProfile(ctx).Return(testProfile(), nil)
	mockRepo.EXPECT().GetProfile(ctx).Return(models.User{}, store.ErrLocalSessionNotFound)

	p, ok := svc.CachedProfile(ctx)
	assert.True(t, ok)
	assert.Equal(t, testProfile(), p)

	_, ok = svc.CachedProfile(ctx)
	assert.False(t, ok)
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestClientSessionService_Scenario_RegisterSignInSignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	repo := &memorySessionRepo{}
	svc := NewClientSessionService(mockAdapter, repo, logger.Nop())
	ctx := context.Background()

	profile := testProfile()
	mockAdapter.EXPECT().SignUp(ctx, gomock.Any()).
		Return(models.MessageResponse{Message: "User created successfully. Please sign in.", Success: true}, nil)
	mockAdapter.EXPECT().SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: "secret123"}).
		Return(models.AccessToken{AccessToken: "T", TokenType: models.TokenTypeBearer, User: profile}, nil)

	ack, err := svc.Register(ctx, models.SignUpRequest{Email: "a@x.com", Password: "secret123", FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.False(t, svc.HasStoredToken(ctx), "register must not sign in")

	_, err = svc.Authenticate(ctx, models.SignInRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	token, ok := svc.CurrentToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "T", token)
	assert.True(t, svc.HasStoredToken(ctx))
	cached, ok := svc.CachedProfile(ctx)
	require.True(t, ok)
	assert.Equal(t, profile, cached)

	svc.EndSession(ctx)

	assert.False(t, svc.HasStoredToken(ctx))
	_, ok = svc.CachedProfile(ctx)
	assert.False(t, ok)

	// повторный выход на пустом состоянии тоже допустим
	svc.EndSession(ctx)
	assert.False(t, svc.HasStoredToken(ctx))
}

func TestClientSessionService_Scenario_SecondSignInOverwrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	repo := &memorySessionRepo{}
	svc := NewClientSessionService(mockAdapter, repo, logger.Nop())
	ctx := context.Background()

	first, second := testProfile(), testProfile()
	second.Email = "b@x.com"

	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.AccessToken{AccessToken: "T1", User: first}, nil)
	mockAdapter.EXPECT().SignIn(ctx, gomock.Any()).Return(models.AccessToken{AccessToken: "T2", User: second}, nil)

	_, err := svc.Authenticate(ctx, models.SignInRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, models.SignInRequest{Email: "b@x.com", Password: "p"})
	require.NoError(t, err)

	token, _ := svc.CurrentToken(ctx)
	cached, _ := svc.CachedProfile(ctx)
	assert.Equal(t, "T2", token)
	assert.Equal(t, "b@x.com", cached.Email)
}

func TestClientSessionService_Scenario_BadResetTokenKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	repo := &memorySessionRepo{}
	require.NoError(t, repo.SaveSession(context.Background(), "T", testProfile()))
	svc := NewClientSessionService(mockAdapter, repo, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().ResetPassword(ctx, models.ResetPasswordRequest{Token: "bad-token", NewPassword: "newpass1"}).
		Return(models.MessageResponse{}, &adapter.RequestError{
			Status: http.StatusBadRequest,
			Detail: "Invalid or expired reset token",
			Err:    adapter.ErrBadRequest,
		})

	_, err := svc.CompletePasswordReset(ctx, "bad-token", "newpass1")

	var reqErr *adapter.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Invalid or expired reset token", reqErr.Detail)

	token, ok := svc.CurrentToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "T", token)
}
