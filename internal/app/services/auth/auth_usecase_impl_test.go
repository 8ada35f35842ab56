package auth

import (
	"context"
	"testing"

	"safeclinic-web/internal/app/config"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthBackendClient struct {
	mock.Mock
}

func (m *MockAuthBackendClient) Login(ctx context.Context, email, password string) (*responses.BackendLogin, error) {
	args := m.Called(ctx, email, password)
	login, _ := args.Get(0).(*responses.BackendLogin)
	return login, args.Error(1)
}

func (m *MockAuthBackendClient) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

func (m *MockAuthBackendClient) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

func (m *MockAuthBackendClient) RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, session *models.Session) error {
	args := m.Called(ctx, sessionID, session)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(email string) bool { return true }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(email string) bool { return false }

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 8},
	}
}

func backendLogin(role models.Role) *responses.BackendLogin {
	return &responses.BackendLogin{
		Token:        "backend-token",
		RefreshToken: "backend-refresh",
		User:         models.User{ID: "user-1", Name: "Maria", Email: "maria@example.com", Role: role},
	}
}

func loginRequest() *requests.LoginUser {
	return &requests.LoginUser{Email: "maria@example.com", Password: "Sup3rSenha!"}
}

func TestAuthUsecase_LoginSuccess(t *testing.T) {
	backend := new(MockAuthBackendClient)
	store := new(MockSessionStore)
	backend.On("Login", mock.Anything, "maria@example.com", "Sup3rSenha!").Return(backendLogin(models.RolePatient), nil)
	store.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*models.Session")).Return(nil)

	usecase := NewAuthUsecase(backend, store, allowAllLimiter{}, testConfig(), zap.NewNop())
	output, err := usecase.Login(context.Background(), loginRequest(), models.RolePatient)

	assert.NoError(t, err)
	assert.False(t, output.RoleMismatch)
	assert.NotEmpty(t, output.SessionID)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, "user-1", output.Session.User.ID)
	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestAuthUsecase_LoginRoleMismatchKeepsSession(t *testing.T) {
	backend := new(MockAuthBackendClient)
	store := new(MockSessionStore)
	backend.On("Login", mock.Anything, "maria@example.com", "Sup3rSenha!").Return(backendLogin(models.RolePatient), nil)
	store.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*models.Session")).Return(nil)

	usecase := NewAuthUsecase(backend, store, allowAllLimiter{}, testConfig(), zap.NewNop())
	output, err := usecase.Login(context.Background(), loginRequest(), models.RoleDoctor)

	// The session is persisted before the role check: valid credentials
	// always produce a usable session for the user's own dashboard.
	assert.NoError(t, err)
	assert.True(t, output.RoleMismatch)
	assert.Equal(t, constvars.ErrClientDoctorsOnly, output.MismatchMessage)
	assert.NotEmpty(t, output.Token)
	store.AssertNumberOfCalls(t, "Save", 1)
	store.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestAuthUsecase_LoginInvalidCredentials(t *testing.T) {
	backend := new(MockAuthBackendClient)
	store := new(MockSessionStore)
	backend.On("Login", mock.Anything, "maria@example.com", "Sup3rSenha!").Return(nil, exceptions.ErrInvalidCredentials(""))

	usecase := NewAuthUsecase(backend, store, allowAllLimiter{}, testConfig(), zap.NewNop())
	_, err := usecase.Login(context.Background(), loginRequest(), models.RolePatient)

	assert.Error(t, err)
	assert.Equal(t, exceptions.KindInvalidCredentials, exceptions.KindOf(err))
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_LoginRateLimited(t *testing.T) {
	backend := new(MockAuthBackendClient)
	store := new(MockSessionStore)

	usecase := NewAuthUsecase(backend, store, denyAllLimiter{}, testConfig(), zap.NewNop())
	_, err := usecase.Login(context.Background(), loginRequest(), models.RolePatient)

	assert.Error(t, err)
	assert.Equal(t, exceptions.KindRateLimited, exceptions.KindOf(err))
	backend.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("Clears the stored session", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Clear", mock.Anything, "abc").Return(nil)

		usecase := NewAuthUsecase(new(MockAuthBackendClient), store, allowAllLimiter{}, testConfig(), zap.NewNop())
		assert.NoError(t, usecase.Logout(context.Background(), "abc"))
		store.AssertCalled(t, "Clear", mock.Anything, "abc")
	})

	t.Run("Anonymous logout is a no-op", func(t *testing.T) {
		store := new(MockSessionStore)

		usecase := NewAuthUsecase(new(MockAuthBackendClient), store, allowAllLimiter{}, testConfig(), zap.NewNop())
		assert.NoError(t, usecase.Logout(context.Background(), ""))
		store.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_RegisterPasswordMismatch(t *testing.T) {
	backend := new(MockAuthBackendClient)
	usecase := NewAuthUsecase(backend, new(MockSessionStore), allowAllLimiter{}, testConfig(), zap.NewNop())

	_, err := usecase.RegisterPatient(context.Background(), &requests.RegisterPatient{
		Password:       "Sup3rSenha!",
		RetypePassword: "Outr4Senha!",
	})
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	backend.AssertNotCalled(t, "RegisterPatient", mock.Anything, mock.Anything)
}
