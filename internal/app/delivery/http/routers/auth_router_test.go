package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser, expectedRole models.Role) (*contracts.LoginOutput, error) {
	args := m.Called(ctx, request, expectedRole)
	output, _ := args.Get(0).(*contracts.LoginOutput)
	return output, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterResult)
	return result, args.Error(1)
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constvars.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func postJSON(router chi.Router, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthRouter_LoginPatient(t *testing.T) {
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	authController := controllers.NewAuthController(logger, mockAuthUsecase, 8)

	router := chi.NewRouter()
	attachAuthRoutes(router, authController)

	t.Run("Successful login sets the session cookie", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser"), models.RolePatient).Return(&contracts.LoginOutput{
			SessionID: "abc",
			Token:     "gateway-token",
			Session: &models.Session{
				Token: "backend-token",
				User:  models.User{ID: "user-1", Role: models.RolePatient},
			},
		}, nil).Once()

		recorder := postJSON(router, constvars.RoutePathLoginPatient, requests.LoginUser{
			Email:    "maria@example.com",
			Password: "Sup3rSenha!",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		cookie := sessionCookie(t, recorder)
		assert.NotNil(t, cookie)
		assert.Equal(t, "gateway-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("Role mismatch returns 403 but still sets the cookie", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser"), models.RolePatient).Return(&contracts.LoginOutput{
			SessionID: "abc",
			Token:     "gateway-token",
			Session: &models.Session{
				Token: "backend-token",
				User:  models.User{ID: "user-2", Role: models.RoleDoctor},
			},
			RoleMismatch:    true,
			MismatchMessage: constvars.ErrClientPatientsOnly,
		}, nil).Once()

		recorder := postJSON(router, constvars.RoutePathLoginPatient, requests.LoginUser{
			Email:    "carlos@example.com",
			Password: "Sup3rSenha!",
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		cookie := sessionCookie(t, recorder)
		assert.NotNil(t, cookie)
		assert.Equal(t, "gateway-token", cookie.Value)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientPatientsOnly, body.Message)
	})

	t.Run("Invalid body returns 400 without calling the usecase", func(t *testing.T) {
		recorder := postJSON(router, constvars.RoutePathLoginPatient, requests.LoginUser{
			Email:    "not-an-email",
			Password: "Sup3rSenha!",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Logout", mock.Anything, mock.Anything).Return(nil)
	authController := controllers.NewAuthController(logger, mockAuthUsecase, 8)

	router := chi.NewRouter()
	attachAuthRoutes(router, authController)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookie := sessionCookie(t, recorder)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthRouter_RegisterPatient(t *testing.T) {
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("RegisterPatient", mock.Anything, mock.AnythingOfType("*requests.RegisterPatient")).Return(&responses.RegisterResult{ID: "user-1"}, nil)
	authController := controllers.NewAuthController(logger, mockAuthUsecase, 8)

	router := chi.NewRouter()
	attachAuthRoutes(router, authController)

	recorder := postJSON(router, "/registro/paciente", requests.RegisterPatient{
		Name:           "Maria Souza",
		Email:          "maria@example.com",
		CPF:            "123.456.789-00",
		Phone:          "(11) 98765-4321",
		BirthDate:      "1990-04-12",
		Password:       "Sup3rSenha!",
		RetypePassword: "Sup3rSenha!",
	})

	// Masked CPF and phone are accepted: sanitization strips them before
	// validation runs.
	assert.Equal(t, http.StatusCreated, recorder.Code)
	mockAuthUsecase.AssertCalled(t, "RegisterPatient", mock.Anything, mock.MatchedBy(func(request *requests.RegisterPatient) bool {
		return request.CPF == "12345678900" && request.Phone == "11987654321"
	}))
}
