package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRouteGuard struct {
	mock.Mock
}

func (m *MockRouteGuard) Evaluate(ctx context.Context, sessionID string, requiredRole models.Role) (*models.GuardDecision, error) {
	args := m.Called(ctx, sessionID, requiredRole)
	decision, _ := args.Get(0).(*models.GuardDecision)
	return decision, args.Error(1)
}

func (m *MockRouteGuard) InvalidateOnAuthFailure(ctx context.Context, sessionID string, requiredRole models.Role, err error) (string, bool) {
	args := m.Called(ctx, sessionID, requiredRole, err)
	return args.String(0), args.Bool(1)
}

func guardedRequest(t *testing.T, decision *models.GuardDecision) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	routeGuard := new(MockRouteGuard)
	routeGuard.On("Evaluate", mock.Anything, mock.Anything, models.RolePatient).Return(decision, nil)

	middlewareInstance := &Middlewares{Log: zap.NewNop(), RouteGuard: routeGuard}

	reachedHandler := false
	handler := middlewareInstance.RequireRole(models.RolePatient)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedHandler = true
		session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
		assert.NotNil(t, session)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder, reachedHandler
}

func TestRequireRole_Authorized(t *testing.T) {
	recorder, reachedHandler := guardedRequest(t, &models.GuardDecision{
		State:     models.GuardAuthorized,
		SessionID: "abc",
		Session:   &models.Session{User: models.User{ID: "user-1", Role: models.RolePatient}},
	})

	assert.True(t, reachedHandler)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	recorder, reachedHandler := guardedRequest(t, &models.GuardDecision{
		State:      models.GuardUnauthenticated,
		Message:    constvars.ErrClientNotLoggedIn,
		RedirectTo: constvars.RoutePathLoginPatient,
	})

	assert.False(t, reachedHandler)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, constvars.RoutePathLoginPatient, body.RedirectTo)
}

func TestRequireRole_RejectedHasNoRedirect(t *testing.T) {
	recorder, reachedHandler := guardedRequest(t, &models.GuardDecision{
		State:     models.GuardRejected,
		SessionID: "abc",
		Session:   &models.Session{User: models.User{ID: "user-2", Role: models.RoleDoctor}},
		Message:   constvars.ErrClientPatientsOnly,
	})

	// Wrong role blocks navigation without pushing the user to a login
	// page: their session is still valid for their own dashboard.
	assert.False(t, reachedHandler)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, constvars.ErrClientPatientsOnly, body.Message)
	assert.Empty(t, body.RedirectTo)
}
