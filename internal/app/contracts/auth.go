package contracts

import (
	"context"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type LoginOutput struct {
	SessionID string
	Token     string
	Session   *models.Session
	// RoleMismatch is set when the credentials were valid but the user's
	// role does not match the login page used. The session is persisted
	// anyway; only navigation is blocked.
	RoleMismatch    bool
	MismatchMessage string
}

type AuthUsecase interface {
	// Login authenticates against the backend and persists the session on
	// success, even when the authenticated role differs from expectedRole.
	// A mismatch is reported through LoginOutput.RoleMismatch.
	Login(ctx context.Context, request *requests.LoginUser, expectedRole models.Role) (*LoginOutput, error)
	Logout(ctx context.Context, sessionID string) error
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error)
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error)
	RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error)
}

// AuthBackendClient talks to the clinic API's authentication endpoints.
type AuthBackendClient interface {
	Login(ctx context.Context, email, password string) (*responses.BackendLogin, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error)
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error)
	RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error)
}

// LoginRateLimiter throttles login attempts per email.
type LoginRateLimiter interface {
	Allow(email string) bool
}
