package contracts

import (
	"context"

	"safeclinic-web/internal/app/models"
)

// RouteGuard decides whether a stored session may enter a role-gated
// route, and owns the only path that invalidates a session.
type RouteGuard interface {
	Evaluate(ctx context.Context, sessionID string, requiredRole models.Role) (*models.GuardDecision, error)
	// InvalidateOnAuthFailure clears the session and reports the login page
	// to land on, but only when err carries an authorization failure.
	InvalidateOnAuthFailure(ctx context.Context, sessionID string, requiredRole models.Role, err error) (redirectTo string, invalidated bool)
}
