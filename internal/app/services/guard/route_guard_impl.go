package guard

import (
	"context"
	"sync"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	routeGuardInstance contracts.RouteGuard
	onceRouteGuard     sync.Once
)

type routeGuard struct {
	SessionStore contracts.SessionStore
	Log          *zap.Logger
}

func NewRouteGuard(sessionStore contracts.SessionStore, logger *zap.Logger) contracts.RouteGuard {
	onceRouteGuard.Do(func() {
		routeGuardInstance = &routeGuard{
			SessionStore: sessionStore,
			Log:          logger,
		}
	})
	return routeGuardInstance
}

// LoginPathFor maps a required role to the login page a rejected visitor
// should land on.
func LoginPathFor(role models.Role) string {
	switch role {
	case models.RoleDoctor:
		return constvars.RoutePathLoginDoctor
	case models.RoleReceptionist:
		return constvars.RoutePathLoginReceptionist
	default:
		return constvars.RoutePathLoginPatient
	}
}

func MismatchMessageFor(role models.Role) string {
	switch role {
	case models.RoleDoctor:
		return constvars.ErrClientDoctorsOnly
	case models.RoleReceptionist:
		return constvars.ErrClientReceptionistsOnly
	default:
		return constvars.ErrClientPatientsOnly
	}
}

// Evaluate walks the route entry state machine. No session redirects to
// the role's login page; a session with the wrong role is rejected without
// being cleared, since it may still be valid for its own dashboard.
func (g *routeGuard) Evaluate(ctx context.Context, sessionID string, requiredRole models.Role) (*models.GuardDecision, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if sessionID == "" {
		return &models.GuardDecision{
			State:      models.GuardUnauthenticated,
			Message:    constvars.ErrClientNotLoggedIn,
			RedirectTo: LoginPathFor(requiredRole),
		}, nil
	}

	session, err := g.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		g.Log.Info("routeGuard.Evaluate no stored session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return &models.GuardDecision{
			State:      models.GuardUnauthenticated,
			SessionID:  sessionID,
			Message:    constvars.ErrClientSessionExpired,
			RedirectTo: LoginPathFor(requiredRole),
		}, nil
	}

	if session.User.Role != requiredRole {
		g.Log.Warn("routeGuard.Evaluate role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingRoleKey, string(session.User.Role)),
			zap.String(constvars.LoggingRequiredRoleKey, string(requiredRole)),
		)
		return &models.GuardDecision{
			State:     models.GuardRejected,
			SessionID: sessionID,
			Session:   session,
			Message:   MismatchMessageFor(requiredRole),
		}, nil
	}

	g.Log.Debug("routeGuard.Evaluate authorized",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingGuardStateKey, models.GuardAuthorized.String()),
	)
	return &models.GuardDecision{
		State:     models.GuardAuthorized,
		SessionID: sessionID,
		Session:   session,
	}, nil
}

// InvalidateOnAuthFailure is the only path that revokes a session. It acts
// solely on authorization failures reported by the backend; every other
// failure leaves the session untouched.
func (g *routeGuard) InvalidateOnAuthFailure(ctx context.Context, sessionID string, requiredRole models.Role, err error) (string, bool) {
	if !exceptions.IsAuthorization(err) {
		return "", false
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Warn("routeGuard.InvalidateOnAuthFailure clearing session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Error(err),
	)

	if clearErr := g.SessionStore.Clear(ctx, sessionID); clearErr != nil {
		g.Log.Error("routeGuard.InvalidateOnAuthFailure failed to clear session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(clearErr),
		)
	}
	return LoginPathFor(requiredRole), true
}
