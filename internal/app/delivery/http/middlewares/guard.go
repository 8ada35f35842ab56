package middlewares

import (
	"context"
	"net/http"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/utils"
)

// RequireRole gates a dashboard subtree behind the route guard. An
// unauthenticated visitor gets a redirect to the role's login page; a
// logged-in user with another role gets a 403 with an explanation and no
// redirect, keeping their session intact.
func (m *Middlewares) RequireRole(requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

			decision, err := m.RouteGuard.Evaluate(r.Context(), sessionID, requiredRole)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			switch decision.State {
			case models.GuardAuthorized:
				ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, decision.Session)
				next.ServeHTTP(w, r.WithContext(ctx))
			case models.GuardRejected:
				utils.BuildRedirectResponse(w, constvars.StatusForbidden, decision.Message, "")
			default:
				utils.BuildRedirectResponse(w, constvars.StatusUnauthorized, decision.Message, decision.RedirectTo)
			}
		})
	}
}
