package controllers

import (
	"net/http"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/exceptions"
	"safeclinic-web/internal/pkg/utils"

	"go.uber.org/zap"
)

func sessionIDFromRequest(r *http.Request) string {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}

// respondUsecaseError invalidates the session and redirects to the login
// page when the backend rejected the token; any other failure is reported
// without touching the session.
func respondUsecaseError(log *zap.Logger, routeGuard contracts.RouteGuard, w http.ResponseWriter, r *http.Request, sessionID string, role models.Role, err error) {
	if redirectTo, invalidated := routeGuard.InvalidateOnAuthFailure(r.Context(), sessionID, role, err); invalidated {
		utils.BuildRedirectResponse(w, constvars.StatusUnauthorized, exceptions.ClientMessageOf(err), redirectTo)
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
