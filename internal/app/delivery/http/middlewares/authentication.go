package middlewares

import (
	"context"
	"net/http"
	"strings"

	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/utils"
)

// Authenticate resolves the gateway token into a session id. The token can
// arrive as a bearer header (API callers) or as the session cookie
// (browser navigation). The session itself is loaded later by the guard.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if authHeader := r.Header.Get(constvars.HeaderAuthorization); authHeader != "" {
			token = strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		} else if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
			token = cookie.Value
		}

		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			// An expired or garbage token is the same as no token: the
			// guard will send the visitor to the login page.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
