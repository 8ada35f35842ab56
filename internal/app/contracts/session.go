package contracts

import (
	"context"

	"safeclinic-web/internal/app/models"
)

// SessionStore persists the {token, refreshToken, user} triple. Save and
// Clear are all-or-nothing so readers never observe a partial session.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session *models.Session) error
	// Load returns (nil, nil) when no session exists for the id.
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
