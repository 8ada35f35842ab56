package responses

import "safeclinic-web/internal/app/models"

type LoginResult struct {
	SessionID string      `json:"sessionId"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
}

type RegisterResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
