package responses

import "safeclinic-web/internal/app/models"

// BackendEnvelope is the wrapper the clinic API puts around every payload.
// Data stays raw so each client can decode its own shape and reject
// envelopes that do not match it.
type BackendEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type BackendError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BackendLogin struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

type BackendList[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    []T    `json:"data"`
	Total   int    `json:"total,omitempty"`
}

type BackendItem[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}
