package session

import (
	"context"
	"time"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewSessionStore(redisRepository contracts.RedisRepository, ttlInHours int) contracts.SessionStore {
	return &sessionStore{
		RedisRepository: redisRepository,
		TTL:             time.Duration(ttlInHours) * time.Hour,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

// Save writes the token, refresh token and user under fixed field names in
// a single hash write.
func (s *sessionStore) Save(ctx context.Context, sessionID string, session *models.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	fields := map[string]string{
		constvars.SessionFieldToken:        session.Token,
		constvars.SessionFieldRefreshToken: session.RefreshToken,
		constvars.SessionFieldUser:         string(userJSON),
	}
	return s.RedisRepository.SetHash(ctx, sessionKey(sessionID), fields, s.TTL)
}

// Load returns (nil, nil) when no session exists. A hash missing any of
// the three fields is treated as absent rather than handed out partially.
func (s *sessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	fields, err := s.RedisRepository.GetHash(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	token := fields[constvars.SessionFieldToken]
	refreshToken := fields[constvars.SessionFieldRefreshToken]
	userJSON := fields[constvars.SessionFieldUser]
	if token == "" || refreshToken == "" || userJSON == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return &models.Session{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
