package session

import (
	"context"
	"testing"
	"time"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) SetHash(ctx context.Context, key string, fields map[string]string, exp time.Duration) error {
	args := m.Called(ctx, key, fields, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetHash(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	fields, _ := args.Get(0).(map[string]string)
	return fields, args.Error(1)
}

func testSession() *models.Session {
	return &models.Session{
		Token:        "backend-token",
		RefreshToken: "backend-refresh",
		User: models.User{
			ID:    "user-1",
			Name:  "Maria Souza",
			Email: "maria@example.com",
			Role:  models.RolePatient,
		},
	}
}

func TestSessionStore_SaveWritesSingleHash(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	store := NewSessionStore(redisRepository, 8)

	redisRepository.On("SetHash", mock.Anything, "session:abc", mock.MatchedBy(func(fields map[string]string) bool {
		return fields[constvars.SessionFieldToken] == "backend-token" &&
			fields[constvars.SessionFieldRefreshToken] == "backend-refresh" &&
			fields[constvars.SessionFieldUser] != ""
	}), 8*time.Hour).Return(nil)

	err := store.Save(context.Background(), "abc", testSession())
	assert.NoError(t, err)
	redisRepository.AssertNumberOfCalls(t, "SetHash", 1)
}

func TestSessionStore_LoadRoundTrip(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	store := NewSessionStore(redisRepository, 8)

	redisRepository.On("GetHash", mock.Anything, "session:abc").Return(map[string]string{
		constvars.SessionFieldToken:        "backend-token",
		constvars.SessionFieldRefreshToken: "backend-refresh",
		constvars.SessionFieldUser:         `{"id":"user-1","name":"Maria Souza","email":"maria@example.com","role":"patient"}`,
	}, nil)

	session, err := store.Load(context.Background(), "abc")
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, "backend-token", session.Token)
	assert.Equal(t, "backend-refresh", session.RefreshToken)
	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, models.RolePatient, session.User.Role)
}

func TestSessionStore_LoadMissingSession(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	store := NewSessionStore(redisRepository, 8)

	redisRepository.On("GetHash", mock.Anything, "session:gone").Return(map[string]string{}, nil)

	session, err := store.Load(context.Background(), "gone")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStore_LoadPartialHashIsAbsent(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	store := NewSessionStore(redisRepository, 8)

	// A hash missing a field must never surface as a usable session.
	redisRepository.On("GetHash", mock.Anything, "session:partial").Return(map[string]string{
		constvars.SessionFieldToken: "backend-token",
	}, nil)

	session, err := store.Load(context.Background(), "partial")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStore_Clear(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	store := NewSessionStore(redisRepository, 8)

	redisRepository.On("Delete", mock.Anything, "session:abc").Return(nil)

	assert.NoError(t, store.Clear(context.Background(), "abc"))
	redisRepository.AssertCalled(t, "Delete", mock.Anything, "session:abc")
}
