package auth

import (
	"context"

	"safeclinic-web/internal/app/config"
	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/app/services/guard"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"
	"safeclinic-web/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient contracts.AuthBackendClient
	SessionStore      contracts.SessionStore
	LoginRateLimiter  contracts.LoginRateLimiter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionStore contracts.SessionStore,
	loginRateLimiter contracts.LoginRateLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthBackendClient: authBackendClient,
		SessionStore:      sessionStore,
		LoginRateLimiter:  loginRateLimiter,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// Login authenticates against the backend and, on success, persists the
// session before the role is compared to the login page's expected role.
// A mismatch keeps the session: it is valid for the user's own dashboard.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser, expectedRole models.Role) (*contracts.LoginOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.LoginRateLimiter.Allow(request.Email) {
		uc.Log.Warn("authUsecase.Login rate limited",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTooManyLoginAttempts()
	}

	login, err := uc.AuthBackendClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Token:        login.Token,
		RefreshToken: login.RefreshToken,
		User:         login.User,
	}

	sessionID := uuid.NewString()
	if err := uc.SessionStore.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	gatewayToken, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	output := &contracts.LoginOutput{
		SessionID: sessionID,
		Token:     gatewayToken,
		Session:   session,
	}

	if login.User.Role != expectedRole {
		uc.Log.Warn("authUsecase.Login role mismatch, session kept",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingRoleKey, string(login.User.Role)),
			zap.String(constvars.LoggingRequiredRoleKey, string(expectedRole)),
		)
		output.RoleMismatch = true
		output.MismatchMessage = guard.MismatchMessageFor(expectedRole)
		return output, nil
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingUserIDKey, login.User.ID),
	)
	return output, nil
}

// Logout clears the stored session only; the backend is not called, so a
// token the backend already revoked still logs out cleanly.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if sessionID == "" {
		return nil
	}
	return uc.SessionStore.Clear(ctx, sessionID)
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch()
	}
	return uc.AuthBackendClient.RegisterPatient(ctx, request)
}

func (uc *authUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch()
	}
	return uc.AuthBackendClient.RegisterDoctor(ctx, request)
}

func (uc *authUsecase) RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch()
	}
	return uc.AuthBackendClient.RegisterReceptionist(ctx, request)
}
