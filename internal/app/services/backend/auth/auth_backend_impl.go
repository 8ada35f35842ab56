package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authBackendClientInstance contracts.AuthBackendClient
	onceAuthBackendClient     sync.Once
)

type authBackendClient struct {
	BaseURL string
	HTTP    *http.Client
	Rest    *restclient.Client
	Log     *zap.Logger
}

func NewAuthBackendClient(rest *restclient.Client, timeoutInSeconds int, logger *zap.Logger) contracts.AuthBackendClient {
	onceAuthBackendClient.Do(func() {
		client := &authBackendClient{
			BaseURL: rest.BaseURL,
			HTTP:    &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
			Rest:    rest,
			Log:     logger,
		}
		authBackendClientInstance = client
	})
	return authBackendClientInstance
}

// Login speaks to the backend directly instead of going through the shared
// client: a 4xx here means bad credentials, not a revoked session, so the
// generic authorization mapping does not apply.
func (c *authBackendClient) Login(ctx context.Context, email, password string) (*responses.BackendLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL+constvars.EndpointAuthLogin, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("authBackendClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode >= constvars.StatusInternalServerError {
		c.Log.Error("authBackendClient.Login backend server error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendServer(constvars.ResourceLogin, resp.StatusCode)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		var backendErr responses.BackendError
		if err := json.Unmarshal(payload, &backendErr); err != nil {
			return nil, exceptions.ErrMalformedResponse(err, constvars.ResourceLogin)
		}
		c.Log.Warn("authBackendClient.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrInvalidCredentials(backendErr.Message)
	}

	login, err := restclient.DecodeItem[responses.BackendLogin](payload, constvars.ResourceLogin)
	if err != nil {
		return nil, err
	}
	if login.Token == "" || login.RefreshToken == "" || login.User.ID == "" {
		return nil, exceptions.ErrMalformedResponse(errors.New("login payload missing token, refresh token or user"), constvars.ResourceLogin)
	}

	c.Log.Info("authBackendClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, login.User.ID),
		zap.String(constvars.LoggingRoleKey, string(login.User.Role)),
	)
	return login, nil
}

func (c *authBackendClient) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterResult, error) {
	return c.register(ctx, constvars.EndpointPatients, constvars.ResourcePatient, request)
}

func (c *authBackendClient) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.RegisterResult, error) {
	return c.register(ctx, constvars.EndpointDoctors, constvars.ResourceDoctor, request)
}

func (c *authBackendClient) RegisterReceptionist(ctx context.Context, request *requests.RegisterReceptionist) (*responses.RegisterResult, error) {
	return c.register(ctx, constvars.EndpointReceptionists, constvars.ResourceReceptionist, request)
}

func (c *authBackendClient) register(ctx context.Context, endpoint, resource string, request interface{}) (*responses.RegisterResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPost, endpoint, resource, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.RegisterResult](payload, resource)
}
