package restclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client wraps calls to the clinic REST API. It attaches the backend bearer
// token found in the request context and translates transport and status
// failures into classified errors.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

func NewClient(baseURL string, timeoutInSeconds int, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
		Log:     logger,
	}
}

// WithSession stores the backend session on the context so Do can attach
// its bearer token.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

// Do sends method+path with an optional JSON body and returns the raw
// response payload for a 2xx status. Any other outcome comes back as a
// CustomError classified by what happened.
func (c *Client) Do(ctx context.Context, method, path, resource string, body interface{}) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && session != nil {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+session.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.Log.Error("restclient.Do deadline exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.Error(err),
			)
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		c.Log.Error("restclient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode >= constvars.StatusOK && resp.StatusCode < constvars.StatusMovedPermanently {
		return payload, nil
	}

	c.Log.Warn("restclient.Do backend returned non-2xx",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)

	switch {
	case resp.StatusCode == constvars.StatusUnauthorized || resp.StatusCode == constvars.StatusForbidden:
		return nil, exceptions.ErrAuthorizationRejected(resource)
	case resp.StatusCode >= constvars.StatusInternalServerError:
		return nil, exceptions.ErrBackendServer(resource, resp.StatusCode)
	default:
		var backendErr responses.BackendError
		if err := json.Unmarshal(payload, &backendErr); err != nil {
			return nil, exceptions.ErrMalformedResponse(err, resource)
		}
		return nil, exceptions.ErrBackendValidation(backendErr.Message)
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Total   int             `json:"total,omitempty"`
}

// DecodeItem unwraps a single-object envelope. A missing or null data field
// is a malformed response, never a zero value handed to the caller.
func DecodeItem[T any](payload []byte, resource string) (*T, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, exceptions.ErrMalformedResponse(err, resource)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, exceptions.ErrMalformedResponse(errors.New("data field absent"), resource)
	}

	item := new(T)
	if err := json.Unmarshal(env.Data, item); err != nil {
		return nil, exceptions.ErrMalformedResponse(err, resource)
	}
	return item, nil
}

// DecodeList unwraps a list envelope, returning the items and the reported
// total. An absent data field is malformed; an empty array is a valid,
// empty result.
func DecodeList[T any](payload []byte, resource string) ([]T, int, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, 0, exceptions.ErrMalformedResponse(err, resource)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, 0, exceptions.ErrMalformedResponse(errors.New("data field absent"), resource)
	}

	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, 0, exceptions.ErrMalformedResponse(err, resource)
	}
	total := env.Total
	if total == 0 {
		total = len(items)
	}
	return items, total, nil
}
