package receptionists

import (
	"context"
	"fmt"
	"sync"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	receptionistBackendClientInstance contracts.ReceptionistBackendClient
	onceReceptionistBackendClient     sync.Once
)

type receptionistBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewReceptionistBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.ReceptionistBackendClient {
	onceReceptionistBackendClient.Do(func() {
		receptionistBackendClientInstance = &receptionistBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return receptionistBackendClientInstance
}

func (c *receptionistBackendClient) GetProfile(ctx context.Context, receptionistID string) (*responses.ReceptionistProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("receptionistBackendClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", constvars.EndpointReceptionists, receptionistID), constvars.ResourceReceptionist, nil)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.ReceptionistProfile](payload, constvars.ResourceReceptionist)
}

func (c *receptionistBackendClient) UpdateProfile(ctx context.Context, receptionistID string, request *requests.UpdateReceptionistProfile) (*responses.ReceptionistProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("receptionistBackendClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", constvars.EndpointReceptionists, receptionistID), constvars.ResourceReceptionist, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.ReceptionistProfile](payload, constvars.ResourceReceptionist)
}
