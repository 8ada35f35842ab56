package specialities

import (
	"context"
	"sync"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	specialityBackendClientInstance contracts.SpecialityBackendClient
	onceSpecialityBackendClient     sync.Once
)

type specialityBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewSpecialityBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.SpecialityBackendClient {
	onceSpecialityBackendClient.Do(func() {
		specialityBackendClientInstance = &specialityBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return specialityBackendClientInstance
}

func (c *specialityBackendClient) List(ctx context.Context) ([]responses.Speciality, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("specialityBackendClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, constvars.EndpointSpecialities, constvars.ResourceSpeciality, nil)
	if err != nil {
		return nil, err
	}
	specialities, _, err := restclient.DecodeList[responses.Speciality](payload, constvars.ResourceSpeciality)
	return specialities, err
}
