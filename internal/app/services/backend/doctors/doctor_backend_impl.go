package doctors

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
	doctorBackendClientInstance contracts.DoctorBackendClient
	onceDoctorBackendClient     sync.Once
)

type doctorBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewDoctorBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.DoctorBackendClient {
	onceDoctorBackendClient.Do(func() {
		doctorBackendClientInstance = &doctorBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return doctorBackendClientInstance
}

func (c *doctorBackendClient) GetProfile(ctx context.Context, doctorID string) (*responses.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", constvars.EndpointDoctors, doctorID), constvars.ResourceDoctor, nil)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.DoctorProfile](payload, constvars.ResourceDoctor)
}

func (c *doctorBackendClient) UpdateProfile(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", constvars.EndpointDoctors, doctorID), constvars.ResourceDoctor, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.DoctorProfile](payload, constvars.ResourceDoctor)
}

func (c *doctorBackendClient) ListDoctors(ctx context.Context, pagination *requests.Pagination) ([]responses.DoctorSummary, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	path := fmt.Sprintf("%s?page=%d&pageSize=%d", constvars.EndpointDoctors, pagination.Page, pagination.PageSize)
	payload, err := c.Rest.Do(ctx, constvars.MethodGet, path, constvars.ResourceDoctor, nil)
	if err != nil {
		return nil, 0, err
	}
	return restclient.DecodeList[responses.DoctorSummary](payload, constvars.ResourceDoctor)
}
