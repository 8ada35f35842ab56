package patients

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
	patientBackendClientInstance contracts.PatientBackendClient
	oncePatientBackendClient     sync.Once
)

type patientBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewPatientBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.PatientBackendClient {
	oncePatientBackendClient.Do(func() {
		patientBackendClientInstance = &patientBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return patientBackendClientInstance
}

func (c *patientBackendClient) GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID), constvars.ResourcePatient, nil)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.PatientProfile](payload, constvars.ResourcePatient)
}

func (c *patientBackendClient) UpdateProfile(ctx context.Context, patientID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID), constvars.ResourcePatient, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.PatientProfile](payload, constvars.ResourcePatient)
}

func (c *patientBackendClient) ListPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.PatientSummary, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	path := fmt.Sprintf("%s?page=%d&pageSize=%d", constvars.EndpointPatients, pagination.Page, pagination.PageSize)
	payload, err := c.Rest.Do(ctx, constvars.MethodGet, path, constvars.ResourcePatient, nil)
	if err != nil {
		return nil, 0, err
	}
	return restclient.DecodeList[responses.PatientSummary](payload, constvars.ResourcePatient)
}
