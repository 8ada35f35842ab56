package schedules

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	scheduleBackendClientInstance contracts.ScheduleBackendClient
	onceScheduleBackendClient     sync.Once
)

type scheduleBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewScheduleBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.ScheduleBackendClient {
	onceScheduleBackendClient.Do(func() {
		scheduleBackendClientInstance = &scheduleBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return scheduleBackendClientInstance
}

func (c *scheduleBackendClient) GetDoctorAvailability(ctx context.Context, doctorID, date string) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.GetDoctorAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	path := fmt.Sprintf("%s/doctor/%s/availability?date=%s", constvars.EndpointSchedules, doctorID, url.QueryEscape(date))
	payload, err := c.Rest.Do(ctx, constvars.MethodGet, path, constvars.ResourceSchedule, nil)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.DoctorAvailability](payload, constvars.ResourceSchedule)
}

func (c *scheduleBackendClient) CreateSchedule(ctx context.Context, doctorID string, request *requests.CreateSchedule) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	path := fmt.Sprintf("%s/doctor/%s", constvars.EndpointSchedules, doctorID)
	payload, err := c.Rest.Do(ctx, constvars.MethodPost, path, constvars.ResourceSchedule, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.DoctorAvailability](payload, constvars.ResourceSchedule)
}

func (c *scheduleBackendClient) BlockSlot(ctx context.Context, doctorID string, request *requests.BlockSlot) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.BlockSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	path := fmt.Sprintf("%s/doctor/%s/block", constvars.EndpointSchedules, doctorID)
	payload, err := c.Rest.Do(ctx, constvars.MethodPost, path, constvars.ResourceSchedule, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.DoctorAvailability](payload, constvars.ResourceSchedule)
}
