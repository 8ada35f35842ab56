package appointments

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
	appointmentBackendClientInstance contracts.AppointmentBackendClient
	onceAppointmentBackendClient     sync.Once
)

type appointmentBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewAppointmentBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.AppointmentBackendClient {
	onceAppointmentBackendClient.Do(func() {
		appointmentBackendClientInstance = &appointmentBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return appointmentBackendClientInstance
}

// List passes only the filters the caller set; the backend scopes results
// to the authenticated user through the bearer token.
func (c *appointmentBackendClient) List(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			query.Set("status", filter.Status)
		}
		if filter.Date != "" {
			query.Set("date", filter.Date)
		}
	}
	path := constvars.EndpointAppointments
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	payload, err := c.Rest.Do(ctx, constvars.MethodGet, path, constvars.ResourceAppointment, nil)
	if err != nil {
		return nil, err
	}
	appointments, _, err := restclient.DecodeList[responses.Appointment](payload, constvars.ResourceAppointment)
	return appointments, err
}

func (c *appointmentBackendClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPost, constvars.EndpointAppointments, constvars.ResourceAppointment, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.Appointment](payload, constvars.ResourceAppointment)
}

func (c *appointmentBackendClient) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	payload, err := c.Rest.Do(ctx, constvars.MethodPatch, fmt.Sprintf("%s/%s", constvars.EndpointAppointments, appointmentID), constvars.ResourceAppointment, request)
	if err != nil {
		return nil, err
	}
	return restclient.DecodeItem[responses.Appointment](payload, constvars.ResourceAppointment)
}

func (c *appointmentBackendClient) Cancel(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	_, err := c.Rest.Do(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", constvars.EndpointAppointments, appointmentID), constvars.ResourceAppointment, nil)
	return err
}
