package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type AppointmentBackendClient interface {
	List(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) error
}
