package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type ReceptionistUsecase interface {
	LoadDashboard(ctx context.Context, sessionID string) (*responses.ReceptionistDashboard, error)
	GetProfile(ctx context.Context, sessionID string) (*responses.ReceptionistProfile, error)
	UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateReceptionistProfile) (*responses.ReceptionistProfile, error)
	ListPatients(ctx context.Context, sessionID string, pagination *requests.Pagination) ([]responses.PatientSummary, int, error)
	ListDoctors(ctx context.Context, sessionID string, pagination *requests.Pagination) ([]responses.DoctorSummary, int, error)
	ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, sessionID string, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, sessionID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, sessionID string) error
}

type ReceptionistBackendClient interface {
	GetProfile(ctx context.Context, receptionistID string) (*responses.ReceptionistProfile, error)
	UpdateProfile(ctx context.Context, receptionistID string, request *requests.UpdateReceptionistProfile) (*responses.ReceptionistProfile, error)
}
