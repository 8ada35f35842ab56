package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	// LoadDashboard fetches the profile with bounded retries plus the
	// patient's appointments and unread notifications.
	LoadDashboard(ctx context.Context, sessionID string) (*responses.PatientDashboard, error)
	GetProfile(ctx context.Context, sessionID string) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error)
	ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, sessionID string, request *requests.CreateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionID, appointmentID string) error
	ListSpecialities(ctx context.Context, sessionID string) ([]responses.Speciality, error)
	GetDoctorAvailability(ctx context.Context, sessionID string, query *requests.AvailabilityQuery) (*responses.DoctorAvailability, error)
	ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, sessionID string) error
}

type PatientBackendClient interface {
	GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, patientID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error)
	ListPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.PatientSummary, int, error)
}
