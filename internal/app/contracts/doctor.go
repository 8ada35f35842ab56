package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	LoadDashboard(ctx context.Context, sessionID string) (*responses.DoctorDashboard, error)
	GetProfile(ctx context.Context, sessionID string) (*responses.DoctorProfile, error)
	UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, sessionID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	GetAvailability(ctx context.Context, sessionID, date string) (*responses.DoctorAvailability, error)
	CreateSchedule(ctx context.Context, sessionID string, request *requests.CreateSchedule) (*responses.DoctorAvailability, error)
	BlockSlot(ctx context.Context, sessionID string, request *requests.BlockSlot) (*responses.DoctorAvailability, error)
	ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, sessionID string) error
}

type DoctorBackendClient interface {
	GetProfile(ctx context.Context, doctorID string) (*responses.DoctorProfile, error)
	UpdateProfile(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	ListDoctors(ctx context.Context, pagination *requests.Pagination) ([]responses.DoctorSummary, int, error)
}
