package contracts

import (
	"context"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
)

type ScheduleBackendClient interface {
	GetDoctorAvailability(ctx context.Context, doctorID, date string) (*responses.DoctorAvailability, error)
	CreateSchedule(ctx context.Context, doctorID string, request *requests.CreateSchedule) (*responses.DoctorAvailability, error)
	BlockSlot(ctx context.Context, doctorID string, request *requests.BlockSlot) (*responses.DoctorAvailability, error)
}

type SpecialityBackendClient interface {
	List(ctx context.Context) ([]responses.Speciality, error)
}
