package patients

import (
	"context"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/app/services/shared/retry"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"
	"safeclinic-web/internal/pkg/utils"

	"go.uber.org/zap"
)

// The backend stores CPF and phone digit-only; the panels render them masked.
func maskContact(profile *responses.PatientProfile) *responses.PatientProfile {
	profile.CPF = utils.MaskCPF(profile.CPF)
	profile.Phone = utils.MaskPhone(profile.Phone)
	return profile
}

type patientUsecase struct {
	SessionStore       contracts.SessionStore
	PatientClient      contracts.PatientBackendClient
	AppointmentClient  contracts.AppointmentBackendClient
	NotificationClient contracts.NotificationBackendClient
	SpecialityClient   contracts.SpecialityBackendClient
	ScheduleClient     contracts.ScheduleBackendClient
	RetryPolicy        retry.Policy
	Log                *zap.Logger
}

func NewPatientUsecase(
	sessionStore contracts.SessionStore,
	patientClient contracts.PatientBackendClient,
	appointmentClient contracts.AppointmentBackendClient,
	notificationClient contracts.NotificationBackendClient,
	specialityClient contracts.SpecialityBackendClient,
	scheduleClient contracts.ScheduleBackendClient,
	retryPolicy retry.Policy,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		SessionStore:       sessionStore,
		PatientClient:      patientClient,
		AppointmentClient:  appointmentClient,
		NotificationClient: notificationClient,
		SpecialityClient:   specialityClient,
		ScheduleClient:     scheduleClient,
		RetryPolicy:        retryPolicy,
		Log:                logger,
	}
}

func (uc *patientUsecase) sessionContext(ctx context.Context, sessionID string) (context.Context, *models.Session, error) {
	session, err := uc.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return ctx, nil, err
	}
	if session == nil {
		return ctx, nil, exceptions.ErrSessionAbsent()
	}
	return restclient.WithSession(ctx, session), session, nil
}

// LoadDashboard fetches the profile with the bounded retry policy, then the
// appointment and notification lists. The profile result is discarded when
// the session disappeared while the retries were running, so a logout that
// raced the fetch stays a logout.
func (uc *patientUsecase) LoadDashboard(ctx context.Context, sessionID string) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.LoadDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var profile *responses.PatientProfile
	err = uc.RetryPolicy.Do(sessionCtx, uc.Log, "patient profile fetch", func() error {
		var fetchErr error
		profile, fetchErr = uc.PatientClient.GetProfile(sessionCtx, session.User.ID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	current, loadErr := uc.SessionStore.Load(ctx, sessionID)
	if loadErr != nil {
		return nil, loadErr
	}
	if current == nil {
		uc.Log.Info("patientUsecase.LoadDashboard session cleared during fetch, discarding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrSessionAbsent()
	}

	appointments, err := uc.AppointmentClient.List(sessionCtx, nil)
	if err != nil {
		return nil, err
	}
	notifications, err := uc.NotificationClient.List(sessionCtx)
	if err != nil {
		return nil, err
	}

	return &responses.PatientDashboard{
		Profile:       maskContact(profile),
		Appointments:  appointments,
		Notifications: notifications,
	}, nil
}

func (uc *patientUsecase) GetProfile(ctx context.Context, sessionID string) (*responses.PatientProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.PatientClient.GetProfile(sessionCtx, session.User.ID)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.PatientClient.UpdateProfile(sessionCtx, session.User.ID, request)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *patientUsecase) ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.List(sessionCtx, filter)
}

func (uc *patientUsecase) CreateAppointment(ctx context.Context, sessionID string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Patients always book for themselves.
	request.PatientID = session.User.ID
	return uc.AppointmentClient.Create(sessionCtx, request)
}

func (uc *patientUsecase) CancelAppointment(ctx context.Context, sessionID, appointmentID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.AppointmentClient.Cancel(sessionCtx, appointmentID)
}

func (uc *patientUsecase) ListSpecialities(ctx context.Context, sessionID string) ([]responses.Speciality, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.SpecialityClient.List(sessionCtx)
}

func (uc *patientUsecase) GetDoctorAvailability(ctx context.Context, sessionID string, query *requests.AvailabilityQuery) (*responses.DoctorAvailability, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.ScheduleClient.GetDoctorAvailability(sessionCtx, query.DoctorID, query.Date)
}

func (uc *patientUsecase) ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.NotificationClient.List(sessionCtx)
}

func (uc *patientUsecase) MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkRead(sessionCtx, notificationID)
}

func (uc *patientUsecase) MarkAllNotificationsRead(ctx context.Context, sessionID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkAllRead(sessionCtx)
}
