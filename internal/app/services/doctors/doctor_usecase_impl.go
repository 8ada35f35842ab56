package doctors

import (
	"context"
	"time"

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
func maskContact(profile *responses.DoctorProfile) *responses.DoctorProfile {
	profile.CPF = utils.MaskCPF(profile.CPF)
	profile.Phone = utils.MaskPhone(profile.Phone)
	return profile
}

type doctorUsecase struct {
	SessionStore       contracts.SessionStore
	DoctorClient       contracts.DoctorBackendClient
	AppointmentClient  contracts.AppointmentBackendClient
	NotificationClient contracts.NotificationBackendClient
	ScheduleClient     contracts.ScheduleBackendClient
	RetryPolicy        retry.Policy
	Log                *zap.Logger
}

func NewDoctorUsecase(
	sessionStore contracts.SessionStore,
	doctorClient contracts.DoctorBackendClient,
	appointmentClient contracts.AppointmentBackendClient,
	notificationClient contracts.NotificationBackendClient,
	scheduleClient contracts.ScheduleBackendClient,
	retryPolicy retry.Policy,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		SessionStore:       sessionStore,
		DoctorClient:       doctorClient,
		AppointmentClient:  appointmentClient,
		NotificationClient: notificationClient,
		ScheduleClient:     scheduleClient,
		RetryPolicy:        retryPolicy,
		Log:                logger,
	}
}

func (uc *doctorUsecase) sessionContext(ctx context.Context, sessionID string) (context.Context, *models.Session, error) {
	session, err := uc.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return ctx, nil, err
	}
	if session == nil {
		return ctx, nil, exceptions.ErrSessionAbsent()
	}
	return restclient.WithSession(ctx, session), session, nil
}

func (uc *doctorUsecase) LoadDashboard(ctx context.Context, sessionID string) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.LoadDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var profile *responses.DoctorProfile
	err = uc.RetryPolicy.Do(sessionCtx, uc.Log, "doctor profile fetch", func() error {
		var fetchErr error
		profile, fetchErr = uc.DoctorClient.GetProfile(sessionCtx, session.User.ID)
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
		uc.Log.Info("doctorUsecase.LoadDashboard session cleared during fetch, discarding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrSessionAbsent()
	}

	today := time.Now().Format("2006-01-02")
	appointments, err := uc.AppointmentClient.List(sessionCtx, &requests.AppointmentFilter{Date: today})
	if err != nil {
		return nil, err
	}
	notifications, err := uc.NotificationClient.List(sessionCtx)
	if err != nil {
		return nil, err
	}

	dashboard := &responses.DoctorDashboard{
		Profile:           maskContact(profile),
		TodayAppointments: appointments,
		Notifications:     notifications,
	}

	// Availability is a nice-to-have on the dashboard; its failure does not
	// sink the whole page.
	availability, err := uc.ScheduleClient.GetDoctorAvailability(sessionCtx, session.User.ID, today)
	if err == nil {
		dashboard.Availability = availability
	} else {
		uc.Log.Warn("doctorUsecase.LoadDashboard availability fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return dashboard, nil
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, sessionID string) (*responses.DoctorProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.DoctorClient.GetProfile(sessionCtx, session.User.ID)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.DoctorClient.UpdateProfile(sessionCtx, session.User.ID, request)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *doctorUsecase) ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.List(sessionCtx, filter)
}

func (uc *doctorUsecase) UpdateAppointmentStatus(ctx context.Context, sessionID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.UpdateStatus(sessionCtx, appointmentID, request)
}

func (uc *doctorUsecase) GetAvailability(ctx context.Context, sessionID, date string) (*responses.DoctorAvailability, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.ScheduleClient.GetDoctorAvailability(sessionCtx, session.User.ID, date)
}

func (uc *doctorUsecase) CreateSchedule(ctx context.Context, sessionID string, request *requests.CreateSchedule) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.ScheduleClient.CreateSchedule(sessionCtx, session.User.ID, request)
}

func (uc *doctorUsecase) BlockSlot(ctx context.Context, sessionID string, request *requests.BlockSlot) (*responses.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.BlockSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.ScheduleClient.BlockSlot(sessionCtx, session.User.ID, request)
}

func (uc *doctorUsecase) ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.NotificationClient.List(sessionCtx)
}

func (uc *doctorUsecase) MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkRead(sessionCtx, notificationID)
}

func (uc *doctorUsecase) MarkAllNotificationsRead(ctx context.Context, sessionID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkAllRead(sessionCtx)
}
