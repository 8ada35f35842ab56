package receptionists

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
func maskContact(profile *responses.ReceptionistProfile) *responses.ReceptionistProfile {
	profile.CPF = utils.MaskCPF(profile.CPF)
	profile.Phone = utils.MaskPhone(profile.Phone)
	return profile
}

type receptionistUsecase struct {
	SessionStore       contracts.SessionStore
	ReceptionistClient contracts.ReceptionistBackendClient
	PatientClient      contracts.PatientBackendClient
	DoctorClient       contracts.DoctorBackendClient
	AppointmentClient  contracts.AppointmentBackendClient
	NotificationClient contracts.NotificationBackendClient
	RetryPolicy        retry.Policy
	Log                *zap.Logger
}

func NewReceptionistUsecase(
	sessionStore contracts.SessionStore,
	receptionistClient contracts.ReceptionistBackendClient,
	patientClient contracts.PatientBackendClient,
	doctorClient contracts.DoctorBackendClient,
	appointmentClient contracts.AppointmentBackendClient,
	notificationClient contracts.NotificationBackendClient,
	retryPolicy retry.Policy,
	logger *zap.Logger,
) contracts.ReceptionistUsecase {
	return &receptionistUsecase{
		SessionStore:       sessionStore,
		ReceptionistClient: receptionistClient,
		PatientClient:      patientClient,
		DoctorClient:       doctorClient,
		AppointmentClient:  appointmentClient,
		NotificationClient: notificationClient,
		RetryPolicy:        retryPolicy,
		Log:                logger,
	}
}

func (uc *receptionistUsecase) sessionContext(ctx context.Context, sessionID string) (context.Context, *models.Session, error) {
	session, err := uc.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return ctx, nil, err
	}
	if session == nil {
		return ctx, nil, exceptions.ErrSessionAbsent()
	}
	return restclient.WithSession(ctx, session), session, nil
}

func (uc *receptionistUsecase) LoadDashboard(ctx context.Context, sessionID string) (*responses.ReceptionistDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("receptionistUsecase.LoadDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var profile *responses.ReceptionistProfile
	err = uc.RetryPolicy.Do(sessionCtx, uc.Log, "receptionist profile fetch", func() error {
		var fetchErr error
		profile, fetchErr = uc.ReceptionistClient.GetProfile(sessionCtx, session.User.ID)
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
		uc.Log.Info("receptionistUsecase.LoadDashboard session cleared during fetch, discarding result",
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

	return &responses.ReceptionistDashboard{
		Profile:           maskContact(profile),
		TodayAppointments: appointments,
		Notifications:     notifications,
	}, nil
}

func (uc *receptionistUsecase) GetProfile(ctx context.Context, sessionID string) (*responses.ReceptionistProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.ReceptionistClient.GetProfile(sessionCtx, session.User.ID)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *receptionistUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateReceptionistProfile) (*responses.ReceptionistProfile, error) {
	sessionCtx, session, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.ReceptionistClient.UpdateProfile(sessionCtx, session.User.ID, request)
	if err != nil {
		return nil, err
	}
	return maskContact(profile), nil
}

func (uc *receptionistUsecase) ListPatients(ctx context.Context, sessionID string, pagination *requests.Pagination) ([]responses.PatientSummary, int, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	patients, total, err := uc.PatientClient.ListPatients(sessionCtx, pagination)
	if err != nil {
		return nil, 0, err
	}
	for i := range patients {
		patients[i].Phone = utils.MaskPhone(patients[i].Phone)
	}
	return patients, total, nil
}

func (uc *receptionistUsecase) ListDoctors(ctx context.Context, sessionID string, pagination *requests.Pagination) ([]responses.DoctorSummary, int, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return uc.DoctorClient.ListDoctors(sessionCtx, pagination)
}

func (uc *receptionistUsecase) ListAppointments(ctx context.Context, sessionID string, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.List(sessionCtx, filter)
}

func (uc *receptionistUsecase) CreateAppointment(ctx context.Context, sessionID string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.Create(sessionCtx, request)
}

func (uc *receptionistUsecase) UpdateAppointmentStatus(ctx context.Context, sessionID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentClient.UpdateStatus(sessionCtx, appointmentID, request)
}

func (uc *receptionistUsecase) ListNotifications(ctx context.Context, sessionID string) ([]responses.Notification, error) {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.NotificationClient.List(sessionCtx)
}

func (uc *receptionistUsecase) MarkNotificationRead(ctx context.Context, sessionID, notificationID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkRead(sessionCtx, notificationID)
}

func (uc *receptionistUsecase) MarkAllNotificationsRead(ctx context.Context, sessionID string) error {
	sessionCtx, _, err := uc.sessionContext(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.NotificationClient.MarkAllRead(sessionCtx)
}
