package patients

import (
	"context"
	"testing"
	"time"

	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/app/services/shared/retry"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, session *models.Session) error {
	args := m.Called(ctx, sessionID, session)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockPatientBackendClient struct {
	mock.Mock
}

func (m *MockPatientBackendClient) GetProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error) {
	args := m.Called(ctx, patientID)
	profile, _ := args.Get(0).(*responses.PatientProfile)
	return profile, args.Error(1)
}

func (m *MockPatientBackendClient) UpdateProfile(ctx context.Context, patientID string, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	args := m.Called(ctx, patientID, request)
	profile, _ := args.Get(0).(*responses.PatientProfile)
	return profile, args.Error(1)
}

func (m *MockPatientBackendClient) ListPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.PatientSummary, int, error) {
	args := m.Called(ctx, pagination)
	patients, _ := args.Get(0).([]responses.PatientSummary)
	return patients, args.Int(1), args.Error(2)
}

type MockAppointmentBackendClient struct {
	mock.Mock
}

func (m *MockAppointmentBackendClient) List(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentBackendClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackendClient) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackendClient) Cancel(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockNotificationBackendClient struct {
	mock.Mock
}

func (m *MockNotificationBackendClient) List(ctx context.Context) ([]responses.Notification, error) {
	args := m.Called(ctx)
	notifications, _ := args.Get(0).([]responses.Notification)
	return notifications, args.Error(1)
}

func (m *MockNotificationBackendClient) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationBackendClient) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSpecialityBackendClient struct {
	mock.Mock
}

func (m *MockSpecialityBackendClient) List(ctx context.Context) ([]responses.Speciality, error) {
	args := m.Called(ctx)
	specialities, _ := args.Get(0).([]responses.Speciality)
	return specialities, args.Error(1)
}

type MockScheduleBackendClient struct {
	mock.Mock
}

func (m *MockScheduleBackendClient) GetDoctorAvailability(ctx context.Context, doctorID, date string) (*responses.DoctorAvailability, error) {
	args := m.Called(ctx, doctorID, date)
	availability, _ := args.Get(0).(*responses.DoctorAvailability)
	return availability, args.Error(1)
}

func (m *MockScheduleBackendClient) CreateSchedule(ctx context.Context, doctorID string, request *requests.CreateSchedule) (*responses.DoctorAvailability, error) {
	args := m.Called(ctx, doctorID, request)
	availability, _ := args.Get(0).(*responses.DoctorAvailability)
	return availability, args.Error(1)
}

func (m *MockScheduleBackendClient) BlockSlot(ctx context.Context, doctorID string, request *requests.BlockSlot) (*responses.DoctorAvailability, error) {
	args := m.Called(ctx, doctorID, request)
	availability, _ := args.Get(0).(*responses.DoctorAvailability)
	return availability, args.Error(1)
}

type usecaseMocks struct {
	store        *MockSessionStore
	patient      *MockPatientBackendClient
	appointment  *MockAppointmentBackendClient
	notification *MockNotificationBackendClient
	speciality   *MockSpecialityBackendClient
	schedule     *MockScheduleBackendClient
}

func newPatientUsecaseWithMocks() (*usecaseMocks, *patientUsecase) {
	mocks := &usecaseMocks{
		store:        new(MockSessionStore),
		patient:      new(MockPatientBackendClient),
		appointment:  new(MockAppointmentBackendClient),
		notification: new(MockNotificationBackendClient),
		speciality:   new(MockSpecialityBackendClient),
		schedule:     new(MockScheduleBackendClient),
	}
	usecase := &patientUsecase{
		SessionStore:       mocks.store,
		PatientClient:      mocks.patient,
		AppointmentClient:  mocks.appointment,
		NotificationClient: mocks.notification,
		SpecialityClient:   mocks.speciality,
		ScheduleClient:     mocks.schedule,
		RetryPolicy:        retry.Policy{MaxAttempts: 3, Delay: time.Millisecond},
		Log:                zap.NewNop(),
	}
	return mocks, usecase
}

func activeSession() *models.Session {
	return &models.Session{
		Token:        "backend-token",
		RefreshToken: "backend-refresh",
		User:         models.User{ID: "patient-1", Role: models.RolePatient},
	}
}

func TestPatientUsecase_LoadDashboard(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(&responses.PatientProfile{ID: "patient-1"}, nil)
	mocks.appointment.On("List", mock.Anything, mock.Anything).Return([]responses.Appointment{{ID: "apt-1"}}, nil)
	mocks.notification.On("List", mock.Anything).Return([]responses.Notification{}, nil)

	dashboard, err := usecase.LoadDashboard(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "patient-1", dashboard.Profile.ID)
	assert.Len(t, dashboard.Appointments, 1)
}

func TestPatientUsecase_LoadDashboardRetriesProfileFetch(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(nil, exceptions.ErrBackendUnreachable(assert.AnError)).Twice()
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(&responses.PatientProfile{ID: "patient-1"}, nil).Once()
	mocks.appointment.On("List", mock.Anything, mock.Anything).Return([]responses.Appointment{}, nil)
	mocks.notification.On("List", mock.Anything).Return([]responses.Notification{}, nil)

	dashboard, err := usecase.LoadDashboard(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "patient-1", dashboard.Profile.ID)
	mocks.patient.AssertNumberOfCalls(t, "GetProfile", 3)
}

func TestPatientUsecase_LoadDashboardDiscardsRacedLogout(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	// The session exists when the fetch starts but is gone by the time the
	// retried profile call finishes.
	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil).Once()
	mocks.store.On("Load", mock.Anything, "abc").Return(nil, nil).Once()
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(&responses.PatientProfile{ID: "patient-1"}, nil)

	_, err := usecase.LoadDashboard(context.Background(), "abc")
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindAuthorization, exceptions.KindOf(err))
	mocks.appointment.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPatientUsecase_LoadDashboardNoSession(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()
	mocks.store.On("Load", mock.Anything, "gone").Return(nil, nil)

	_, err := usecase.LoadDashboard(context.Background(), "gone")
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindAuthorization, exceptions.KindOf(err))
	mocks.patient.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestPatientUsecase_LoadDashboardGivesUpAfterAttempts(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(nil, exceptions.ErrBackendServer("patient", 503))

	_, err := usecase.LoadDashboard(context.Background(), "abc")
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindServer, exceptions.KindOf(err))
	mocks.patient.AssertNumberOfCalls(t, "GetProfile", 3)
}

func TestPatientUsecase_GetProfileMasksContact(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.patient.On("GetProfile", mock.Anything, "patient-1").Return(&responses.PatientProfile{
		ID:    "patient-1",
		CPF:   "12345678900",
		Phone: "11987654321",
	}, nil)

	profile, err := usecase.GetProfile(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "123.456.789-00", profile.CPF)
	assert.Equal(t, "(11) 98765-4321", profile.Phone)
}

func TestPatientUsecase_MarkNotificationRead(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.notification.On("MarkRead", mock.Anything, "notif-1").Return(nil)

	err := usecase.MarkNotificationRead(context.Background(), "abc", "notif-1")
	assert.NoError(t, err)
	mocks.notification.AssertCalled(t, "MarkRead", mock.Anything, "notif-1")
}

func TestPatientUsecase_MarkNotificationReadNoSession(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()
	mocks.store.On("Load", mock.Anything, "gone").Return(nil, nil)

	err := usecase.MarkNotificationRead(context.Background(), "gone", "notif-1")
	assert.Error(t, err)
	assert.Equal(t, exceptions.KindAuthorization, exceptions.KindOf(err))
	mocks.notification.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestPatientUsecase_CreateAppointmentBooksForSelf(t *testing.T) {
	mocks, usecase := newPatientUsecaseWithMocks()

	mocks.store.On("Load", mock.Anything, "abc").Return(activeSession(), nil)
	mocks.appointment.On("Create", mock.Anything, mock.MatchedBy(func(request *requests.CreateAppointment) bool {
		return request.PatientID == "patient-1"
	})).Return(&responses.Appointment{ID: "apt-1"}, nil)

	appointment, err := usecase.CreateAppointment(context.Background(), "abc", &requests.CreateAppointment{
		PatientID: "someone-else",
		DoctorID:  "doctor-1",
		Date:      "2026-09-01",
		Time:      "14:00",
		Type:      "online",
	})
	assert.NoError(t, err)
	assert.Equal(t, "apt-1", appointment.ID)
}
