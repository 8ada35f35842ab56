package controllers

import (
	"net/http"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	RouteGuard     contracts.RouteGuard
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, routeGuard contracts.RouteGuard) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		RouteGuard:     routeGuard,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	dashboard, err := ctrl.PatientUsecase.LoadDashboard(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardLoadedSuccess, dashboard)
}

func (ctrl *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	profile, err := ctrl.PatientUsecase.GetProfile(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetchedSuccess, profile)
}

func (ctrl *PatientController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.UpdatePatientProfile)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdatePatientProfileRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.PatientUsecase.UpdateProfile(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, profile)
}

func (ctrl *PatientController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	filter := utils.BuildAppointmentFilterRequest(r)

	if err := utils.ValidateRequest(filter); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointments, err := ctrl.PatientUsecase.ListAppointments(r.Context(), sessionID, filter)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, appointments)
}

func (ctrl *PatientController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.CreateAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.PatientUsecase.CreateAppointment(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, appointment)
}

func (ctrl *PatientController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	appointmentID := chi.URLParam(r, "appointmentID")

	if err := ctrl.PatientUsecase.CancelAppointment(r.Context(), sessionID, appointmentID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}

func (ctrl *PatientController) ListSpecialities(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	specialities, err := ctrl.PatientUsecase.ListSpecialities(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, specialities)
}

func (ctrl *PatientController) DoctorAvailability(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	query := &requests.AvailabilityQuery{
		DoctorID: chi.URLParam(r, "doctorID"),
		Date:     r.URL.Query().Get("date"),
	}
	if err := utils.ValidateRequest(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	availability, err := ctrl.PatientUsecase.GetDoctorAvailability(r.Context(), sessionID, query)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, availability)
}

func (ctrl *PatientController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	notifications, err := ctrl.PatientUsecase.ListNotifications(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, notifications)
}

func (ctrl *PatientController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	notificationID := chi.URLParam(r, "notificationID")

	if err := ctrl.PatientUsecase.MarkNotificationRead(r.Context(), sessionID, notificationID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccess, nil)
}

func (ctrl *PatientController) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	if err := ctrl.PatientUsecase.MarkAllNotificationsRead(r.Context(), sessionID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RolePatient, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsAllReadSuccess, nil)
}
