package controllers

import (
	"net/http"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"
	"safeclinic-web/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReceptionistController struct {
	Log                 *zap.Logger
	ReceptionistUsecase contracts.ReceptionistUsecase
	RouteGuard          contracts.RouteGuard
}

func NewReceptionistController(logger *zap.Logger, receptionistUsecase contracts.ReceptionistUsecase, routeGuard contracts.RouteGuard) *ReceptionistController {
	return &ReceptionistController{
		Log:                 logger,
		ReceptionistUsecase: receptionistUsecase,
		RouteGuard:          routeGuard,
	}
}

func (ctrl *ReceptionistController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	dashboard, err := ctrl.ReceptionistUsecase.LoadDashboard(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardLoadedSuccess, dashboard)
}

func (ctrl *ReceptionistController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	profile, err := ctrl.ReceptionistUsecase.GetProfile(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetchedSuccess, profile)
}

func (ctrl *ReceptionistController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.UpdateReceptionistProfile)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdateReceptionistProfileRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.ReceptionistUsecase.UpdateProfile(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, profile)
}

func (ctrl *ReceptionistController) ListPatients(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	pagination := utils.BuildPaginationRequest(r)

	patients, total, err := ctrl.ReceptionistUsecase.ListPatients(r.Context(), sessionID, pagination)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DataFetchedSuccess, &responses.Pagination{
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, patients)
}

func (ctrl *ReceptionistController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	pagination := utils.BuildPaginationRequest(r)

	doctors, total, err := ctrl.ReceptionistUsecase.ListDoctors(r.Context(), sessionID, pagination)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DataFetchedSuccess, &responses.Pagination{
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, doctors)
}

func (ctrl *ReceptionistController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	filter := utils.BuildAppointmentFilterRequest(r)

	if err := utils.ValidateRequest(filter); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointments, err := ctrl.ReceptionistUsecase.ListAppointments(r.Context(), sessionID, filter)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, appointments)
}

func (ctrl *ReceptionistController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.CreateAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	// Receptionists book on behalf of a patient, so the id is mandatory
	// on this route.
	if request.PatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBackendValidation(constvars.ErrClientPatientRequired))
		return
	}
	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.ReceptionistUsecase.CreateAppointment(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, appointment)
}

func (ctrl *ReceptionistController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointmentStatus)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.ReceptionistUsecase.UpdateAppointmentStatus(r.Context(), sessionID, appointmentID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (ctrl *ReceptionistController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	notifications, err := ctrl.ReceptionistUsecase.ListNotifications(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, notifications)
}

func (ctrl *ReceptionistController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	notificationID := chi.URLParam(r, "notificationID")

	if err := ctrl.ReceptionistUsecase.MarkNotificationRead(r.Context(), sessionID, notificationID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccess, nil)
}

func (ctrl *ReceptionistController) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	if err := ctrl.ReceptionistUsecase.MarkAllNotificationsRead(r.Context(), sessionID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleReceptionist, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsAllReadSuccess, nil)
}
