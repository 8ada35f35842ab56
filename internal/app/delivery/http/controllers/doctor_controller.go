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

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
	RouteGuard    contracts.RouteGuard
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, routeGuard contracts.RouteGuard) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		RouteGuard:    routeGuard,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	dashboard, err := ctrl.DoctorUsecase.LoadDashboard(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardLoadedSuccess, dashboard)
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	profile, err := ctrl.DoctorUsecase.GetProfile(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetchedSuccess, profile)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.UpdateDoctorProfile)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.DoctorUsecase.UpdateProfile(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, profile)
}

func (ctrl *DoctorController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	filter := utils.BuildAppointmentFilterRequest(r)

	if err := utils.ValidateRequest(filter); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointments, err := ctrl.DoctorUsecase.ListAppointments(r.Context(), sessionID, filter)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, appointments)
}

func (ctrl *DoctorController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
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

	appointment, err := ctrl.DoctorUsecase.UpdateAppointmentStatus(r.Context(), sessionID, appointmentID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (ctrl *DoctorController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	date := r.URL.Query().Get("date")

	availability, err := ctrl.DoctorUsecase.GetAvailability(r.Context(), sessionID, date)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, availability)
}

func (ctrl *DoctorController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.CreateSchedule)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	availability, err := ctrl.DoctorUsecase.CreateSchedule(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleCreatedSuccess, availability)
}

func (ctrl *DoctorController) BlockSlot(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	request := new(requests.BlockSlot)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	availability, err := ctrl.DoctorUsecase.BlockSlot(r.Context(), sessionID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleBlockedSuccess, availability)
}

func (ctrl *DoctorController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	notifications, err := ctrl.DoctorUsecase.ListNotifications(r.Context(), sessionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DataFetchedSuccess, notifications)
}

func (ctrl *DoctorController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)
	notificationID := chi.URLParam(r, "notificationID")

	if err := ctrl.DoctorUsecase.MarkNotificationRead(r.Context(), sessionID, notificationID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccess, nil)
}

func (ctrl *DoctorController) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromRequest(r)

	if err := ctrl.DoctorUsecase.MarkAllNotificationsRead(r.Context(), sessionID); err != nil {
		respondUsecaseError(ctrl.Log, ctrl.RouteGuard, w, r, sessionID, models.RoleDoctor, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsAllReadSuccess, nil)
}
