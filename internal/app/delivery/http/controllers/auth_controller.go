package controllers

import (
	"net/http"
	"time"

	"safeclinic-web/internal/app/contracts"
	"safeclinic-web/internal/app/models"
	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/dto/responses"
	"safeclinic-web/internal/pkg/exceptions"
	"safeclinic-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	CookieMaxAgeIn time.Duration
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, cookieTTLInHours int) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		CookieMaxAgeIn: time.Duration(cookieTTLInHours) * time.Hour,
	}
}

func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ctrl.CookieMaxAgeIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) LoginPatient(w http.ResponseWriter, r *http.Request) {
	ctrl.login(w, r, models.RolePatient)
}

func (ctrl *AuthController) LoginDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.login(w, r, models.RoleDoctor)
}

func (ctrl *AuthController) LoginReceptionist(w http.ResponseWriter, r *http.Request) {
	ctrl.login(w, r, models.RoleReceptionist)
}

func (ctrl *AuthController) login(w http.ResponseWriter, r *http.Request, expectedRole models.Role) {
	request := new(requests.LoginUser)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeLoginUserRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	output, err := ctrl.AuthUsecase.Login(r.Context(), request, expectedRole)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// The session cookie is set even on a role mismatch: the credentials
	// were valid and the session is usable on the user's own dashboard.
	ctrl.setSessionCookie(w, output.Token)

	if output.RoleMismatch {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRoleMismatch(output.MismatchMessage))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, &responses.LoginResult{
		SessionID: output.SessionID,
		Token:     output.Token,
		User:      output.Session.User,
	})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	if err := ctrl.AuthUsecase.Logout(r.Context(), sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.clearSessionCookie(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatient)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterPatientRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AuthUsecase.RegisterPatient(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientRegisteredSuccess, result)
}

func (ctrl *AuthController) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterDoctor)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterDoctorRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AuthUsecase.RegisterDoctor(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorRegisteredSuccess, result)
}

func (ctrl *AuthController) RegisterReceptionist(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterReceptionist)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterReceptionistRequest(request)

	if err := utils.ValidateRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AuthUsecase.RegisterReceptionist(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReceptionistRegisteredSuccess, result)
}
