package routers

import (
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/delivery/http/middlewares"
	"safeclinic-web/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPatientPanelRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.RequireRole(models.RolePatient))

	router.Get("/", patientController.Dashboard)
	router.Get("/perfil", patientController.GetProfile)
	router.Put("/perfil", patientController.UpdateProfile)
	router.Get("/consultas", patientController.ListAppointments)
	router.Post("/consultas", patientController.CreateAppointment)
	router.Delete("/consultas/{appointmentID}", patientController.CancelAppointment)
	router.Get("/especialidades", patientController.ListSpecialities)
	router.Get("/medicos/{doctorID}/disponibilidade", patientController.DoctorAvailability)
	router.Get("/notificacoes", patientController.ListNotifications)
	router.Patch("/notificacoes/{notificationID}/lida", patientController.MarkNotificationRead)
	router.Post("/notificacoes/lidas", patientController.MarkAllNotificationsRead)
}
