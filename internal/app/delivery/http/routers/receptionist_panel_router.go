package routers

import (
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/delivery/http/middlewares"
	"safeclinic-web/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachReceptionistPanelRoutes(router chi.Router, middlewares *middlewares.Middlewares, receptionistController *controllers.ReceptionistController) {
	router.Use(middlewares.RequireRole(models.RoleReceptionist))

	router.Get("/", receptionistController.Dashboard)
	router.Get("/perfil", receptionistController.GetProfile)
	router.Put("/perfil", receptionistController.UpdateProfile)
	router.Get("/pacientes", receptionistController.ListPatients)
	router.Get("/medicos", receptionistController.ListDoctors)
	router.Get("/consultas", receptionistController.ListAppointments)
	router.Post("/consultas", receptionistController.CreateAppointment)
	router.Patch("/consultas/{appointmentID}", receptionistController.UpdateAppointmentStatus)
	router.Get("/notificacoes", receptionistController.ListNotifications)
	router.Patch("/notificacoes/{notificationID}/lida", receptionistController.MarkNotificationRead)
	router.Post("/notificacoes/lidas", receptionistController.MarkAllNotificationsRead)
}
