package routers

import (
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/delivery/http/middlewares"
	"safeclinic-web/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDoctorPanelRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.RequireRole(models.RoleDoctor))

	router.Get("/", doctorController.Dashboard)
	router.Get("/perfil", doctorController.GetProfile)
	router.Put("/perfil", doctorController.UpdateProfile)
	router.Get("/consultas", doctorController.ListAppointments)
	router.Patch("/consultas/{appointmentID}", doctorController.UpdateAppointmentStatus)
	router.Get("/disponibilidade", doctorController.GetAvailability)
	router.Post("/disponibilidade", doctorController.CreateSchedule)
	router.Post("/disponibilidade/bloquear", doctorController.BlockSlot)
	router.Get("/notificacoes", doctorController.ListNotifications)
	router.Patch("/notificacoes/{notificationID}/lida", doctorController.MarkNotificationRead)
	router.Post("/notificacoes/lidas", doctorController.MarkAllNotificationsRead)
}
