package routers

import (
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Post(constvars.RoutePathLoginPatient, authController.LoginPatient)
	router.Post(constvars.RoutePathLoginDoctor, authController.LoginDoctor)
	router.Post(constvars.RoutePathLoginReceptionist, authController.LoginReceptionist)
	router.Post("/registro/paciente", authController.RegisterPatient)
	router.Post("/registro/medico", authController.RegisterDoctor)
	router.Post("/registro/recepcionista", authController.RegisterReceptionist)
	router.Post("/logout", authController.Logout)
}
