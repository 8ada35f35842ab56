package routers

import (
	"time"

	"safeclinic-web/internal/app/config"
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/delivery/http/middlewares"
	"safeclinic-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	receptionistController *controllers.ReceptionistController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Authenticate)

	attachAuthRoutes(router, authController)

	router.Route(constvars.RoutePathPanelPatient, func(r chi.Router) {
		attachPatientPanelRoutes(r, middlewares, patientController)
	})

	router.Route(constvars.RoutePathPanelDoctor, func(r chi.Router) {
		attachDoctorPanelRoutes(r, middlewares, doctorController)
	})

	router.Route(constvars.RoutePathPanelReceptionist, func(r chi.Router) {
		attachReceptionistPanelRoutes(r, middlewares, receptionistController)
	})
}
