package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safeclinic-web/internal/app/config"
	"safeclinic-web/internal/app/delivery/http/controllers"
	"safeclinic-web/internal/app/delivery/http/middlewares"
	"safeclinic-web/internal/app/delivery/http/routers"
	"safeclinic-web/internal/app/drivers/database"
	"safeclinic-web/internal/app/drivers/logger"
	"safeclinic-web/internal/app/services/auth"
	backendappointments "safeclinic-web/internal/app/services/backend/appointments"
	backendauth "safeclinic-web/internal/app/services/backend/auth"
	backenddoctors "safeclinic-web/internal/app/services/backend/doctors"
	backendnotifications "safeclinic-web/internal/app/services/backend/notifications"
	backendpatients "safeclinic-web/internal/app/services/backend/patients"
	backendreceptionists "safeclinic-web/internal/app/services/backend/receptionists"
	backendschedules "safeclinic-web/internal/app/services/backend/schedules"
	backendspecialities "safeclinic-web/internal/app/services/backend/specialities"
	"safeclinic-web/internal/app/services/doctors"
	"safeclinic-web/internal/app/services/guard"
	"safeclinic-web/internal/app/services/patients"
	"safeclinic-web/internal/app/services/receptionists"
	"safeclinic-web/internal/app/services/session"
	"safeclinic-web/internal/app/services/shared/ratelimiter"
	"safeclinic-web/internal/app/services/shared/redis"
	"safeclinic-web/internal/app/services/shared/restclient"
	"safeclinic-web/internal/app/services/shared/retry"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionStore := session.NewSessionStore(redisRepository, bootstrap.InternalConfig.Session.TTLInHours)
	routeGuard := guard.NewRouteGuard(sessionStore, bootstrap.Logger)

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(
		bootstrap.Logger,
		bootstrap.RequestLogger,
		routeGuard,
		bootstrap.InternalConfig,
	)

	// Backend clients
	restClient := restclient.NewClient(
		bootstrap.InternalConfig.Backend.BaseURL,
		bootstrap.InternalConfig.Backend.TimeoutInSeconds,
		bootstrap.Logger,
	)
	authClient := backendauth.NewAuthBackendClient(restClient, bootstrap.InternalConfig.Backend.TimeoutInSeconds, bootstrap.Logger)
	patientClient := backendpatients.NewPatientBackendClient(restClient, bootstrap.Logger)
	doctorClient := backenddoctors.NewDoctorBackendClient(restClient, bootstrap.Logger)
	receptionistClient := backendreceptionists.NewReceptionistBackendClient(restClient, bootstrap.Logger)
	appointmentClient := backendappointments.NewAppointmentBackendClient(restClient, bootstrap.Logger)
	scheduleClient := backendschedules.NewScheduleBackendClient(restClient, bootstrap.Logger)
	specialityClient := backendspecialities.NewSpecialityBackendClient(restClient, bootstrap.Logger)
	notificationClient := backendnotifications.NewNotificationBackendClient(restClient, bootstrap.Logger)

	retryPolicy := retry.Policy{
		MaxAttempts: bootstrap.InternalConfig.Retry.ProfileMaxAttempts,
		Delay:       time.Second * time.Duration(bootstrap.InternalConfig.Retry.ProfileDelayInSecond),
	}

	// Auth
	loginLimiter := ratelimiter.NewLoginLimiter(
		bootstrap.InternalConfig.RateLimit.LoginPerMinute,
		bootstrap.InternalConfig.RateLimit.LoginBurst,
	)
	authUsecase := auth.NewAuthUsecase(authClient, sessionStore, loginLimiter, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig.JWT.ExpTimeInHour)

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		sessionStore,
		patientClient,
		appointmentClient,
		notificationClient,
		specialityClient,
		scheduleClient,
		retryPolicy,
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, routeGuard)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(
		sessionStore,
		doctorClient,
		appointmentClient,
		notificationClient,
		scheduleClient,
		retryPolicy,
		bootstrap.Logger,
	)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, routeGuard)

	// Receptionist
	receptionistUsecase := receptionists.NewReceptionistUsecase(
		sessionStore,
		receptionistClient,
		patientClient,
		doctorClient,
		appointmentClient,
		notificationClient,
		retryPolicy,
		bootstrap.Logger,
	)
	receptionistController := controllers.NewReceptionistController(bootstrap.Logger, receptionistUsecase, routeGuard)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		authController,
		patientController,
		doctorController,
		receptionistController,
	)
}
