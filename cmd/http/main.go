package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hms-service/internal/app/config"
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/delivery/http/routers"
	"hms-service/internal/app/drivers/database"
	"hms-service/internal/app/drivers/logger"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/auth"
	"hms-service/internal/app/services/core/billing"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/prescriptions"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/reports"
	"hms-service/internal/app/services/core/session"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis and session
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT.ExpTimeInDays)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	receptionistMongoRepository := receptionists.NewReceptionistMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	billMongoRepository := billing.NewBillMongoRepository(bootstrap.MongoDB, dbName)
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)

	// Users
	userUsecase := users.NewUserUsecase(userMongoRepository)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		patientMongoRepository,
		doctorMongoRepository,
		receptionistMongoRepository,
		sessionService,
		bootstrap.InternalConfig,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, userMongoRepository)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, userMongoRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Receptionists
	receptionistUsecase := receptionists.NewReceptionistUsecase(receptionistMongoRepository, userMongoRepository)
	receptionistController := receptionists.NewReceptionistController(bootstrap.Logger, receptionistUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		userMongoRepository,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Prescriptions
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		appointmentMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		userMongoRepository,
	)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Billing
	billUsecase := billing.NewBillUsecase(
		billMongoRepository,
		appointmentMongoRepository,
		patientMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
	)
	billController := billing.NewBillController(bootstrap.Logger, billUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(
		reportMongoRepository,
		userMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		receptionistMongoRepository,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		doctorController,
		patientController,
		receptionistController,
		appointmentController,
		prescriptionController,
		billController,
		reportController,
	)
}
