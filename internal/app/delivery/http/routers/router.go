package routers

import (
	"time"

	"hms-service/internal/app/config"
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/auth"
	"hms-service/internal/app/services/core/billing"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/prescriptions"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/reports"
	"hms-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	doctorController *doctors.DoctorController,
	patientController *patients.PatientController,
	receptionistController *receptionists.ReceptionistController,
	appointmentController *appointments.AppointmentController,
	prescriptionController *prescriptions.PrescriptionController,
	billController *billing.BillController,
	reportController *reports.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController, userController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController, userController, appointmentController, reportController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, userController, appointmentController, prescriptionController, billController, reportController)
		})

		r.Route("/receptionists", func(r chi.Router) {
			attachReceptionistRoutes(r, middlewares, receptionistController, userController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})

		r.Route("/billing", func(r chi.Router) {
			attachBillingRoutes(r, middlewares, billController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachReportRoutes(r, middlewares, reportController)
		})
	})
}
