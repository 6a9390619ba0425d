package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/billing"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/prescriptions"
	"hms-service/internal/app/services/core/reports"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	userController *users.UserController,
	appointmentController *appointments.AppointmentController,
	prescriptionController *prescriptions.PrescriptionController,
	billController *billing.BillController,
	reportController *reports.ReportController,
) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Post("/", patientController.CreatePatient)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Get("/", patientController.ListPatients)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RolePatient))

		r.Get("/profile/me", patientController.GetMyProfile)
		r.Put("/profile/me", patientController.UpdateMyProfile)
		r.Put("/change-password", userController.ChangePassword)
		r.Get("/appointments/me", appointmentController.ListMyAppointments)
		r.Get("/prescriptions/me", prescriptionController.ListMyPrescriptions)
		r.Get("/bills/me", billController.ListMyBills)
		r.Get("/dashboard/stats", reportController.GetPatientDashboard)
	})

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RolePatient)).Get("/{id}", patientController.GetPatientByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Put("/{id}", patientController.UpdatePatient)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", patientController.DeletePatient)
}
