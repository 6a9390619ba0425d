package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/reports"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	userController *users.UserController,
	appointmentController *appointments.AppointmentController,
	reportController *reports.ReportController,
) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Get("/", doctorController.ListDoctors)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/available", doctorController.ListAvailableDoctors)

	// Doctor self-service routes sit above /{id} so the static segments win.
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleDoctor))

		r.Get("/profile/me", doctorController.GetMyProfile)
		r.Put("/profile/me", doctorController.UpdateMyProfile)
		r.Put("/change-password", userController.ChangePassword)
		r.Get("/appointments/me", appointmentController.ListDoctorAppointments)
		r.Put("/appointments/{id}", appointmentController.UpdateStatusByDoctor)
		r.Get("/dashboard/stats", reportController.GetDoctorDashboard)
	})

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleDoctor)).Get("/{id}", doctorController.GetDoctorByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Put("/{id}", doctorController.UpdateDoctor)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", doctorController.DeleteDoctor)
}
