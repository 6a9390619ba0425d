package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/availability/{doctorId}/{date}", appointmentController.GetAvailability)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).Post("/book", appointmentController.BookAppointment)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/patient/my-appointments", appointmentController.ListMyAppointments)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleDoctor)).Get("/", appointmentController.ListAppointments)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleDoctor, constvars.RolePatient)).Get("/{id}", appointmentController.GetAppointmentByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Put("/{id}", appointmentController.UpdateAppointment)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleReceptionist)).Put("/{id}/cancel", appointmentController.CancelAppointment)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", appointmentController.DeleteAppointment)
}
