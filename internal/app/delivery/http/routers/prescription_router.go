package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/prescriptions"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).Post("/", prescriptionController.CreatePrescription)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleDoctor)).Get("/", prescriptionController.ListPrescriptions)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/patient/my-prescriptions", prescriptionController.ListMyPrescriptions)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleDoctor, constvars.RolePatient)).Get("/{id}", prescriptionController.GetPrescriptionByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).Put("/{id}", prescriptionController.UpdatePrescription)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", prescriptionController.DeletePrescription)
}
