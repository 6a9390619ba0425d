package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/billing"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, middlewares *middlewares.Middlewares, billController *billing.BillController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Post("/", billController.CreateBill)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Get("/", billController.ListBills)
	router.With(middlewares.RequireRoles(constvars.RolePatient, constvars.RoleReceptionist)).Post("/appointment", billController.CreateAppointmentBill)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/patient/my-bills", billController.ListMyBills)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/doctor/my-bills", billController.ListDoctorBills)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RolePatient)).Get("/{id}", billController.GetBillByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).Put("/{id}", billController.UpdateBill)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Post("/{id}/pay", billController.PayBill)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", billController.DeleteBill)
}
