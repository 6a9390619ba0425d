package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/reports"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Get("/dashboard/stats", reportController.GetAdminDashboard)
	router.Get("/users", reportController.ListUsersWithProfiles)
}
