package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReceptionistRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	receptionistController *receptionists.ReceptionistController,
	userController *users.UserController,
) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Post("/", receptionistController.CreateReceptionist)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).Get("/", receptionistController.ListReceptionists)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.RoleReceptionist))

		r.Get("/profile/me", receptionistController.GetMyProfile)
		r.Put("/profile/me", receptionistController.UpdateMyProfile)
		r.Put("/change-password", userController.ChangePassword)
	})

	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist)).Get("/{id}", receptionistController.GetReceptionistByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Put("/{id}", receptionistController.UpdateReceptionist)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", receptionistController.DeleteReceptionist)
}
