package routers

import (
	"hms-service/internal/app/delivery/http/middlewares"
	"hms-service/internal/app/services/core/auth"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController, userController *users.UserController) {
	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Post("/logout", authController.Logout)
		r.Get("/me", userController.GetMe)
		r.Put("/me", userController.UpdateMe)

		r.With(middlewares.RequireRoles(constvars.RoleAdmin)).Post("/register", authController.RegisterUser)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/", userController.ListUsers)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/{id}", userController.GetUserByID)
		r.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", userController.DeleteUser)
	})
}
