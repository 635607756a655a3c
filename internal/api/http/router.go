package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Role gates are always registered after
// the authentication gate so they never see an unvalidated request.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	employees := api.Group("/employees", cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleEmployee))
	employees.Get("/me", cfg.Employees.Me)
	employees.Get("/:id", cfg.Employees.GetByID)

	admin := api.Group("/admin", cfg.AuthMiddleware.Authenticate, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/employees", cfg.Admin.List)
	admin.Post("/employees", cfg.Admin.Create)
	admin.Get("/employees/:id", cfg.Admin.GetByID)
	admin.Put("/employees/:id", cfg.Admin.Update)
	admin.Delete("/employees/:id", cfg.Admin.Delete)
}
