package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/service"
)

// AdminHandler exposes the admin-only employee management surface.
type AdminHandler struct {
	employees *service.EmployeeService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(employeeService *service.EmployeeService) *AdminHandler {
	return &AdminHandler{employees: employeeService}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	admins, err := h.employees.ListAdmins(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admins": dto.NewEmployeeListResponse(admins)})
}

// List handles GET /api/admin/employees.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeListResponse(employees))
}

// Create handles POST /api/admin/employees.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	user, err := h.employees.Create(c.Context(), actorFromContext(c), service.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		DateOfJoin: req.DateOfJoin,
		Salary:     req.Salary,
		Experience: req.Experience,
		Age:        req.Age,
		Department: req.Department,
		Location:   req.Location,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Employee created successfully",
		"employee": dto.NewEmployeeResponse(user),
	})
}

// GetByID handles GET /api/admin/employees/:id.
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.employees.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(user))
}

// Update handles PUT /api/admin/employees/:id.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.employees.Update(c.Context(), actorFromContext(c), c.Params("id"), service.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		DateOfJoin: req.DateOfJoin,
		Salary:     req.Salary,
		Experience: req.Experience,
		Age:        req.Age,
		Department: req.Department,
		Location:   req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(user))
}

// Delete handles DELETE /api/admin/employees/:id.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.employees.Delete(c.Context(), actorFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

func actorFromContext(c *fiber.Ctx) events.Actor {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return events.Actor{}
	}
	return events.Actor{UserID: claims.Subject, Role: claims.Role}
}
