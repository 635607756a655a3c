package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeesHandler exposes the employee self-service surface.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// Me handles GET /api/employees/me, returning the caller's own profile.
func (h *EmployeesHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	user, err := h.employees.MyProfile(c.Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(user))
}

// GetByID handles GET /api/employees/:id.
func (h *EmployeesHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.employees.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(user))
}
