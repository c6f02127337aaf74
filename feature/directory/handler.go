package directory

import (
	"strconv"

	"provision-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the directory feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/directory")
	group.Get("/employees/search", h.HandleSearchEmployees)
	group.Get("/employees/resolve", h.HandleResolveEmployee)
	group.Get("/employees/by-role", h.HandleUsersByRole)
	group.Get("/employees/by-service-count", h.HandleUsersByServiceCount)
	group.Get("/employees/:identifier/provisioning", h.HandleProvisioningStatus)
	group.Get("/services", h.HandleListServices)
	group.Get("/services/:name/access", h.HandleServiceAccess)
	group.Get("/locations", h.HandleLocationStats)
	group.Get("/audits/deleted-users", h.HandleDeletedUsersAudit)
	group.Get("/compliance", h.HandleComplianceDashboard)
}

// HandleSearchEmployees returns ranked employee matches.
// @Summary Search Employees
// @Description Ranked multi-field search over employees by name, email, user ID, or username.
// @Tags directory
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} dataset.Employee "Ranked matches, best first"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /directory/employees/search [get]
func (h *Handler) HandleSearchEmployees(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	query := c.Query("q")

	employees, err := h.service.SearchEmployees(query)
	if err != nil {
		l.Error("Employee search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"query":   query,
		"count":   len(employees),
		"results": employees,
	})
}

// HandleResolveEmployee resolves an identifier to a single employee.
// @Summary Resolve Employee
// @Description Resolves a free-text identifier (name, email, user ID, username) to exactly one employee.
// @Tags directory
// @Produce json
// @Param identifier query string true "Identifier to resolve"
// @Success 200 {object} dataset.Employee "Resolved employee"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /directory/employees/resolve [get]
func (h *Handler) HandleResolveEmployee(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	identifier := c.Query("identifier")

	emp, err := h.service.ResolveEmployee(identifier)
	if err != nil {
		l.Error("Employee resolve failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if emp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found: " + identifier})
	}
	return c.JSON(emp)
}

// HandleProvisioningStatus returns one employee's provisioning summary.
// @Summary Provisioning Status
// @Description Per-service provisioning summary for one employee, found by fuzzy identifier.
// @Tags directory
// @Produce json
// @Param identifier path string true "Employee identifier"
// @Success 200 {object} ProvisioningStatus "Provisioning summary"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /directory/employees/{identifier}/provisioning [get]
func (h *Handler) HandleProvisioningStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	identifier := c.Params("identifier")

	ps, err := h.service.ProvisioningStatus(identifier)
	if err != nil {
		l.Error("Provisioning status failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if ps == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found: " + identifier})
	}
	return c.JSON(ps)
}

// HandleListServices lists every tracked service.
// @Summary List Services
// @Description Lists every service tracked in the provisioning export.
// @Tags directory
// @Produce json
// @Success 200 {array} string "Service names"
// @Router /directory/services [get]
func (h *Handler) HandleListServices(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ServiceNames()
	if err != nil {
		l.Error("Service listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(names), "services": names})
}

// HandleServiceAccess lists users with access to one service.
// @Summary Service Access
// @Description Lists every user with a recorded status in the named service.
// @Tags directory
// @Produce json
// @Param name path string true "Service name"
// @Param status query string false "Filter to one status value"
// @Success 200 {object} ServiceAccess "Access listing"
// @Router /directory/services/{name}/access [get]
func (h *Handler) HandleServiceAccess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	access, err := h.service.ServiceAccess(c.Params("name"), c.Query("status"))
	if err != nil {
		l.Error("Service access report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(access)
}

// HandleLocationStats aggregates employees by work location.
// @Summary Location Stats
// @Description Employee counts and top services per work location.
// @Tags directory
// @Produce json
// @Param location query string false "Narrow to one location code"
// @Success 200 {array} LocationStats "Per-location stats"
// @Router /directory/locations [get]
func (h *Handler) HandleLocationStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.LocationStats(c.Query("location"))
	if err != nil {
		l.Error("Location stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleDeletedUsersAudit lists deleted users with live access.
// @Summary Deleted Users Audit
// @Description Deleted employees who still hold Activated or Invited service access.
// @Tags directory
// @Produce json
// @Success 200 {array} DeletedUserAudit "Audit entries, worst first"
// @Router /directory/audits/deleted-users [get]
func (h *Handler) HandleDeletedUsersAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	audits, err := h.service.DeletedUsersAudit()
	if err != nil {
		l.Error("Deleted users audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(audits), "audits": audits})
}

// HandleComplianceDashboard returns the org-wide summary.
// @Summary Compliance Dashboard
// @Description Org-wide provisioning health: headcounts, top services, recent issues.
// @Tags directory
// @Produce json
// @Success 200 {object} ComplianceDashboard "Dashboard"
// @Router /directory/compliance [get]
func (h *Handler) HandleComplianceDashboard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	dash, err := h.service.ComplianceDashboard()
	if err != nil {
		l.Error("Compliance dashboard failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dash)
}

// HandleUsersByRole lists active employees by role substring.
// @Summary Users By Role
// @Description Active employees whose role contains the given substring.
// @Tags directory
// @Produce json
// @Param role query string true "Role substring"
// @Success 200 {array} dataset.Employee "Matching employees"
// @Router /directory/employees/by-role [get]
func (h *Handler) HandleUsersByRole(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	employees, err := h.service.UsersByRole(c.Query("role"))
	if err != nil {
		l.Error("Users by role failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(employees), "employees": employees})
}

// HandleUsersByServiceCount filters employees by activated-service count.
// @Summary Users By Service Count
// @Description Employees whose activated-service count falls within [min, max].
// @Tags directory
// @Produce json
// @Param min query int false "Minimum activated services"
// @Param max query int false "Maximum activated services"
// @Param include_inactive query boolean false "Include non-active employees"
// @Success 200 {array} EmployeeServiceCount "Employees with counts"
// @Router /directory/employees/by-service-count [get]
func (h *Handler) HandleUsersByServiceCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	minCount := queryInt(c, "min", -1)
	maxCount := queryInt(c, "max", -1)
	includeInactive := c.Query("include_inactive") == "true"

	results, err := h.service.UsersByServiceCount(minCount, maxCount, includeInactive)
	if err != nil {
		l.Error("Users by service count failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(results), "users": results})
}

// queryInt parses an integer query param, falling back on absence or garbage.
func queryInt(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
