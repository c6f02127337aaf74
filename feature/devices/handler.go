package devices

import (
	"strconv"

	"provision-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the devices feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the devices routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/devices")
	group.Get("/search", h.HandleSearch)
	group.Get("/summary", h.HandleSummary)
	group.Get("/available", h.HandleAvailable)
	group.Get("/types", h.HandleTypes)
	group.Get("/manufacturers", h.HandleManufacturers)
	group.Get("/locations", h.HandleByLocation)
	group.Get("/lifecycle", h.HandleLifecycle)
	group.Get("/warranty-expiring", h.HandleWarrantyExpiring)
	group.Get("/audits/assignments", h.HandleAssignmentAudit)
	group.Get("/by-user/:email", h.HandleUserDevices)
}

// HandleSearch returns devices matching the query.
// @Summary Search Devices
// @Description Substring search over asset number, serial, model, manufacturer, and assignee, with a keyword fallback for multi-word model queries.
// @Tags devices
// @Produce json
// @Param q query string true "Search query"
// @Param status query string false "Filter by device status"
// @Success 200 {array} dataset.Device "Matching devices"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /devices/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	query := c.Query("q")

	devices, err := h.service.Search(query, c.Query("status"))
	if err != nil {
		l.Error("Device search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	holders, unassigned := GroupByHolder(devices)
	return c.JSON(fiber.Map{
		"query":      query,
		"count":      len(devices),
		"holders":    holders,
		"unassigned": unassigned,
	})
}

// HandleUserDevices returns one user's device rollup.
// @Summary User Devices
// @Description In-use devices held by one user, with MDM and warranty rollup.
// @Tags devices
// @Produce json
// @Param email path string true "Assigned user email"
// @Success 200 {object} UserDevices "Device rollup"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /devices/by-user/{email} [get]
func (h *Handler) HandleUserDevices(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	email := c.Params("email")

	ud, err := h.service.UserDevices(email)
	if err != nil {
		l.Error("User devices failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if ud == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no devices assigned to " + email})
	}
	return c.JSON(ud)
}

// HandleAvailable lists devices in stock.
// @Summary Available Devices
// @Description Devices in Available status, optionally narrowed by type and manufacturer.
// @Tags devices
// @Produce json
// @Param type query string false "Device type"
// @Param manufacturer query string false "Manufacturer"
// @Success 200 {array} dataset.Device "Available devices"
// @Router /devices/available [get]
func (h *Handler) HandleAvailable(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	devices, err := h.service.AvailableDevices(c.Query("type"), c.Query("manufacturer"))
	if err != nil {
		l.Error("Available devices failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(devices), "devices": devices})
}

// HandleSummary returns the fleet-wide rollup.
// @Summary Device Summary
// @Description Fleet counts by status, type, manufacturer, and laptop MDM enrollment.
// @Tags devices
// @Produce json
// @Success 200 {object} DeviceSummary "Fleet summary"
// @Router /devices/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary()
	if err != nil {
		l.Error("Device summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// HandleAssignmentAudit lists inventory hygiene findings.
// @Summary Device Assignment Audit
// @Description Contradictory inventory records: stale assignments, unmanaged laptops, ghosted in-use devices.
// @Tags devices
// @Produce json
// @Success 200 {array} AssignmentIssue "Findings, worst first"
// @Router /devices/audits/assignments [get]
func (h *Handler) HandleAssignmentAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	issues, err := h.service.AssignmentAudit()
	if err != nil {
		l.Error("Assignment audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(issues), "issues": issues})
}

// HandleWarrantyExpiring lists devices with coverage ending soon.
// @Summary Warranty Expiring
// @Description Devices whose warranty ends within the threshold (default 90 days).
// @Tags devices
// @Produce json
// @Param days query int false "Days threshold" default(90)
// @Success 200 {array} WarrantyAlert "Alerts, soonest first"
// @Router /devices/warranty-expiring [get]
func (h *Handler) HandleWarrantyExpiring(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	days := 90
	if raw := c.Query("days"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			days = v
		}
	}

	alerts, err := h.service.WarrantyExpiring(days)
	if err != nil {
		l.Error("Warranty report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(alerts), "daysThreshold": days, "alerts": alerts})
}

// HandleByLocation groups devices by city.
// @Summary Devices By Location
// @Description Devices grouped by city, blank cities under Unknown.
// @Tags devices
// @Produce json
// @Param city query string false "Narrow to one city"
// @Success 200 {object} map[string][]dataset.Device "Devices per city"
// @Router /devices/locations [get]
func (h *Handler) HandleByLocation(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	byLocation, err := h.service.ByLocation(c.Query("city"))
	if err != nil {
		l.Error("Devices by location failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(byLocation)
}

// HandleLifecycle returns fleet age and refresh statistics.
// @Summary Device Lifecycle
// @Description Per-type fleet age, procurement by year, and laptop refresh recommendations.
// @Tags devices
// @Produce json
// @Success 200 {object} LifecycleStats "Lifecycle statistics"
// @Router /devices/lifecycle [get]
func (h *Handler) HandleLifecycle(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Lifecycle()
	if err != nil {
		l.Error("Lifecycle stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleTypes lists the distinct device types.
// @Summary Device Types
// @Description Distinct device types in the inventory, sorted.
// @Tags devices
// @Produce json
// @Success 200 {array} string "Device types"
// @Router /devices/types [get]
func (h *Handler) HandleTypes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	types, err := h.service.DeviceTypes()
	if err != nil {
		l.Error("Device types failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(types), "types": types})
}

// HandleManufacturers lists the distinct manufacturers.
// @Summary Manufacturers
// @Description Distinct manufacturers in the inventory, sorted.
// @Tags devices
// @Produce json
// @Success 200 {array} string "Manufacturers"
// @Router /devices/manufacturers [get]
func (h *Handler) HandleManufacturers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	manufacturers, err := h.service.Manufacturers()
	if err != nil {
		l.Error("Manufacturers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(manufacturers), "manufacturers": manufacturers})
}
