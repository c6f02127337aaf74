package reconcile

import (
	"provision-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the reconcile feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Get("/profile/:identifier", h.HandleCompleteITProfile)
	group.Get("/sync", h.HandleSyncReport)
	group.Get("/services/:name", h.HandleUnifiedView)
	group.Get("/audits/device-mismatch", h.HandleDeviceMismatch)
	group.Get("/checklists/onboarding/:email", h.HandleOnboarding)
	group.Get("/checklists/offboarding/:email", h.HandleOffboarding)
}

// HandleCompleteITProfile joins one employee's software and hardware.
// @Summary Complete IT Profile
// @Description One employee's services, devices, and compliance score, found by fuzzy identifier.
// @Tags reconcile
// @Produce json
// @Param identifier path string true "Employee identifier"
// @Success 200 {object} CompleteITProfile "Complete profile"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/profile/{identifier} [get]
func (h *Handler) HandleCompleteITProfile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	identifier := c.Params("identifier")

	profile, err := h.service.CompleteITProfile(identifier)
	if err != nil {
		l.Error("IT profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found: " + identifier})
	}
	return c.JSON(profile)
}

// HandleDeviceMismatch audits device assignments against the roster.
// @Summary Device Mismatch Audit
// @Description In-use devices held by unknown or deleted users, and IT staff without laptops.
// @Tags reconcile
// @Produce json
// @Success 200 {object} DeviceAssignmentMismatch "Mismatch audit"
// @Router /reconcile/audits/device-mismatch [get]
func (h *Handler) HandleDeviceMismatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	audit, err := h.service.DeviceMismatchAudit()
	if err != nil {
		l.Error("Device mismatch audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(audit)
}

// HandleSyncReport reconciles provisions against the portfolio.
// @Summary Provision-Portfolio Sync
// @Description Two-way reconciliation between the provisioning matrix and the paid-account ledger, with a health score.
// @Tags reconcile
// @Produce json
// @Success 200 {object} SyncReport "Sync report"
// @Router /reconcile/sync [get]
func (h *Handler) HandleSyncReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.SyncReport()
	if err != nil {
		l.Error("Sync report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleUnifiedView merges one app's accounts with provisioning statuses.
// @Summary Unified Service View
// @Description One app's portfolio accounts joined with each holder's provisioning status.
// @Tags reconcile
// @Produce json
// @Param name path string true "App name or substring"
// @Success 200 {object} UnifiedServiceView "Unified view"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /reconcile/services/{name} [get]
func (h *Handler) HandleUnifiedView(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	view, err := h.service.UnifiedView(name)
	if err != nil {
		l.Error("Unified view failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if view == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no accounts for app: " + name})
	}
	return c.JSON(view)
}

// HandleOnboarding builds the onboarding checklist.
// @Summary Onboarding Checklist
// @Description Required services and devices for one employee, with completion and laptop suggestions.
// @Tags reconcile
// @Produce json
// @Param email path string true "Employee email"
// @Success 200 {object} OnboardingChecklist "Onboarding checklist"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /reconcile/checklists/onboarding/{email} [get]
func (h *Handler) HandleOnboarding(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	email := c.Params("email")

	checklist, err := h.service.Onboarding(email)
	if err != nil {
		l.Error("Onboarding checklist failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if checklist == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found: " + email})
	}
	return c.JSON(checklist)
}

// HandleOffboarding builds the offboarding checklist.
// @Summary Offboarding Checklist
// @Description Remaining access and hardware for one leaver, with action items.
// @Tags reconcile
// @Produce json
// @Param email path string true "Employee email"
// @Success 200 {object} OffboardingChecklist "Offboarding checklist"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /reconcile/checklists/offboarding/{email} [get]
func (h *Handler) HandleOffboarding(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	email := c.Params("email")

	checklist, err := h.service.Offboarding(email)
	if err != nil {
		l.Error("Offboarding checklist failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if checklist == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found: " + email})
	}
	return c.JSON(checklist)
}
