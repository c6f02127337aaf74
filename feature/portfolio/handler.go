package portfolio

import (
	"provision-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the portfolio feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the portfolio routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/portfolio")
	group.Get("/spend", h.HandleSpendReport)
	group.Get("/overview", h.HandleOverview)
	group.Get("/apps", h.HandleApps)
	group.Get("/departments", h.HandleDepartments)
	group.Get("/departments/:name/spend", h.HandleDepartmentSpend)
	group.Get("/departments/:name/roster", h.HandleDepartmentRoster)
	group.Get("/job-titles", h.HandleJobTitles)
	group.Get("/job-titles/:title", h.HandleJobTitleProfile)
	group.Get("/accounts/by-email/:email", h.HandleAccountsByEmail)
	group.Get("/services/:name/roles", h.HandleRoleBreakdown)
	group.Get("/audits/cost-optimization", h.HandleCostOptimization)
	group.Get("/audits/privileged-access", h.HandlePrivilegedAccess)
	group.Get("/audits/multi-account", h.HandleMultiAccountAnomalies)
	group.Get("/audits/contractors", h.HandleContractorAudit)
}

// HandleSpendReport returns the monthly spend breakdown.
// @Summary Software Spend Report
// @Description Monthly spend aggregated by service, user, and department, with blended top expenses.
// @Tags portfolio
// @Produce json
// @Success 200 {object} SpendReport "Spend report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /portfolio/spend [get]
func (h *Handler) HandleSpendReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.SpendReport()
	if err != nil {
		l.Error("Spend report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCostOptimization returns savings opportunities.
// @Summary Cost Optimization Audit
// @Description Paid accounts of deleted users, duplicate accounts, and expensive contractors.
// @Tags portfolio
// @Produce json
// @Success 200 {object} CostOptimizationReport "Optimization report"
// @Router /portfolio/audits/cost-optimization [get]
func (h *Handler) HandleCostOptimization(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CostOptimization()
	if err != nil {
		l.Error("Cost optimization audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandlePrivilegedAccess reviews admin-role holders.
// @Summary Privileged Access Audit
// @Description Users with admin-keyword roles, risk-classified, with contractor and cross-service breakouts.
// @Tags portfolio
// @Produce json
// @Success 200 {object} PrivilegedAccessAudit "Privileged access audit"
// @Router /portfolio/audits/privileged-access [get]
func (h *Handler) HandlePrivilegedAccess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	audit, err := h.service.PrivilegedAccess()
	if err != nil {
		l.Error("Privileged access audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(audit)
}

// HandleRoleBreakdown buckets one app's accounts by role.
// @Summary Service Role Breakdown
// @Description Role distribution within one app, matched by name substring.
// @Tags portfolio
// @Produce json
// @Param name path string true "App name or substring"
// @Success 200 {object} ServiceRoleBreakdown "Role breakdown"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /portfolio/services/{name}/roles [get]
func (h *Handler) HandleRoleBreakdown(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	breakdown, err := h.service.RoleBreakdown(name)
	if err != nil {
		l.Error("Role breakdown failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if breakdown == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no accounts for app: " + name})
	}
	return c.JSON(breakdown)
}

// HandleMultiAccountAnomalies lists multi-account findings.
// @Summary Multi-Account Anomalies
// @Description Users holding several accounts in one app, with AWS multi-environment access marked legitimate.
// @Tags portfolio
// @Produce json
// @Success 200 {array} MultiAccountAnomaly "Anomalies, most findings first"
// @Router /portfolio/audits/multi-account [get]
func (h *Handler) HandleMultiAccountAnomalies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	anomalies, err := h.service.MultiAccountAnomalies()
	if err != nil {
		l.Error("Multi-account audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(anomalies), "anomalies": anomalies})
}

// HandleContractorAudit profiles contractor access and cost.
// @Summary Contractor Audit
// @Description Every contractor's services, monthly cost, and admin access.
// @Tags portfolio
// @Produce json
// @Success 200 {object} ContractorAuditReport "Contractor audit"
// @Router /portfolio/audits/contractors [get]
func (h *Handler) HandleContractorAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.ContractorAudit()
	if err != nil {
		l.Error("Contractor audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleOverview profiles every app in the portfolio.
// @Summary Portfolio Overview
// @Description Per-app users, accounts, spend, utilization, and category rollup.
// @Tags portfolio
// @Produce json
// @Success 200 {object} PortfolioOverview "Portfolio overview"
// @Router /portfolio/overview [get]
func (h *Handler) HandleOverview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	overview, err := h.service.Overview()
	if err != nil {
		l.Error("Portfolio overview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(overview)
}

// HandleDepartmentSpend analyzes one department's spend.
// @Summary Department Spend Analysis
// @Description One department's spend by service and member, matched by substring.
// @Tags portfolio
// @Produce json
// @Param name path string true "Department name or substring"
// @Success 200 {object} DepartmentSpendAnalysis "Spend analysis"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /portfolio/departments/{name}/spend [get]
func (h *Handler) HandleDepartmentSpend(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	analysis, err := h.service.DepartmentSpend(name)
	if err != nil {
		l.Error("Department spend failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if analysis == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no accounts for department: " + name})
	}
	return c.JSON(analysis)
}

// HandleDepartmentRoster lists one department's members.
// @Summary Department Roster
// @Description One department's members with service counts and costs.
// @Tags portfolio
// @Produce json
// @Param name path string true "Department name or substring"
// @Success 200 {object} DepartmentAnalysis "Roster analysis"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /portfolio/departments/{name}/roster [get]
func (h *Handler) HandleDepartmentRoster(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	analysis, err := h.service.DepartmentRoster(name)
	if err != nil {
		l.Error("Department roster failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if analysis == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no accounts for department: " + name})
	}
	return c.JSON(analysis)
}

// HandleJobTitleProfile profiles holders of one job title.
// @Summary Job Title Profile
// @Description Tooling profile for one job title, matched by substring.
// @Tags portfolio
// @Produce json
// @Param title path string true "Job title or substring"
// @Success 200 {object} JobTitleAnalysis "Job title analysis"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /portfolio/job-titles/{title} [get]
func (h *Handler) HandleJobTitleProfile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	title := c.Params("title")

	analysis, err := h.service.JobTitleProfile(title)
	if err != nil {
		l.Error("Job title profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if analysis == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no accounts for job title: " + title})
	}
	return c.JSON(analysis)
}

// HandleAccountsByEmail lists one user's accounts.
// @Summary Accounts By Email
// @Description Every portfolio account held by one email.
// @Tags portfolio
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} dataset.PortfolioAccount "Accounts"
// @Router /portfolio/accounts/by-email/{email} [get]
func (h *Handler) HandleAccountsByEmail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	accounts, err := h.service.AccountsByEmail(c.Params("email"))
	if err != nil {
		l.Error("Accounts by email failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(accounts), "accounts": accounts})
}

// HandleApps lists the distinct app names.
// @Summary List Apps
// @Description Distinct app names in the portfolio, sorted.
// @Tags portfolio
// @Produce json
// @Success 200 {array} string "App names"
// @Router /portfolio/apps [get]
func (h *Handler) HandleApps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	apps, err := h.service.Apps()
	if err != nil {
		l.Error("App listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(apps), "apps": apps})
}

// HandleDepartments lists the distinct departments.
// @Summary List Departments
// @Description Distinct departments in the portfolio, sorted.
// @Tags portfolio
// @Produce json
// @Success 200 {array} string "Departments"
// @Router /portfolio/departments [get]
func (h *Handler) HandleDepartments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	departments, err := h.service.Departments()
	if err != nil {
		l.Error("Department listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(departments), "departments": departments})
}

// HandleJobTitles lists the distinct job titles.
// @Summary List Job Titles
// @Description Distinct job titles in the portfolio, sorted.
// @Tags portfolio
// @Produce json
// @Success 200 {array} string "Job titles"
// @Router /portfolio/job-titles [get]
func (h *Handler) HandleJobTitles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	titles, err := h.service.JobTitles()
	if err != nil {
		l.Error("Job title listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(titles), "jobTitles": titles})
}
