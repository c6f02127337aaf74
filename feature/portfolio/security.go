package portfolio

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// Risk levels for privileged access findings.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// adminKeywords mark a role as privileged when any of them appears in it.
// The substring match is deliberately broad; "full" catches "Full Access"
// style roles at the cost of occasional false positives.
var adminKeywords = []string{"admin", "owner", "superuser", "root", "full", "unrestricted"}

func isAdminRole(roles []string) bool {
	for _, role := range roles {
		lower := strings.ToLower(role)
		for _, kw := range adminKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// PrivilegedAccount is one admin-bearing account.
type PrivilegedAccount struct {
	Service    string   `json:"service"`
	Identifier string   `json:"identifier"`
	Roles      []string `json:"roles"`
	IsAdmin    bool     `json:"isAdmin"`
}

// PrivilegedUser is one user holding admin roles anywhere.
type PrivilegedUser struct {
	Email              string              `json:"email"`
	Name               string              `json:"name"`
	UserID             string              `json:"userId"`
	UserCategory       string              `json:"userCategory"`
	JobTitle           string              `json:"jobTitle"`
	PrivilegedAccounts []PrivilegedAccount `json:"privilegedAccounts"`
	AdminServiceCount  int                 `json:"adminServiceCount"`
	RiskLevel          string              `json:"riskLevel"`
}

// ContractorAdmin is a contractor holding admin roles.
type ContractorAdmin struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	UserID        string   `json:"userId"`
	AdminServices []string `json:"adminServices"`
}

// CrossServiceAdmin is a user with admin in three or more services.
type CrossServiceAdmin struct {
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	AdminCount int      `json:"adminCount"`
	Services   []string `json:"services"`
}

// PrivilegedAccessAudit is the full admin-access review.
type PrivilegedAccessAudit struct {
	TotalPrivilegedUsers int                 `json:"totalPrivilegedUsers"`
	PrivilegedUsers      []PrivilegedUser    `json:"privilegedUsers"`
	ContractorsWithAdmin []ContractorAdmin   `json:"contractorsWithAdmin"`
	CrossServiceAdmins   []CrossServiceAdmin `json:"crossServiceAdmins"`
}

// AuditPrivilegedAccess finds every user with an admin-keyword role. Risk is
// HIGH for contractors or five and more admin accounts, MEDIUM from three,
// LOW otherwise. Contractors with admin and cross-service admins (three or
// more) are broken out separately.
func AuditPrivilegedAccess(snap *dataset.Snapshot) PrivilegedAccessAudit {
	audit := PrivilegedAccessAudit{
		PrivilegedUsers:      []PrivilegedUser{},
		ContractorsWithAdmin: []ContractorAdmin{},
		CrossServiceAdmins:   []CrossServiceAdmin{},
	}

	for _, group := range groupByUserService(snap.Portfolio) {
		var privileged []PrivilegedAccount
		var first *dataset.PortfolioAccount

		for _, app := range group.serviceOrder {
			for _, a := range group.services[app] {
				if first == nil {
					first = a
				}
				if len(a.Roles) == 0 || !isAdminRole(a.Roles) {
					continue
				}
				privileged = append(privileged, PrivilegedAccount{
					Service:    a.App,
					Identifier: a.Identifier,
					Roles:      a.Roles,
					IsAdmin:    true,
				})
			}
		}
		if len(privileged) == 0 {
			continue
		}

		count := len(privileged)
		risk := RiskLow
		switch {
		case count >= 5 || strings.Contains(strings.ToLower(first.UserCategory), "contractor"):
			risk = RiskHigh
		case count >= 3:
			risk = RiskMedium
		}

		audit.PrivilegedUsers = append(audit.PrivilegedUsers, PrivilegedUser{
			Email:              group.email,
			Name:               first.FullName(),
			UserID:             first.UserID,
			UserCategory:       first.UserCategory,
			JobTitle:           first.JobTitle,
			PrivilegedAccounts: privileged,
			AdminServiceCount:  count,
			RiskLevel:          risk,
		})

		services := make([]string, 0, count)
		for _, p := range privileged {
			services = append(services, p.Service)
		}
		if first.IsContractor() {
			audit.ContractorsWithAdmin = append(audit.ContractorsWithAdmin, ContractorAdmin{
				Email:         group.email,
				Name:          first.FullName(),
				UserID:        first.UserID,
				AdminServices: services,
			})
		}
		if count >= 3 {
			audit.CrossServiceAdmins = append(audit.CrossServiceAdmins, CrossServiceAdmin{
				Email:      group.email,
				Name:       first.FullName(),
				AdminCount: count,
				Services:   services,
			})
		}
	}

	audit.TotalPrivilegedUsers = len(audit.PrivilegedUsers)
	sort.SliceStable(audit.PrivilegedUsers, func(i, j int) bool {
		return audit.PrivilegedUsers[i].AdminServiceCount > audit.PrivilegedUsers[j].AdminServiceCount
	})
	sort.SliceStable(audit.CrossServiceAdmins, func(i, j int) bool {
		return audit.CrossServiceAdmins[i].AdminCount > audit.CrossServiceAdmins[j].AdminCount
	})
	return audit
}

// RoleUser identifies one account holder within a role bucket.
type RoleUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
}

// RoleBucket groups accounts sharing the same role set.
type RoleBucket struct {
	Role       string     `json:"role"`
	UserCount  int        `json:"userCount"`
	Percentage float64    `json:"percentage"`
	TotalCost  float64    `json:"totalCost"`
	Users      []RoleUser `json:"users"`
}

// ServiceRoleBreakdown is the role distribution within one app.
type ServiceRoleBreakdown struct {
	Service          string       `json:"service"`
	TotalUsers       int          `json:"totalUsers"`
	RoleDistribution []RoleBucket `json:"roleDistribution"`
	AdminCount       int          `json:"adminCount"`
	RegularUserCount int          `json:"regularUserCount"`
	TotalCost        float64      `json:"totalCost"`
}

// GetServiceRoleBreakdown buckets one app's accounts by their role set.
// serviceName matches apps by case-insensitive substring. Accounts without
// roles land in the "No Role" bucket. Returns nil when nothing matches.
func GetServiceRoleBreakdown(snap *dataset.Snapshot, serviceName string) *ServiceRoleBreakdown {
	records := portfolioByApp(snap, serviceName)
	if len(records) == 0 {
		return nil
	}

	breakdown := &ServiceRoleBreakdown{
		Service:          records[0].App,
		TotalUsers:       len(records),
		RoleDistribution: []RoleBucket{},
	}

	buckets := map[string]*RoleBucket{}
	var order []string
	for _, r := range records {
		breakdown.TotalCost += r.MonthlyExpense
		if isAdminRole(r.Roles) {
			breakdown.AdminCount++
		}

		key := "No Role"
		if len(r.Roles) > 0 {
			key = strings.Join(r.Roles, "|")
		}
		b := buckets[key]
		if b == nil {
			b = &RoleBucket{Role: key}
			buckets[key] = b
			order = append(order, key)
		}
		b.UserCount++
		b.TotalCost += r.MonthlyExpense
		b.Users = append(b.Users, RoleUser{Name: r.FullName(), Email: r.Email, Identifier: r.Identifier})
	}
	breakdown.RegularUserCount = breakdown.TotalUsers - breakdown.AdminCount

	for _, key := range order {
		b := buckets[key]
		b.Percentage = float64(b.UserCount) / float64(breakdown.TotalUsers) * 100
		breakdown.RoleDistribution = append(breakdown.RoleDistribution, *b)
	}
	sort.SliceStable(breakdown.RoleDistribution, func(i, j int) bool {
		return breakdown.RoleDistribution[i].UserCount > breakdown.RoleDistribution[j].UserCount
	})
	return breakdown
}

// AnomalyAccount is one of a user's several accounts in the same app.
type AnomalyAccount struct {
	Identifier    string   `json:"identifier"`
	Roles         []string `json:"roles"`
	AccountStatus string   `json:"accountStatus"`
	Cost          float64  `json:"cost"`
}

// ServiceAnomaly is a multi-account finding in one app.
type ServiceAnomaly struct {
	Service      string           `json:"service"`
	AccountCount int              `json:"accountCount"`
	Accounts     []AnomalyAccount `json:"accounts"`
	IsLegitimate bool             `json:"isLegitimate"`
	Reason       string           `json:"reason"`
}

// MultiAccountAnomaly is one user's multi-account findings.
type MultiAccountAnomaly struct {
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	UserID    string           `json:"userId"`
	Anomalies []ServiceAnomaly `json:"anomalies"`
}

// AuditMultiAccountAnomalies finds users holding several accounts in the same
// app. AWS accounts whose identifiers carry environment markers (dev, prod,
// staging, qa) are flagged legitimate; everything else needs review. Users
// with the most findings sort first.
func AuditMultiAccountAnomalies(snap *dataset.Snapshot) []MultiAccountAnomaly {
	anomalies := []MultiAccountAnomaly{}

	for _, group := range groupByUserService(snap.Portfolio) {
		var findings []ServiceAnomaly
		var first *dataset.PortfolioAccount

		for _, app := range group.serviceOrder {
			accounts := group.services[app]
			if first == nil {
				first = accounts[0]
			}
			if len(accounts) < 2 {
				continue
			}

			isAWS := strings.Contains(strings.ToLower(app), "aws")
			hasEnvs := false
			for _, a := range accounts {
				id := strings.ToLower(a.Identifier)
				if strings.Contains(id, "dev") || strings.Contains(id, "prod") ||
					strings.Contains(id, "staging") || strings.Contains(id, "qa") {
					hasEnvs = true
					break
				}
			}

			finding := ServiceAnomaly{
				Service:      app,
				AccountCount: len(accounts),
				IsLegitimate: isAWS && hasEnvs,
			}
			if finding.IsLegitimate {
				finding.Reason = "AWS multi-environment access (expected)"
			} else {
				finding.Reason = "Multiple accounts in same service (review needed)"
			}
			for _, a := range accounts {
				finding.Accounts = append(finding.Accounts, AnomalyAccount{
					Identifier:    a.Identifier,
					Roles:         a.Roles,
					AccountStatus: a.AccountStatus,
					Cost:          a.MonthlyExpense,
				})
			}
			findings = append(findings, finding)
		}

		if len(findings) > 0 {
			anomalies = append(anomalies, MultiAccountAnomaly{
				Email:     group.email,
				Name:      first.FullName(),
				UserID:    first.UserID,
				Anomalies: findings,
			})
		}
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return len(anomalies[i].Anomalies) > len(anomalies[j].Anomalies)
	})
	return anomalies
}

// Contractor is one contractor's access and cost profile.
type Contractor struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	UserID         string   `json:"userId"`
	JobTitle       string   `json:"jobTitle"`
	Department     string   `json:"department"`
	ServiceCount   int      `json:"serviceCount"`
	TotalCost      float64  `json:"totalCost"`
	HasAdminAccess bool     `json:"hasAdminAccess"`
	AdminServices  []string `json:"adminServices"`
}

// ContractorSummary names a contractor and their cost.
type ContractorSummary struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	TotalCost float64 `json:"totalCost"`
}

// ContractorAuditReport is the full contractor review.
type ContractorAuditReport struct {
	TotalContractors     int                 `json:"totalContractors"`
	TotalMonthlyCost     float64             `json:"totalMonthlyCost"`
	Contractors          []Contractor        `json:"contractors"`
	ContractorsWithAdmin int                 `json:"contractorsWithAdmin"`
	TopCostlyContractors []ContractorSummary `json:"topCostlyContractors"`
}

// GetContractorAudit profiles every contractor: services held, monthly cost,
// and any admin access, most expensive first.
func GetContractorAudit(snap *dataset.Snapshot) ContractorAuditReport {
	report := ContractorAuditReport{
		Contractors:          []Contractor{},
		TopCostlyContractors: []ContractorSummary{},
	}

	var contractorRecords []dataset.PortfolioAccount
	for _, r := range snap.Portfolio {
		if r.IsContractor() {
			contractorRecords = append(contractorRecords, r)
			report.TotalMonthlyCost += r.MonthlyExpense
		}
	}

	for _, group := range groupByUserService(contractorRecords) {
		var first *dataset.PortfolioAccount
		c := Contractor{Email: group.email, AdminServices: []string{}}
		for _, app := range group.serviceOrder {
			for _, a := range group.services[app] {
				if first == nil {
					first = a
				}
				c.TotalCost += a.MonthlyExpense
				if isAdminRole(a.Roles) {
					c.AdminServices = append(c.AdminServices, a.App)
				}
			}
		}
		c.Name = first.FullName()
		c.UserID = first.UserID
		c.JobTitle = first.JobTitle
		c.Department = strings.Join(first.Departments, ", ")
		c.ServiceCount = len(group.serviceOrder)
		c.HasAdminAccess = len(c.AdminServices) > 0
		if c.HasAdminAccess {
			report.ContractorsWithAdmin++
		}
		report.Contractors = append(report.Contractors, c)
	}

	sort.SliceStable(report.Contractors, func(i, j int) bool {
		return report.Contractors[i].TotalCost > report.Contractors[j].TotalCost
	})
	report.TotalContractors = len(report.Contractors)

	for _, c := range topN(report.Contractors, 10) {
		report.TopCostlyContractors = append(report.TopCostlyContractors, ContractorSummary{
			Name:      c.Name,
			Email:     c.Email,
			TotalCost: c.TotalCost,
		})
	}
	return report
}
