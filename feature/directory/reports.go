package directory

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// ServiceUser is one employee's standing in a single service.
type ServiceUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// ServiceAccess lists everyone who has any recorded status in a service.
type ServiceAccess struct {
	ServiceName      string        `json:"serviceName"`
	ActiveCount      int           `json:"activeCount"`
	InvitedCount     int           `json:"invitedCount"`
	DeactivatedCount int           `json:"deactivatedCount"`
	TotalCount       int           `json:"totalCount"`
	Users            []ServiceUser `json:"users"`
}

// GetServiceAccess reports every employee with a recorded status in the named
// service, optionally narrowed to one status value.
func GetServiceAccess(snap *dataset.Snapshot, serviceName, statusFilter string) ServiceAccess {
	access := ServiceAccess{ServiceName: serviceName, Users: []ServiceUser{}}

	for _, emp := range snap.Employees {
		status := emp.Services[serviceName]
		if status == "" {
			continue
		}
		if statusFilter != "" && status != statusFilter {
			continue
		}

		access.Users = append(access.Users, ServiceUser{
			Name:   emp.FullName(),
			Email:  emp.Email,
			UserID: emp.UserID,
			Status: status,
		})

		switch status {
		case dataset.ServiceActivated:
			access.ActiveCount++
		case dataset.ServiceInvited:
			access.InvitedCount++
		case dataset.ServiceDeactivated:
			access.DeactivatedCount++
		}
	}

	access.TotalCount = len(access.Users)
	return access
}

// ServiceEntry is one (service, status) pair on an employee.
type ServiceEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ProvisioningStatus summarizes one employee's standing across all services.
type ProvisioningStatus struct {
	Employee struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		UserID       string `json:"userId"`
		Status       string `json:"status"`
		Role         string `json:"role"`
		WorkLocation string `json:"workLocation"`
	} `json:"employee"`
	ServicesSummary struct {
		Total       int `json:"total"`
		Activated   int `json:"activated"`
		Invited     int `json:"invited"`
		Deactivated int `json:"deactivated"`
		Deleted     int `json:"deleted"`
	} `json:"servicesSummary"`
	Services []ServiceEntry `json:"services"`
}

// GetProvisioningStatus resolves the identifier and summarizes that
// employee's per-service statuses. Returns nil when the identifier resolves
// to nobody.
func GetProvisioningStatus(snap *dataset.Snapshot, identifier string) *ProvisioningStatus {
	emp := Resolve(snap, identifier)
	if emp == nil {
		return nil
	}

	ps := &ProvisioningStatus{Services: []ServiceEntry{}}
	ps.Employee.Name = emp.FullName()
	ps.Employee.Email = emp.Email
	ps.Employee.UserID = emp.UserID
	ps.Employee.Status = emp.Status
	ps.Employee.Role = emp.Role
	ps.Employee.WorkLocation = emp.WorkLocationCode

	for _, name := range snap.ServiceNames {
		status := emp.Services[name]
		if status == "" {
			continue
		}
		ps.Services = append(ps.Services, ServiceEntry{Name: name, Status: status})

		switch status {
		case dataset.ServiceActivated:
			ps.ServicesSummary.Activated++
		case dataset.ServiceInvited:
			ps.ServicesSummary.Invited++
		case dataset.ServiceDeactivated:
			ps.ServicesSummary.Deactivated++
		case dataset.ServiceDeleted:
			ps.ServicesSummary.Deleted++
		}
	}
	ps.ServicesSummary.Total = len(ps.Services)
	return ps
}

// ServiceCount pairs a service name with its active-user count.
type ServiceCount struct {
	Name        string `json:"name"`
	ActiveCount int    `json:"activeCount"`
}

// LocationStats aggregates one work location.
type LocationStats struct {
	LocationCode     string         `json:"locationCode"`
	EmployeeCount    int            `json:"employeeCount"`
	ActiveEmployees  int            `json:"activeEmployees"`
	DeletedEmployees int            `json:"deletedEmployees"`
	TopServices      []ServiceCount `json:"topServices"`
}

// GetLocationStats aggregates employees by work location; locationCode
// narrows the report to one location. Locations are sorted by headcount
// descending; each carries its top 10 services by active-user count.
func GetLocationStats(snap *dataset.Snapshot, locationCode string) []LocationStats {
	groups := make(map[string][]*dataset.Employee)
	var order []string

	for i := range snap.Employees {
		emp := &snap.Employees[i]
		loc := emp.WorkLocationCode
		if loc == "" {
			loc = "Unknown"
		}
		if locationCode != "" && loc != locationCode {
			continue
		}
		if _, seen := groups[loc]; !seen {
			order = append(order, loc)
		}
		groups[loc] = append(groups[loc], emp)
	}

	stats := make([]LocationStats, 0, len(order))
	for _, loc := range order {
		emps := groups[loc]
		ls := LocationStats{LocationCode: loc, EmployeeCount: len(emps), TopServices: []ServiceCount{}}

		serviceCounts := make(map[string]int)
		for _, emp := range emps {
			switch emp.Status {
			case dataset.EmployeeActive:
				ls.ActiveEmployees++
			case dataset.EmployeeDeleted:
				ls.DeletedEmployees++
			}
			if emp.Status != dataset.EmployeeActive {
				continue
			}
			for name, status := range emp.Services {
				if status == dataset.ServiceActivated {
					serviceCounts[name]++
				}
			}
		}

		ls.TopServices = topServiceCounts(serviceCounts, 10)
		stats = append(stats, ls)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].EmployeeCount > stats[j].EmployeeCount
	})
	return stats
}

// topServiceCounts converts a count map into a descending top-N slice.
// Names sort alphabetically within equal counts to keep output deterministic.
func topServiceCounts(counts map[string]int, n int) []ServiceCount {
	out := make([]ServiceCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, ServiceCount{Name: name, ActiveCount: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ActiveCount != out[j].ActiveCount {
			return out[i].ActiveCount > out[j].ActiveCount
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// DeletedUserAudit flags one deleted employee who still has live access.
type DeletedUserAudit struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ActiveServices  []string `json:"activeServices"`
	InvitedServices []string `json:"invitedServices"`
	IssueCount      int      `json:"issueCount"`
}

// AuditDeletedUsers lists every deleted employee who still holds Activated or
// Invited access to any service, worst offenders first. A deleted employee
// whose services are all deactivated produces no entry.
func AuditDeletedUsers(snap *dataset.Snapshot) []DeletedUserAudit {
	audits := []DeletedUserAudit{}

	for _, emp := range snap.Employees {
		if emp.Status != dataset.EmployeeDeleted {
			continue
		}

		var active, invited []string
		for _, name := range snap.ServiceNames {
			switch emp.Services[name] {
			case dataset.ServiceActivated:
				active = append(active, name)
			case dataset.ServiceInvited:
				invited = append(invited, name)
			}
		}

		if len(active)+len(invited) == 0 {
			continue
		}
		audits = append(audits, DeletedUserAudit{
			UserID:          emp.UserID,
			Name:            emp.FullName(),
			Email:           emp.Email,
			ActiveServices:  active,
			InvitedServices: invited,
			IssueCount:      len(active) + len(invited),
		})
	}

	sort.SliceStable(audits, func(i, j int) bool {
		return audits[i].IssueCount > audits[j].IssueCount
	})
	return audits
}

// ComplianceIssue is one dashboard finding.
type ComplianceIssue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// ActiveServiceCount pairs a service with its active-user count.
type ActiveServiceCount struct {
	Name        string `json:"name"`
	ActiveUsers int    `json:"activeUsers"`
}

// ComplianceDashboard is the org-wide provisioning health summary.
type ComplianceDashboard struct {
	TotalEmployees                 int                  `json:"totalEmployees"`
	ActiveEmployees                int                  `json:"activeEmployees"`
	DeletedEmployees               int                  `json:"deletedEmployees"`
	TotalServices                  int                  `json:"totalServices"`
	DeletedUsersWithActiveServices int                  `json:"deletedUsersWithActiveServices"`
	TopServices                    []ActiveServiceCount `json:"topServices"`
	RecentIssues                   []ComplianceIssue    `json:"recentIssues"`
}

// dashboard caps: top services shown and issues retained.
const (
	dashboardTopServices = 15
	dashboardMaxIssues   = 50
)

// GetComplianceDashboard builds the org-wide summary: headcounts, the top
// services by active users, and up to 50 deleted-user access issues.
func GetComplianceDashboard(snap *dataset.Snapshot) ComplianceDashboard {
	dash := ComplianceDashboard{
		TotalEmployees: len(snap.Employees),
		TotalServices:  len(snap.ServiceNames),
		TopServices:    []ActiveServiceCount{},
		RecentIssues:   []ComplianceIssue{},
	}

	serviceCounts := make(map[string]int)

	for _, emp := range snap.Employees {
		switch emp.Status {
		case dataset.EmployeeActive:
			dash.ActiveEmployees++
			for name, status := range emp.Services {
				if status == dataset.ServiceActivated {
					serviceCounts[name]++
				}
			}
		case dataset.EmployeeDeleted:
			dash.DeletedEmployees++
			hasLive := false
			for _, name := range snap.ServiceNames {
				status := emp.Services[name]
				if status != dataset.ServiceActivated && status != dataset.ServiceInvited {
					continue
				}
				hasLive = true
				dash.RecentIssues = append(dash.RecentIssues, ComplianceIssue{
					Type:     "Deleted User with Active Service",
					Message:  emp.FullName() + " (" + emp.UserID + ") still has " + status + " access to " + name,
					UserID:   emp.UserID,
					UserName: emp.FullName(),
				})
			}
			if hasLive {
				dash.DeletedUsersWithActiveServices++
			}
		}
	}

	for _, sc := range topServiceCounts(serviceCounts, dashboardTopServices) {
		dash.TopServices = append(dash.TopServices, ActiveServiceCount{Name: sc.Name, ActiveUsers: sc.ActiveCount})
	}
	if len(dash.RecentIssues) > dashboardMaxIssues {
		dash.RecentIssues = dash.RecentIssues[:dashboardMaxIssues]
	}
	return dash
}

// GetUsersByRole returns active employees whose role contains the given
// substring, preserving source order. The match is case-sensitive as stored,
// matching how roles are curated in the export.
func GetUsersByRole(snap *dataset.Snapshot, role string) []dataset.Employee {
	out := []dataset.Employee{}
	for _, emp := range snap.Employees {
		if emp.Status != dataset.EmployeeActive {
			continue
		}
		if strings.Contains(emp.Role, role) {
			out = append(out, emp)
		}
	}
	return out
}

// EmployeeServiceCount is one employee with their activated services.
type EmployeeServiceCount struct {
	Employee               dataset.Employee `json:"employee"`
	ActivatedServicesCount int              `json:"activatedServicesCount"`
	ActivatedServices      []string         `json:"activatedServices"`
}

// GetUsersByServiceCount filters employees by how many services they have
// activated. minCount/maxCount bound the range when >= 0; pass -1 to leave a
// bound open. Inactive employees are skipped unless includeInactive is set.
// Sorted by count descending.
func GetUsersByServiceCount(snap *dataset.Snapshot, minCount, maxCount int, includeInactive bool) []EmployeeServiceCount {
	results := []EmployeeServiceCount{}

	for _, emp := range snap.Employees {
		if !includeInactive && emp.Status != dataset.EmployeeActive {
			continue
		}

		var activated []string
		for _, name := range snap.ServiceNames {
			if emp.Services[name] == dataset.ServiceActivated {
				activated = append(activated, name)
			}
		}

		count := len(activated)
		if minCount >= 0 && count < minCount {
			continue
		}
		if maxCount >= 0 && count > maxCount {
			continue
		}

		results = append(results, EmployeeServiceCount{
			Employee:               emp,
			ActivatedServicesCount: count,
			ActivatedServices:      activated,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ActivatedServicesCount > results[j].ActivatedServicesCount
	})
	return results
}
