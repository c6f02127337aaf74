package reconcile

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// ProvisionOnlyEntry is an activated provision with no portfolio account.
type ProvisionOnlyEntry struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Service         string `json:"service"`
	ProvisionStatus string `json:"provisionStatus"`
}

// PortfolioOnlyEntry is a portfolio account with no matching provision.
type PortfolioOnlyEntry struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Service       string `json:"service"`
	AccountStatus string `json:"accountStatus"`
}

// StatusMismatchEntry is a provision and portfolio account that disagree.
type StatusMismatchEntry struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Service         string `json:"service"`
	ProvisionStatus string `json:"provisionStatus"`
	PortfolioStatus string `json:"portfolioStatus"`
}

// SyncReport is the provisioning-vs-portfolio reconciliation.
type SyncReport struct {
	TotalDiscrepancies      int                   `json:"totalDiscrepancies"`
	InProvisionNotPortfolio []ProvisionOnlyEntry  `json:"inProvisionNotPortfolio"`
	InPortfolioNotProvision []PortfolioOnlyEntry  `json:"inPortfolioNotProvision"`
	StatusMismatches        []StatusMismatchEntry `json:"statusMismatches"`
	SyncHealthScore         float64               `json:"syncHealthScore"`
}

// Each discrepancy list is truncated to this many entries; the counts and
// health score still reflect everything found.
const maxSyncEntries = 50

// ReconcileProvisionVsPortfolio cross-checks the provisioning matrix against
// the paid-account ledger in both directions. The health score is the share
// of comparable records without a discrepancy, where the denominator counts
// every portfolio row plus every provisioning cell, and reads 100 when there
// is nothing to compare.
func ReconcileProvisionVsPortfolio(snap *dataset.Snapshot) SyncReport {
	report := SyncReport{
		InProvisionNotPortfolio: []ProvisionOnlyEntry{},
		InPortfolioNotProvision: []PortfolioOnlyEntry{},
		StatusMismatches:        []StatusMismatchEntry{},
	}

	portfolioMap := map[string]map[string]*dataset.PortfolioAccount{}
	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		email := strings.ToLower(r.Email)
		apps := portfolioMap[email]
		if apps == nil {
			apps = map[string]*dataset.PortfolioAccount{}
			portfolioMap[email] = apps
		}
		apps[r.App] = r
	}

	provisionCells := 0
	for _, emp := range snap.Employees {
		email := strings.ToLower(emp.Email)
		userPortfolio := portfolioMap[email]
		provisionCells += len(emp.Services)

		for _, service := range snap.ServiceNames {
			status := emp.Services[service]
			if status == "" {
				continue
			}
			account := userPortfolio[service]

			if status == dataset.ServiceActivated && account == nil {
				report.InProvisionNotPortfolio = append(report.InProvisionNotPortfolio, ProvisionOnlyEntry{
					Email:           emp.Email,
					Name:            emp.FullName(),
					Service:         service,
					ProvisionStatus: status,
				})
			} else if account != nil && status == dataset.ServiceActivated && account.AccountStatus != dataset.ServiceActivated {
				report.StatusMismatches = append(report.StatusMismatches, StatusMismatchEntry{
					Email:           emp.Email,
					Name:            emp.FullName(),
					Service:         service,
					ProvisionStatus: status,
					PortfolioStatus: account.AccountStatus,
				})
			}
		}
	}

	employeeByEmail := map[string]*dataset.Employee{}
	for i := range snap.Employees {
		employeeByEmail[strings.ToLower(snap.Employees[i].Email)] = &snap.Employees[i]
	}

	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		emp := employeeByEmail[strings.ToLower(r.Email)]
		if emp == nil {
			report.InPortfolioNotProvision = append(report.InPortfolioNotProvision, PortfolioOnlyEntry{
				Email:         r.Email,
				Name:          r.FullName(),
				Service:       r.App,
				AccountStatus: r.AccountStatus,
			})
			continue
		}
		if emp.Services[r.App] == "" && r.AccountStatus == dataset.ServiceActivated {
			report.InPortfolioNotProvision = append(report.InPortfolioNotProvision, PortfolioOnlyEntry{
				Email:         r.Email,
				Name:          r.FullName(),
				Service:       r.App,
				AccountStatus: r.AccountStatus,
			})
		}
	}

	report.TotalDiscrepancies = len(report.InProvisionNotPortfolio) +
		len(report.InPortfolioNotProvision) + len(report.StatusMismatches)

	totalRecords := len(snap.Portfolio) + provisionCells
	if totalRecords > 0 {
		report.SyncHealthScore = float64(totalRecords-report.TotalDiscrepancies) / float64(totalRecords) * 100
	} else {
		report.SyncHealthScore = 100
	}

	report.InProvisionNotPortfolio = truncate(report.InProvisionNotPortfolio)
	report.InPortfolioNotProvision = truncate(report.InPortfolioNotProvision)
	report.StatusMismatches = truncate(report.StatusMismatches)
	return report
}

func truncate[T any](entries []T) []T {
	if len(entries) > maxSyncEntries {
		return entries[:maxSyncEntries]
	}
	return entries
}

// UnifiedAccount is one portfolio account in the unified service view.
type UnifiedAccount struct {
	Identifier    string   `json:"identifier"`
	AccountStatus string   `json:"accountStatus"`
	Roles         []string `json:"roles"`
	MonthlyCost   float64  `json:"monthlyCost"`
}

// UnifiedUser joins one user's provision status with their accounts.
type UnifiedUser struct {
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	UserID            string           `json:"userId"`
	ProvisionStatus   string           `json:"provisionStatus"`
	PortfolioAccounts []UnifiedAccount `json:"portfolioAccounts"`
	HasDiscrepancy    bool             `json:"hasDiscrepancy"`
}

// UnifiedServiceView is the merged per-service access picture.
type UnifiedServiceView struct {
	ServiceName      string        `json:"serviceName"`
	TotalUsers       int           `json:"totalUsers"`
	TotalAccounts    int           `json:"totalAccounts"`
	TotalMonthlyCost float64       `json:"totalMonthlyCost"`
	Users            []UnifiedUser `json:"users"`
}

// GetUnifiedServiceView merges one app's portfolio accounts with each
// holder's provisioning status. The app matches by case-insensitive
// substring. A user whose provision status differs from their first account's
// status is flagged. Users sort by name. Returns nil when nothing matches.
func GetUnifiedServiceView(snap *dataset.Snapshot, serviceName string) *UnifiedServiceView {
	q := strings.ToLower(serviceName)
	var records []*dataset.PortfolioAccount
	for i := range snap.Portfolio {
		if strings.Contains(strings.ToLower(snap.Portfolio[i].App), q) {
			records = append(records, &snap.Portfolio[i])
		}
	}
	if len(records) == 0 {
		return nil
	}

	employeeByEmail := map[string]*dataset.Employee{}
	for i := range snap.Employees {
		employeeByEmail[strings.ToLower(snap.Employees[i].Email)] = &snap.Employees[i]
	}

	byUser := map[string][]*dataset.PortfolioAccount{}
	var order []string
	view := &UnifiedServiceView{ServiceName: records[0].App, TotalAccounts: len(records), Users: []UnifiedUser{}}

	for _, r := range records {
		email := strings.ToLower(r.Email)
		if _, seen := byUser[email]; !seen {
			order = append(order, email)
		}
		byUser[email] = append(byUser[email], r)
		view.TotalMonthlyCost += r.MonthlyExpense
	}
	view.TotalUsers = len(order)

	for _, email := range order {
		accounts := byUser[email]
		first := accounts[0]

		provisionStatus := "Unknown"
		if emp := employeeByEmail[email]; emp != nil {
			if status := emp.Services[first.App]; status != "" {
				provisionStatus = status
			}
		}

		user := UnifiedUser{
			Name:            first.FullName(),
			Email:           email,
			UserID:          first.UserID,
			ProvisionStatus: provisionStatus,
			HasDiscrepancy:  provisionStatus != first.AccountStatus,
		}
		for _, a := range accounts {
			user.PortfolioAccounts = append(user.PortfolioAccounts, UnifiedAccount{
				Identifier:    a.Identifier,
				AccountStatus: a.AccountStatus,
				Roles:         a.Roles,
				MonthlyCost:   a.MonthlyExpense,
			})
		}
		view.Users = append(view.Users, user)
	}

	sort.SliceStable(view.Users, func(i, j int) bool {
		return view.Users[i].Name < view.Users[j].Name
	})
	return view
}
