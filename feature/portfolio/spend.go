package portfolio

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// ServiceSpend is one app's spend rollup.
type ServiceSpend struct {
	Service     string  `json:"service"`
	TotalCost   float64 `json:"totalCost"`
	ActiveUsers int     `json:"activeUsers"`
	CostPerUser float64 `json:"costPerUser"`
}

// UserSpend is one user's spend rollup.
type UserSpend struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	UserID       string  `json:"userId"`
	TotalCost    float64 `json:"totalCost"`
	ServiceCount int     `json:"serviceCount"`
}

// DepartmentSpend is one department's spend rollup.
type DepartmentSpend struct {
	Department      string  `json:"department"`
	TotalCost       float64 `json:"totalCost"`
	EmployeeCount   int     `json:"employeeCount"`
	CostPerEmployee float64 `json:"costPerEmployee"`
}

// TopExpense is one line of the blended top-expenses list.
type TopExpense struct {
	Type string  `json:"type"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// SpendReport is the full monthly software spend breakdown.
type SpendReport struct {
	TotalMonthlySpend float64           `json:"totalMonthlySpend"`
	ByService         []ServiceSpend    `json:"byService"`
	ByUser            []UserSpend       `json:"byUser"`
	ByDepartment      []DepartmentSpend `json:"byDepartment"`
	TopExpenses       []TopExpense      `json:"topExpenses"`
}

// GetSpendReport aggregates monthly expense by service, user, and department,
// each sorted by cost descending, and blends the five most expensive services
// and users into a top-10 expense list.
func GetSpendReport(snap *dataset.Snapshot) SpendReport {
	report := SpendReport{
		ByService:    []ServiceSpend{},
		ByUser:       []UserSpend{},
		ByDepartment: []DepartmentSpend{},
		TopExpenses:  []TopExpense{},
	}

	type agg struct {
		cost  float64
		users map[string]struct{}
	}
	serviceAgg := map[string]*agg{}
	deptAgg := map[string]*agg{}

	type userAgg struct {
		cost     float64
		services map[string]struct{}
		name     string
		userID   string
	}
	userMap := map[string]*userAgg{}

	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		email := strings.ToLower(r.Email)
		report.TotalMonthlySpend += r.MonthlyExpense

		sa := serviceAgg[r.App]
		if sa == nil {
			sa = &agg{users: map[string]struct{}{}}
			serviceAgg[r.App] = sa
		}
		sa.cost += r.MonthlyExpense
		sa.users[email] = struct{}{}

		ua := userMap[email]
		if ua == nil {
			ua = &userAgg{services: map[string]struct{}{}, name: r.FullName(), userID: r.UserID}
			userMap[email] = ua
		}
		ua.cost += r.MonthlyExpense
		ua.services[r.App] = struct{}{}

		for _, dept := range r.Departments {
			if dept == "" {
				continue
			}
			da := deptAgg[dept]
			if da == nil {
				da = &agg{users: map[string]struct{}{}}
				deptAgg[dept] = da
			}
			da.cost += r.MonthlyExpense
			da.users[email] = struct{}{}
		}
	}

	for name, sa := range serviceAgg {
		ss := ServiceSpend{Service: name, TotalCost: sa.cost, ActiveUsers: len(sa.users)}
		if ss.ActiveUsers > 0 {
			ss.CostPerUser = ss.TotalCost / float64(ss.ActiveUsers)
		}
		report.ByService = append(report.ByService, ss)
	}
	sortByCost(report.ByService, func(s ServiceSpend) (float64, string) { return s.TotalCost, s.Service })

	for email, ua := range userMap {
		report.ByUser = append(report.ByUser, UserSpend{
			Email:        email,
			Name:         ua.name,
			UserID:       ua.userID,
			TotalCost:    ua.cost,
			ServiceCount: len(ua.services),
		})
	}
	sortByCost(report.ByUser, func(u UserSpend) (float64, string) { return u.TotalCost, u.Email })

	for dept, da := range deptAgg {
		ds := DepartmentSpend{Department: dept, TotalCost: da.cost, EmployeeCount: len(da.users)}
		if ds.EmployeeCount > 0 {
			ds.CostPerEmployee = ds.TotalCost / float64(ds.EmployeeCount)
		}
		report.ByDepartment = append(report.ByDepartment, ds)
	}
	sortByCost(report.ByDepartment, func(d DepartmentSpend) (float64, string) { return d.TotalCost, d.Department })

	for _, s := range topN(report.ByService, 5) {
		report.TopExpenses = append(report.TopExpenses, TopExpense{Type: "Service", Name: s.Service, Cost: s.TotalCost})
	}
	for _, u := range topN(report.ByUser, 5) {
		report.TopExpenses = append(report.TopExpenses, TopExpense{Type: "User", Name: u.Name, Cost: u.TotalCost})
	}
	sort.SliceStable(report.TopExpenses, func(i, j int) bool {
		return report.TopExpenses[i].Cost > report.TopExpenses[j].Cost
	})
	report.TopExpenses = topN(report.TopExpenses, 10)

	return report
}

// sortByCost orders by cost descending, tie-broken by name for determinism
// since map iteration order is random.
func sortByCost[T any](items []T, key func(T) (float64, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, ni := key(items[i])
		cj, nj := key(items[j])
		if ci != cj {
			return ci > cj
		}
		return ni < nj
	})
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// CostingAccount is one paid account held by a deleted user.
type CostingAccount struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Service       string  `json:"service"`
	AccountStatus string  `json:"accountStatus"`
	UserStatus    string  `json:"userStatus"`
	MonthlyCost   float64 `json:"monthlyCost"`
}

// DuplicateAccountDetail is one of several accounts a user holds in one app.
type DuplicateAccountDetail struct {
	Identifier string   `json:"identifier"`
	Roles      []string `json:"roles"`
	Cost       float64  `json:"cost"`
}

// DuplicateAccounts flags a user holding multiple accounts in one app.
type DuplicateAccounts struct {
	Email        string                   `json:"email"`
	Name         string                   `json:"name"`
	Service      string                   `json:"service"`
	AccountCount int                      `json:"accountCount"`
	TotalCost    float64                  `json:"totalCost"`
	Accounts     []DuplicateAccountDetail `json:"accounts"`
}

// WastedAccount is one still-paid account of a deleted user.
type WastedAccount struct {
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
}

// DeletedUserCost totals what a deleted user still costs per month.
type DeletedUserCost struct {
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	UserID          string          `json:"userId"`
	TotalWastedCost float64         `json:"totalWastedCost"`
	ActiveAccounts  []WastedAccount `json:"activeAccounts"`
}

// ContractorCost is one contractor's monthly spend.
type ContractorCost struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	UserID       string  `json:"userId"`
	TotalCost    float64 `json:"totalCost"`
	ServiceCount int     `json:"serviceCount"`
}

// CostOptimizationReport bundles the savings opportunities.
type CostOptimizationReport struct {
	TotalPotentialSavings   float64             `json:"totalPotentialSavings"`
	InactiveAccountsCosting []CostingAccount    `json:"inactiveAccountsCosting"`
	DuplicateAccounts       []DuplicateAccounts `json:"duplicateAccounts"`
	DeletedUsersWithCost    []DeletedUserCost   `json:"deletedUsersWithCost"`
	ContractorsWithHighCost []ContractorCost    `json:"contractorsWithHighCost"`
}

// AuditCostOptimization surfaces money left on the table: paid accounts of
// deleted users, duplicate accounts in the same app, and the 20 most
// expensive contractors. Potential savings double-count a deleted user's paid
// accounts on purpose: both views flag the same dollars.
func AuditCostOptimization(snap *dataset.Snapshot) CostOptimizationReport {
	report := CostOptimizationReport{
		InactiveAccountsCosting: []CostingAccount{},
		DuplicateAccounts:       []DuplicateAccounts{},
		DeletedUsersWithCost:    []DeletedUserCost{},
		ContractorsWithHighCost: []ContractorCost{},
	}

	byUserService := groupByUserService(snap.Portfolio)

	deletedByEmail := map[string][]*dataset.PortfolioAccount{}
	var deletedOrder []string

	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		if strings.ToLower(r.UserStatus) != "deleted" {
			continue
		}
		if r.MonthlyExpense > 0 {
			report.InactiveAccountsCosting = append(report.InactiveAccountsCosting, CostingAccount{
				Email:         r.Email,
				Name:          r.FullName(),
				Service:       r.App,
				AccountStatus: r.AccountStatus,
				UserStatus:    r.UserStatus,
				MonthlyCost:   r.MonthlyExpense,
			})
		}
		email := strings.ToLower(r.Email)
		if _, seen := deletedByEmail[email]; !seen {
			deletedOrder = append(deletedOrder, email)
		}
		deletedByEmail[email] = append(deletedByEmail[email], r)
	}
	sort.SliceStable(report.InactiveAccountsCosting, func(i, j int) bool {
		return report.InactiveAccountsCosting[i].MonthlyCost > report.InactiveAccountsCosting[j].MonthlyCost
	})

	for _, group := range byUserService {
		for _, app := range group.serviceOrder {
			accounts := group.services[app]
			if len(accounts) < 2 {
				continue
			}
			dup := DuplicateAccounts{
				Email:        group.email,
				Name:         accounts[0].FullName(),
				Service:      accounts[0].App,
				AccountCount: len(accounts),
				Accounts:     make([]DuplicateAccountDetail, 0, len(accounts)),
			}
			for _, a := range accounts {
				dup.TotalCost += a.MonthlyExpense
				dup.Accounts = append(dup.Accounts, DuplicateAccountDetail{
					Identifier: a.Identifier,
					Roles:      a.Roles,
					Cost:       a.MonthlyExpense,
				})
			}
			report.DuplicateAccounts = append(report.DuplicateAccounts, dup)
		}
	}

	for _, email := range deletedOrder {
		accounts := deletedByEmail[email]
		cost := DeletedUserCost{
			Email:          email,
			Name:           accounts[0].FullName(),
			UserID:         accounts[0].UserID,
			ActiveAccounts: make([]WastedAccount, 0, len(accounts)),
		}
		for _, a := range accounts {
			cost.TotalWastedCost += a.MonthlyExpense
			cost.ActiveAccounts = append(cost.ActiveAccounts, WastedAccount{Service: a.App, Cost: a.MonthlyExpense})
		}
		if cost.TotalWastedCost > 0 {
			report.DeletedUsersWithCost = append(report.DeletedUsersWithCost, cost)
		}
	}
	sort.SliceStable(report.DeletedUsersWithCost, func(i, j int) bool {
		return report.DeletedUsersWithCost[i].TotalWastedCost > report.DeletedUsersWithCost[j].TotalWastedCost
	})

	contractorAgg := map[string]*ContractorCost{}
	contractorServices := map[string]map[string]struct{}{}
	var contractorOrder []string
	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		if !r.IsContractor() {
			continue
		}
		email := strings.ToLower(r.Email)
		cc := contractorAgg[email]
		if cc == nil {
			cc = &ContractorCost{Email: email, Name: r.FullName(), UserID: r.UserID}
			contractorAgg[email] = cc
			contractorServices[email] = map[string]struct{}{}
			contractorOrder = append(contractorOrder, email)
		}
		cc.TotalCost += r.MonthlyExpense
		contractorServices[email][r.App] = struct{}{}
	}
	for _, email := range contractorOrder {
		cc := contractorAgg[email]
		cc.ServiceCount = len(contractorServices[email])
		report.ContractorsWithHighCost = append(report.ContractorsWithHighCost, *cc)
	}
	sort.SliceStable(report.ContractorsWithHighCost, func(i, j int) bool {
		return report.ContractorsWithHighCost[i].TotalCost > report.ContractorsWithHighCost[j].TotalCost
	})
	report.ContractorsWithHighCost = topN(report.ContractorsWithHighCost, 20)

	for _, a := range report.InactiveAccountsCosting {
		report.TotalPotentialSavings += a.MonthlyCost
	}
	for _, u := range report.DeletedUsersWithCost {
		report.TotalPotentialSavings += u.TotalWastedCost
	}
	return report
}

// userServiceGroup indexes one user's accounts by app, preserving first-seen
// order of both users and apps.
type userServiceGroup struct {
	email        string
	services     map[string][]*dataset.PortfolioAccount
	serviceOrder []string
}

func groupByUserService(records []dataset.PortfolioAccount) []*userServiceGroup {
	index := map[string]*userServiceGroup{}
	var groups []*userServiceGroup

	for i := range records {
		r := &records[i]
		email := strings.ToLower(r.Email)
		g := index[email]
		if g == nil {
			g = &userServiceGroup{email: email, services: map[string][]*dataset.PortfolioAccount{}}
			index[email] = g
			groups = append(groups, g)
		}
		if _, seen := g.services[r.App]; !seen {
			g.serviceOrder = append(g.serviceOrder, r.App)
		}
		g.services[r.App] = append(g.services[r.App], r)
	}
	return groups
}
