package portfolio

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// portfolioByApp returns accounts whose app name contains the query,
// case-insensitive.
func portfolioByApp(snap *dataset.Snapshot, appName string) []dataset.PortfolioAccount {
	q := strings.ToLower(appName)
	var out []dataset.PortfolioAccount
	for _, r := range snap.Portfolio {
		if strings.Contains(strings.ToLower(r.App), q) {
			out = append(out, r)
		}
	}
	return out
}

func portfolioByDepartment(snap *dataset.Snapshot, department string) []dataset.PortfolioAccount {
	q := strings.ToLower(department)
	var out []dataset.PortfolioAccount
	for _, r := range snap.Portfolio {
		for _, d := range r.Departments {
			if strings.Contains(strings.ToLower(d), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func portfolioByJobTitle(snap *dataset.Snapshot, jobTitle string) []dataset.PortfolioAccount {
	q := strings.ToLower(jobTitle)
	var out []dataset.PortfolioAccount
	for _, r := range snap.Portfolio {
		if strings.Contains(strings.ToLower(r.JobTitle), q) {
			out = append(out, r)
		}
	}
	return out
}

// GetPortfolioByEmail returns every account a user holds, matched by exact
// email, case-insensitive.
func GetPortfolioByEmail(snap *dataset.Snapshot, email string) []dataset.PortfolioAccount {
	q := strings.ToLower(email)
	out := []dataset.PortfolioAccount{}
	for _, r := range snap.Portfolio {
		if strings.ToLower(r.Email) == q {
			out = append(out, r)
		}
	}
	return out
}

// GetApps lists the distinct app names, sorted.
func GetApps(snap *dataset.Snapshot) []string {
	return distinctSorted(snap.Portfolio, func(r *dataset.PortfolioAccount) []string {
		return []string{r.App}
	})
}

// GetDepartments lists the distinct departments, sorted.
func GetDepartments(snap *dataset.Snapshot) []string {
	return distinctSorted(snap.Portfolio, func(r *dataset.PortfolioAccount) []string {
		return r.Departments
	})
}

// GetJobTitles lists the distinct job titles, sorted.
func GetJobTitles(snap *dataset.Snapshot) []string {
	return distinctSorted(snap.Portfolio, func(r *dataset.PortfolioAccount) []string {
		return []string{r.JobTitle}
	})
}

func distinctSorted(records []dataset.PortfolioAccount, key func(*dataset.PortfolioAccount) []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range records {
		for _, k := range key(&records[i]) {
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// ServiceOverview is one app's usage and cost profile.
type ServiceOverview struct {
	Name            string  `json:"name"`
	UserCount       int     `json:"userCount"`
	AccountCount    int     `json:"accountCount"`
	TotalCost       float64 `json:"totalCost"`
	AvgCostPerUser  float64 `json:"avgCostPerUser"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// CategorySpend groups app spend by rough category.
type CategorySpend struct {
	Category     string  `json:"category"`
	ServiceCount int     `json:"serviceCount"`
	TotalCost    float64 `json:"totalCost"`
}

// PortfolioOverview is the whole-portfolio analytics rollup.
type PortfolioOverview struct {
	TotalServices     int               `json:"totalServices"`
	TotalUsers        int               `json:"totalUsers"`
	TotalMonthlySpend float64           `json:"totalMonthlySpend"`
	Services          []ServiceOverview `json:"services"`
	ByCategory        []CategorySpend   `json:"byCategory"`
}

// serviceCategory classifies an app by name keywords.
func serviceCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "aws"), strings.Contains(lower, "cloud"), strings.Contains(lower, "gcp"):
		return "Cloud Infrastructure"
	case strings.Contains(lower, "microsoft"), strings.Contains(lower, "google workspace"):
		return "Productivity"
	case strings.Contains(lower, "github"), strings.Contains(lower, "gitlab"):
		return "Development"
	case strings.Contains(lower, "slack"), strings.Contains(lower, "zoom"):
		return "Communication"
	default:
		return "Other"
	}
}

// GetPortfolioOverview profiles every app: distinct users, account count,
// spend, and a utilization rate (users per account). Apps with more accounts
// than users signal duplicate or shared accounts. Services sort by user count
// descending; category spend sorts by cost.
func GetPortfolioOverview(snap *dataset.Snapshot) PortfolioOverview {
	overview := PortfolioOverview{Services: []ServiceOverview{}, ByCategory: []CategorySpend{}}

	type agg struct {
		users    map[string]struct{}
		accounts int
		cost     float64
	}
	serviceAgg := map[string]*agg{}
	allUsers := map[string]struct{}{}

	for i := range snap.Portfolio {
		r := &snap.Portfolio[i]
		email := strings.ToLower(r.Email)
		allUsers[email] = struct{}{}
		overview.TotalMonthlySpend += r.MonthlyExpense

		sa := serviceAgg[r.App]
		if sa == nil {
			sa = &agg{users: map[string]struct{}{}}
			serviceAgg[r.App] = sa
		}
		sa.users[email] = struct{}{}
		sa.accounts++
		sa.cost += r.MonthlyExpense
	}

	for name, sa := range serviceAgg {
		so := ServiceOverview{
			Name:         name,
			UserCount:    len(sa.users),
			AccountCount: sa.accounts,
			TotalCost:    sa.cost,
		}
		if so.UserCount > 0 {
			so.AvgCostPerUser = so.TotalCost / float64(so.UserCount)
		}
		if so.AccountCount > 0 {
			so.UtilizationRate = float64(so.UserCount) / float64(so.AccountCount) * 100
		}
		overview.Services = append(overview.Services, so)
	}
	sort.SliceStable(overview.Services, func(i, j int) bool {
		if overview.Services[i].UserCount != overview.Services[j].UserCount {
			return overview.Services[i].UserCount > overview.Services[j].UserCount
		}
		return overview.Services[i].Name < overview.Services[j].Name
	})

	overview.TotalServices = len(overview.Services)
	overview.TotalUsers = len(allUsers)

	catAgg := map[string]*CategorySpend{}
	for _, so := range overview.Services {
		cat := serviceCategory(so.Name)
		ca := catAgg[cat]
		if ca == nil {
			ca = &CategorySpend{Category: cat}
			catAgg[cat] = ca
		}
		ca.ServiceCount++
		ca.TotalCost += so.TotalCost
	}
	for _, ca := range catAgg {
		overview.ByCategory = append(overview.ByCategory, *ca)
	}
	sortByCost(overview.ByCategory, func(c CategorySpend) (float64, string) { return c.TotalCost, c.Category })

	return overview
}

// DepartmentServiceSpend is one app's footprint inside a department.
type DepartmentServiceSpend struct {
	Service        string  `json:"service"`
	UserCount      int     `json:"userCount"`
	TotalCost      float64 `json:"totalCost"`
	AvgCostPerUser float64 `json:"avgCostPerUser"`
}

// DepartmentSpender is one department member's total spend.
type DepartmentSpender struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	TotalCost float64 `json:"totalCost"`
}

// DepartmentSpendAnalysis is one department's spend profile.
type DepartmentSpendAnalysis struct {
	Department        string                   `json:"department"`
	TotalMonthlySpend float64                  `json:"totalMonthlySpend"`
	EmployeeCount     int                      `json:"employeeCount"`
	CostPerEmployee   float64                  `json:"costPerEmployee"`
	Services          []DepartmentServiceSpend `json:"services"`
	TopSpenders       []DepartmentSpender      `json:"topSpenders"`
}

// GetDepartmentSpendAnalysis breaks one department's spend down by service
// and by member. The department matches by case-insensitive substring.
// Returns nil when no accounts match.
func GetDepartmentSpendAnalysis(snap *dataset.Snapshot, department string) *DepartmentSpendAnalysis {
	records := portfolioByDepartment(snap, department)
	if len(records) == 0 {
		return nil
	}

	analysis := &DepartmentSpendAnalysis{
		Department:  department,
		Services:    []DepartmentServiceSpend{},
		TopSpenders: []DepartmentSpender{},
	}

	type agg struct {
		users map[string]struct{}
		cost  float64
	}
	serviceAgg := map[string]*agg{}
	userCost := map[string]*DepartmentSpender{}
	var userOrder []string

	for i := range records {
		r := &records[i]
		email := strings.ToLower(r.Email)
		analysis.TotalMonthlySpend += r.MonthlyExpense

		sa := serviceAgg[r.App]
		if sa == nil {
			sa = &agg{users: map[string]struct{}{}}
			serviceAgg[r.App] = sa
		}
		sa.users[email] = struct{}{}
		sa.cost += r.MonthlyExpense

		uc := userCost[email]
		if uc == nil {
			uc = &DepartmentSpender{Name: r.FullName(), Email: email}
			userCost[email] = uc
			userOrder = append(userOrder, email)
		}
		uc.TotalCost += r.MonthlyExpense
	}

	for name, sa := range serviceAgg {
		ds := DepartmentServiceSpend{Service: name, UserCount: len(sa.users), TotalCost: sa.cost}
		if ds.UserCount > 0 {
			ds.AvgCostPerUser = ds.TotalCost / float64(ds.UserCount)
		}
		analysis.Services = append(analysis.Services, ds)
	}
	sortByCost(analysis.Services, func(s DepartmentServiceSpend) (float64, string) { return s.TotalCost, s.Service })

	for _, email := range userOrder {
		analysis.TopSpenders = append(analysis.TopSpenders, *userCost[email])
	}
	sortByCost(analysis.TopSpenders, func(s DepartmentSpender) (float64, string) { return s.TotalCost, s.Email })
	analysis.TopSpenders = topN(analysis.TopSpenders, 10)

	analysis.EmployeeCount = len(userOrder)
	if analysis.EmployeeCount > 0 {
		analysis.CostPerEmployee = analysis.TotalMonthlySpend / float64(analysis.EmployeeCount)
	}
	return analysis
}

// DepartmentEmployee is one member in the department roster view.
type DepartmentEmployee struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	UserID       string  `json:"userId"`
	JobTitle     string  `json:"jobTitle"`
	ServiceCount int     `json:"serviceCount"`
	TotalCost    float64 `json:"totalCost"`
}

// DepartmentAnalysis is the roster-oriented department view.
type DepartmentAnalysis struct {
	Department         string                   `json:"department"`
	EmployeeCount      int                      `json:"employeeCount"`
	Employees          []DepartmentEmployee     `json:"employees"`
	TotalSpend         float64                  `json:"totalSpend"`
	AvgCostPerEmployee float64                  `json:"avgCostPerEmployee"`
	TopServices        []DepartmentServiceSpend `json:"topServices"`
}

// SearchByDepartment lists a department's members with their service counts
// and costs, plus the department's top 10 services by user count. Returns nil
// when no accounts match.
func SearchByDepartment(snap *dataset.Snapshot, department string) *DepartmentAnalysis {
	records := portfolioByDepartment(snap, department)
	if len(records) == 0 {
		return nil
	}

	analysis := &DepartmentAnalysis{
		Department:  department,
		Employees:   []DepartmentEmployee{},
		TopServices: []DepartmentServiceSpend{},
	}

	for _, group := range groupByUserService(records) {
		var first *dataset.PortfolioAccount
		emp := DepartmentEmployee{Email: group.email, ServiceCount: len(group.serviceOrder)}
		for _, app := range group.serviceOrder {
			for _, a := range group.services[app] {
				if first == nil {
					first = a
				}
				emp.TotalCost += a.MonthlyExpense
			}
		}
		emp.Name = first.FullName()
		emp.UserID = first.UserID
		emp.JobTitle = first.JobTitle
		analysis.Employees = append(analysis.Employees, emp)
		analysis.TotalSpend += emp.TotalCost
	}
	sortByCost(analysis.Employees, func(e DepartmentEmployee) (float64, string) { return e.TotalCost, e.Email })

	type agg struct {
		users map[string]struct{}
		cost  float64
	}
	serviceAgg := map[string]*agg{}
	for i := range records {
		r := &records[i]
		sa := serviceAgg[r.App]
		if sa == nil {
			sa = &agg{users: map[string]struct{}{}}
			serviceAgg[r.App] = sa
		}
		sa.users[strings.ToLower(r.Email)] = struct{}{}
		sa.cost += r.MonthlyExpense
	}
	for name, sa := range serviceAgg {
		analysis.TopServices = append(analysis.TopServices, DepartmentServiceSpend{
			Service:   name,
			UserCount: len(sa.users),
			TotalCost: sa.cost,
		})
	}
	sort.SliceStable(analysis.TopServices, func(i, j int) bool {
		if analysis.TopServices[i].UserCount != analysis.TopServices[j].UserCount {
			return analysis.TopServices[i].UserCount > analysis.TopServices[j].UserCount
		}
		return analysis.TopServices[i].Service < analysis.TopServices[j].Service
	})
	analysis.TopServices = topN(analysis.TopServices, 10)

	analysis.EmployeeCount = len(analysis.Employees)
	if analysis.EmployeeCount > 0 {
		analysis.AvgCostPerEmployee = analysis.TotalSpend / float64(analysis.EmployeeCount)
	}
	return analysis
}

// TitleEmployee is one member in the job-title view.
type TitleEmployee struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	UserID       string  `json:"userId"`
	Department   string  `json:"department"`
	ServiceCount int     `json:"serviceCount"`
	TotalCost    float64 `json:"totalCost"`
}

// CommonService is one app's adoption among holders of a job title.
type CommonService struct {
	Service      string  `json:"service"`
	AdoptionRate float64 `json:"adoptionRate"`
	AvgCost      float64 `json:"avgCost"`
}

// JobTitleAnalysis profiles the tooling of one job title.
type JobTitleAnalysis struct {
	JobTitle             string          `json:"jobTitle"`
	EmployeeCount        int             `json:"employeeCount"`
	Employees            []TitleEmployee `json:"employees"`
	CommonServices       []CommonService `json:"commonServices"`
	AvgServicesPerPerson float64         `json:"avgServicesPerPerson"`
	AvgCostPerPerson     float64         `json:"avgCostPerPerson"`
}

// SearchByJobTitle profiles everyone holding a job title: per-person services
// and cost, plus the 15 most-adopted services across the group. The title
// matches by case-insensitive substring. Returns nil when nothing matches.
func SearchByJobTitle(snap *dataset.Snapshot, jobTitle string) *JobTitleAnalysis {
	records := portfolioByJobTitle(snap, jobTitle)
	if len(records) == 0 {
		return nil
	}

	analysis := &JobTitleAnalysis{
		JobTitle:       records[0].JobTitle,
		Employees:      []TitleEmployee{},
		CommonServices: []CommonService{},
	}

	totalServices := 0
	totalCost := 0.0
	for _, group := range groupByUserService(records) {
		var first *dataset.PortfolioAccount
		emp := TitleEmployee{Email: group.email, ServiceCount: len(group.serviceOrder)}
		for _, app := range group.serviceOrder {
			for _, a := range group.services[app] {
				if first == nil {
					first = a
				}
				emp.TotalCost += a.MonthlyExpense
			}
		}
		emp.Name = first.FullName()
		emp.UserID = first.UserID
		emp.Department = strings.Join(first.Departments, ", ")
		analysis.Employees = append(analysis.Employees, emp)
		totalServices += emp.ServiceCount
		totalCost += emp.TotalCost
	}
	analysis.EmployeeCount = len(analysis.Employees)
	analysis.AvgServicesPerPerson = float64(totalServices) / float64(analysis.EmployeeCount)
	analysis.AvgCostPerPerson = totalCost / float64(analysis.EmployeeCount)

	type agg struct {
		users map[string]struct{}
		cost  float64
	}
	serviceAgg := map[string]*agg{}
	for i := range records {
		r := &records[i]
		sa := serviceAgg[r.App]
		if sa == nil {
			sa = &agg{users: map[string]struct{}{}}
			serviceAgg[r.App] = sa
		}
		sa.users[strings.ToLower(r.Email)] = struct{}{}
		sa.cost += r.MonthlyExpense
	}
	for name, sa := range serviceAgg {
		cs := CommonService{
			Service:      name,
			AdoptionRate: float64(len(sa.users)) / float64(analysis.EmployeeCount) * 100,
		}
		if len(sa.users) > 0 {
			cs.AvgCost = sa.cost / float64(len(sa.users))
		}
		analysis.CommonServices = append(analysis.CommonServices, cs)
	}
	sort.SliceStable(analysis.CommonServices, func(i, j int) bool {
		if analysis.CommonServices[i].AdoptionRate != analysis.CommonServices[j].AdoptionRate {
			return analysis.CommonServices[i].AdoptionRate > analysis.CommonServices[j].AdoptionRate
		}
		return analysis.CommonServices[i].Service < analysis.CommonServices[j].Service
	})
	analysis.CommonServices = topN(analysis.CommonServices, 15)

	return analysis
}
