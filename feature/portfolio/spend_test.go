package portfolio

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		Portfolio: []dataset.PortfolioAccount{
			{
				App: "AWS", Identifier: "jane-prod", AccountStatus: "Activated",
				MonthlyExpense: 120, Roles: []string{"AdministratorAccess"},
				FirstName: "Jane", LastName: "Doe", UserStatus: "Active",
				Email: "jane.doe@example.com", UserID: "U002", UserCategory: "Employee",
				Departments: []string{"Engineering"}, JobTitle: "Engineering Manager",
			},
			{
				App: "AWS", Identifier: "jane-dev", AccountStatus: "Activated",
				MonthlyExpense: 30, Roles: []string{"PowerUserAccess"},
				FirstName: "Jane", LastName: "Doe", UserStatus: "Active",
				Email: "jane.doe@example.com", UserID: "U002", UserCategory: "Employee",
				Departments: []string{"Engineering"}, JobTitle: "Engineering Manager",
			},
			{
				App: "Slack", Identifier: "jane.doe", AccountStatus: "Activated",
				MonthlyExpense: 10, Roles: []string{"Member"},
				FirstName: "Jane", LastName: "Doe", UserStatus: "Active",
				Email: "jane.doe@example.com", UserID: "U002", UserCategory: "Employee",
				Departments: []string{"Engineering"}, JobTitle: "Engineering Manager",
			},
			{
				App: "Slack", Identifier: "john.d", AccountStatus: "Activated",
				MonthlyExpense: 10, Roles: []string{"Member"},
				FirstName: "John", LastName: "Deere", UserStatus: "Deleted",
				Email: "john.deere@example.com", UserID: "U003", UserCategory: "Employee",
				Departments: []string{"Sales"}, JobTitle: "Account Executive",
			},
			{
				App: "GitHub", Identifier: "contractor-kai", AccountStatus: "Activated",
				MonthlyExpense: 25, Roles: []string{"Owner"},
				FirstName: "Kai", LastName: "Ito", UserStatus: "Active",
				Email: "kai.ito@example.com", UserID: "C001", UserCategory: "Contractor",
				Departments: []string{"Engineering"}, JobTitle: "Consultant",
			},
		},
	}
}

func TestGetSpendReportTotals(t *testing.T) {
	snap := testSnapshot()

	report := GetSpendReport(snap)
	assert.InDelta(t, 195.0, report.TotalMonthlySpend, 0.001)

	require.NotEmpty(t, report.ByService)
	assert.Equal(t, "AWS", report.ByService[0].Service)
	assert.InDelta(t, 150.0, report.ByService[0].TotalCost, 0.001)
	assert.Equal(t, 1, report.ByService[0].ActiveUsers)
	assert.InDelta(t, 150.0, report.ByService[0].CostPerUser, 0.001)

	require.NotEmpty(t, report.ByUser)
	assert.Equal(t, "jane.doe@example.com", report.ByUser[0].Email)
	assert.InDelta(t, 160.0, report.ByUser[0].TotalCost, 0.001)
	assert.Equal(t, 2, report.ByUser[0].ServiceCount)

	require.Len(t, report.ByDepartment, 2)
	assert.Equal(t, "Engineering", report.ByDepartment[0].Department)
	assert.Equal(t, 2, report.ByDepartment[0].EmployeeCount)
}

func TestGetSpendReportTopExpensesBlended(t *testing.T) {
	snap := testSnapshot()

	report := GetSpendReport(snap)
	require.NotEmpty(t, report.TopExpenses)
	assert.LessOrEqual(t, len(report.TopExpenses), 10)
	// The costliest user outranks the costliest service here.
	assert.Equal(t, "User", report.TopExpenses[0].Type)
	assert.Equal(t, "Jane Doe", report.TopExpenses[0].Name)
	for i := 1; i < len(report.TopExpenses); i++ {
		assert.GreaterOrEqual(t, report.TopExpenses[i-1].Cost, report.TopExpenses[i].Cost)
	}
}

func TestAuditCostOptimization(t *testing.T) {
	snap := testSnapshot()

	report := AuditCostOptimization(snap)

	require.Len(t, report.InactiveAccountsCosting, 1)
	assert.Equal(t, "john.deere@example.com", report.InactiveAccountsCosting[0].Email)
	assert.InDelta(t, 10.0, report.InactiveAccountsCosting[0].MonthlyCost, 0.001)

	require.Len(t, report.DuplicateAccounts, 1)
	assert.Equal(t, "AWS", report.DuplicateAccounts[0].Service)
	assert.Equal(t, 2, report.DuplicateAccounts[0].AccountCount)
	assert.InDelta(t, 150.0, report.DuplicateAccounts[0].TotalCost, 0.001)

	require.Len(t, report.DeletedUsersWithCost, 1)
	assert.InDelta(t, 10.0, report.DeletedUsersWithCost[0].TotalWastedCost, 0.001)

	require.Len(t, report.ContractorsWithHighCost, 1)
	assert.Equal(t, "kai.ito@example.com", report.ContractorsWithHighCost[0].Email)

	// Inactive paid accounts plus deleted-user waste, counted in both views.
	assert.InDelta(t, 20.0, report.TotalPotentialSavings, 0.001)
}
