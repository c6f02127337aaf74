package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolioOverview(t *testing.T) {
	snap := testSnapshot()

	overview := GetPortfolioOverview(snap)
	assert.Equal(t, 3, overview.TotalServices)
	assert.Equal(t, 3, overview.TotalUsers)
	assert.InDelta(t, 195.0, overview.TotalMonthlySpend, 0.001)

	// Slack has two distinct users and tops the list.
	require.NotEmpty(t, overview.Services)
	assert.Equal(t, "Slack", overview.Services[0].Name)
	assert.Equal(t, 2, overview.Services[0].UserCount)

	var aws ServiceOverview
	for _, s := range overview.Services {
		if s.Name == "AWS" {
			aws = s
		}
	}
	assert.Equal(t, 1, aws.UserCount)
	assert.Equal(t, 2, aws.AccountCount)
	// One user over two accounts reads as 50% utilization.
	assert.InDelta(t, 50.0, aws.UtilizationRate, 0.001)

	categories := map[string]CategorySpend{}
	for _, c := range overview.ByCategory {
		categories[c.Category] = c
	}
	assert.InDelta(t, 150.0, categories["Cloud Infrastructure"].TotalCost, 0.001)
	assert.InDelta(t, 20.0, categories["Communication"].TotalCost, 0.001)
	assert.InDelta(t, 25.0, categories["Development"].TotalCost, 0.001)
}

func TestGetDepartmentSpendAnalysis(t *testing.T) {
	snap := testSnapshot()

	analysis := GetDepartmentSpendAnalysis(snap, "engineering")
	require.NotNil(t, analysis)
	assert.Equal(t, 2, analysis.EmployeeCount)
	assert.InDelta(t, 185.0, analysis.TotalMonthlySpend, 0.001)
	assert.InDelta(t, 92.5, analysis.CostPerEmployee, 0.001)
	require.NotEmpty(t, analysis.Services)
	assert.Equal(t, "AWS", analysis.Services[0].Service)
	require.NotEmpty(t, analysis.TopSpenders)
	assert.Equal(t, "jane.doe@example.com", analysis.TopSpenders[0].Email)

	assert.Nil(t, GetDepartmentSpendAnalysis(snap, "nonexistent"))
}

func TestSearchByDepartment(t *testing.T) {
	snap := testSnapshot()

	analysis := SearchByDepartment(snap, "Sales")
	require.NotNil(t, analysis)
	assert.Equal(t, 1, analysis.EmployeeCount)
	assert.Equal(t, "john.deere@example.com", analysis.Employees[0].Email)
	assert.InDelta(t, 10.0, analysis.TotalSpend, 0.001)
}

func TestSearchByJobTitle(t *testing.T) {
	snap := testSnapshot()

	analysis := SearchByJobTitle(snap, "engineering manager")
	require.NotNil(t, analysis)
	assert.Equal(t, "Engineering Manager", analysis.JobTitle)
	assert.Equal(t, 1, analysis.EmployeeCount)
	assert.InDelta(t, 2.0, analysis.AvgServicesPerPerson, 0.001)
	assert.InDelta(t, 160.0, analysis.AvgCostPerPerson, 0.001)

	require.NotEmpty(t, analysis.CommonServices)
	// Every service here is held by the single title holder.
	assert.InDelta(t, 100.0, analysis.CommonServices[0].AdoptionRate, 0.001)

	assert.Nil(t, SearchByJobTitle(snap, "astronaut"))
}

func TestListings(t *testing.T) {
	snap := testSnapshot()

	assert.Equal(t, []string{"AWS", "GitHub", "Slack"}, GetApps(snap))
	assert.Equal(t, []string{"Engineering", "Sales"}, GetDepartments(snap))
	assert.Equal(t, []string{"Account Executive", "Consultant", "Engineering Manager"}, GetJobTitles(snap))
}

func TestGetPortfolioByEmail(t *testing.T) {
	snap := testSnapshot()

	accounts := GetPortfolioByEmail(snap, "JANE.DOE@example.com")
	assert.Len(t, accounts, 3)
	assert.Empty(t, GetPortfolioByEmail(snap, "nobody@example.com"))
}
