package portfolio

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdminRole(t *testing.T) {
	assert.True(t, isAdminRole([]string{"AdministratorAccess"}))
	assert.True(t, isAdminRole([]string{"Org Owner"}))
	assert.True(t, isAdminRole([]string{"Full Access"}))
	assert.True(t, isAdminRole([]string{"Member", "superuser"}))
	assert.False(t, isAdminRole([]string{"Member"}))
	assert.False(t, isAdminRole(nil))
}

func account(app, email, userID, category string, roles []string, expense float64) dataset.PortfolioAccount {
	return dataset.PortfolioAccount{
		App: app, Identifier: email + "-" + app, AccountStatus: "Activated",
		MonthlyExpense: expense, Roles: roles,
		FirstName: "Test", LastName: "User", UserStatus: "Active",
		Email: email, UserID: userID, UserCategory: category,
	}
}

func TestAuditPrivilegedAccessRiskLevels(t *testing.T) {
	snap := &dataset.Snapshot{
		Portfolio: []dataset.PortfolioAccount{
			// Five admin accounts puts an employee at HIGH.
			account("A1", "high@example.com", "U1", "Employee", []string{"Admin"}, 0),
			account("A2", "high@example.com", "U1", "Employee", []string{"Admin"}, 0),
			account("A3", "high@example.com", "U1", "Employee", []string{"Admin"}, 0),
			account("A4", "high@example.com", "U1", "Employee", []string{"Admin"}, 0),
			account("A5", "high@example.com", "U1", "Employee", []string{"Admin"}, 0),
			// A contractor is HIGH with a single admin account.
			account("B1", "contractor@example.com", "C9", "Contractor", []string{"Owner"}, 0),
			// Three admin accounts is MEDIUM.
			account("C1", "medium@example.com", "U2", "Employee", []string{"Admin"}, 0),
			account("C2", "medium@example.com", "U2", "Employee", []string{"Admin"}, 0),
			account("C3", "medium@example.com", "U2", "Employee", []string{"Admin"}, 0),
			// One admin account is LOW.
			account("D1", "low@example.com", "U3", "Employee", []string{"Admin"}, 0),
			// No admin roles, never listed.
			account("E1", "member@example.com", "U4", "Employee", []string{"Member"}, 0),
		},
	}

	audit := AuditPrivilegedAccess(snap)
	assert.Equal(t, 4, audit.TotalPrivilegedUsers)

	byEmail := map[string]PrivilegedUser{}
	for _, u := range audit.PrivilegedUsers {
		byEmail[u.Email] = u
	}
	assert.Equal(t, RiskHigh, byEmail["high@example.com"].RiskLevel)
	assert.Equal(t, RiskHigh, byEmail["contractor@example.com"].RiskLevel)
	assert.Equal(t, RiskMedium, byEmail["medium@example.com"].RiskLevel)
	assert.Equal(t, RiskLow, byEmail["low@example.com"].RiskLevel)

	// Sorted by admin account count descending.
	assert.Equal(t, "high@example.com", audit.PrivilegedUsers[0].Email)

	require.Len(t, audit.ContractorsWithAdmin, 1)
	assert.Equal(t, "contractor@example.com", audit.ContractorsWithAdmin[0].Email)

	// high (5) and medium (3) cross three or more services.
	require.Len(t, audit.CrossServiceAdmins, 2)
	assert.Equal(t, 5, audit.CrossServiceAdmins[0].AdminCount)
}

func TestGetServiceRoleBreakdown(t *testing.T) {
	snap := testSnapshot()

	breakdown := GetServiceRoleBreakdown(snap, "aws")
	require.NotNil(t, breakdown)
	assert.Equal(t, "AWS", breakdown.Service)
	assert.Equal(t, 2, breakdown.TotalUsers)
	assert.Equal(t, 1, breakdown.AdminCount)
	assert.Equal(t, 1, breakdown.RegularUserCount)
	assert.InDelta(t, 150.0, breakdown.TotalCost, 0.001)
	require.Len(t, breakdown.RoleDistribution, 2)
	assert.InDelta(t, 50.0, breakdown.RoleDistribution[0].Percentage, 0.001)

	assert.Nil(t, GetServiceRoleBreakdown(snap, "does-not-exist"))
}

func TestAuditMultiAccountAnomalies(t *testing.T) {
	snap := &dataset.Snapshot{
		Portfolio: []dataset.PortfolioAccount{
			// AWS with environment-named identifiers is legitimate.
			account("AWS", "jane@example.com", "U1", "Employee", []string{"Admin"}, 100),
			{App: "AWS", Identifier: "jane-prod", Email: "jane@example.com", UserID: "U1",
				FirstName: "Jane", LastName: "Doe", AccountStatus: "Activated"},
			// Duplicate Slack accounts need review.
			account("Slack", "bob@example.com", "U2", "Employee", nil, 10),
			{App: "Slack", Identifier: "bob-2", Email: "bob@example.com", UserID: "U2",
				FirstName: "Bob", LastName: "Ray", AccountStatus: "Activated"},
			// Non-AWS app with env-like identifier still needs review.
			account("Jenkins", "eve@example.com", "U3", "Employee", nil, 0),
			{App: "Jenkins", Identifier: "eve-staging", Email: "eve@example.com", UserID: "U3",
				FirstName: "Eve", LastName: "Lin", AccountStatus: "Activated"},
		},
	}

	anomalies := AuditMultiAccountAnomalies(snap)
	require.Len(t, anomalies, 3)

	byEmail := map[string]MultiAccountAnomaly{}
	for _, a := range anomalies {
		byEmail[a.Email] = a
	}

	jane := byEmail["jane@example.com"].Anomalies[0]
	assert.True(t, jane.IsLegitimate)
	assert.Equal(t, "AWS multi-environment access (expected)", jane.Reason)

	bob := byEmail["bob@example.com"].Anomalies[0]
	assert.False(t, bob.IsLegitimate)

	// Environment markers outside AWS do not legitimize duplicates.
	eve := byEmail["eve@example.com"].Anomalies[0]
	assert.False(t, eve.IsLegitimate)
}

func TestGetContractorAudit(t *testing.T) {
	snap := &dataset.Snapshot{
		Portfolio: []dataset.PortfolioAccount{
			// Category match.
			account("GitHub", "kai@example.com", "X1", "Contractor (Agency)", []string{"Owner"}, 50),
			// User-id prefix match.
			account("Slack", "lee@example.com", "C777", "External", []string{"Member"}, 5),
			// Regular employee, excluded.
			account("Slack", "ann@example.com", "U5", "Employee", []string{"Member"}, 5),
		},
	}

	report := GetContractorAudit(snap)
	assert.Equal(t, 2, report.TotalContractors)
	assert.InDelta(t, 55.0, report.TotalMonthlyCost, 0.001)
	assert.Equal(t, 1, report.ContractorsWithAdmin)

	// Most expensive contractor first.
	require.NotEmpty(t, report.Contractors)
	assert.Equal(t, "kai@example.com", report.Contractors[0].Email)
	assert.True(t, report.Contractors[0].HasAdminAccess)
	assert.Equal(t, []string{"GitHub"}, report.Contractors[0].AdminServices)

	require.Len(t, report.TopCostlyContractors, 2)
	assert.Equal(t, "kai@example.com", report.TopCostlyContractors[0].Email)
}
