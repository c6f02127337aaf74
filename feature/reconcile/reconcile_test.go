package reconcile

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		ServiceNames: []string{"Slack", "AWS", "GitHub"},
		Employees: []dataset.Employee{
			{
				FirstName: "Jane", LastName: "Doe", UserID: "U002",
				WorkLocationCode: "SFO", Status: dataset.EmployeeActive,
				Email: "jane.doe@example.com", Username: "jdoe", Role: "IT Engineer",
				Services: map[string]string{"Slack": "Activated", "AWS": "Activated", "GitHub": ""},
			},
			{
				FirstName: "John", LastName: "Deere", UserID: "U003",
				WorkLocationCode: "SFO", Status: dataset.EmployeeDeleted,
				Email: "john.deere@example.com", Username: "john.d", Role: "Sales",
				Services: map[string]string{"Slack": "Activated", "AWS": "", "GitHub": "Deactivated"},
			},
		},
		Devices: []dataset.Device{
			{
				AssetNumber: "A-1", DeviceStatus: dataset.DeviceInUse, DeviceType: "Laptop",
				AssignedUserEmail: "jane.doe@example.com", AssignedUserID: "U002",
				MDM: dataset.MDMYes,
			},
			{
				AssetNumber: "A-2", DeviceStatus: dataset.DeviceInUse, DeviceType: "Monitor",
				AssignedUserEmail: "ghost@example.com",
				MDM:               dataset.MDMNotApplicable,
			},
			{
				AssetNumber: "A-3", DeviceStatus: dataset.DeviceInUse, DeviceType: "Laptop",
				AssignedUserEmail: "john.deere@example.com", AssignedUserID: "U003",
				AssignedDate:      "2023-01-01", MDM: dataset.MDMYes,
			},
		},
		Portfolio: []dataset.PortfolioAccount{
			{
				App: "Slack", Identifier: "jane.doe", AccountStatus: "Activated",
				MonthlyExpense: 10, FirstName: "Jane", LastName: "Doe",
				Email: "jane.doe@example.com", UserID: "U002", UserStatus: "Active",
			},
			{
				App: "GitHub", Identifier: "stray", AccountStatus: "Activated",
				MonthlyExpense: 25, FirstName: "Max", LastName: "Muster",
				Email: "max@example.com", UserID: "U999", UserStatus: "Active",
			},
		},
	}
}

func TestReconcileProvisionVsPortfolio(t *testing.T) {
	snap := testSnapshot()

	report := ReconcileProvisionVsPortfolio(snap)

	// Jane's AWS provision and John's Slack provision have no portfolio rows.
	require.Len(t, report.InProvisionNotPortfolio, 2)
	// Max holds a GitHub account but is not on the roster at all.
	require.Len(t, report.InPortfolioNotProvision, 1)
	assert.Equal(t, "max@example.com", report.InPortfolioNotProvision[0].Email)
	assert.Empty(t, report.StatusMismatches)
	assert.Equal(t, 3, report.TotalDiscrepancies)

	// 2 portfolio rows + 6 provisioning cells = 8 comparable records.
	assert.InDelta(t, float64(8-3)/8*100, report.SyncHealthScore, 0.001)
}

func TestReconcileStatusMismatch(t *testing.T) {
	snap := testSnapshot()
	snap.Portfolio[0].AccountStatus = "Deactivated"

	report := ReconcileProvisionVsPortfolio(snap)
	require.Len(t, report.StatusMismatches, 1)
	assert.Equal(t, "Slack", report.StatusMismatches[0].Service)
	assert.Equal(t, "Activated", report.StatusMismatches[0].ProvisionStatus)
	assert.Equal(t, "Deactivated", report.StatusMismatches[0].PortfolioStatus)
}

func TestReconcileEmptyInputsScoresHundred(t *testing.T) {
	report := ReconcileProvisionVsPortfolio(&dataset.Snapshot{})
	assert.Zero(t, report.TotalDiscrepancies)
	assert.InDelta(t, 100.0, report.SyncHealthScore, 0.001)
}

func TestReconcileIsIdempotent(t *testing.T) {
	snap := testSnapshot()

	first := ReconcileProvisionVsPortfolio(snap)
	second := ReconcileProvisionVsPortfolio(snap)
	assert.Equal(t, first, second)
}

func TestGetUnifiedServiceView(t *testing.T) {
	snap := testSnapshot()

	view := GetUnifiedServiceView(snap, "slack")
	require.NotNil(t, view)
	assert.Equal(t, "Slack", view.ServiceName)
	assert.Equal(t, 1, view.TotalUsers)
	assert.Equal(t, 1, view.TotalAccounts)
	assert.InDelta(t, 10.0, view.TotalMonthlyCost, 0.001)
	require.Len(t, view.Users, 1)
	assert.Equal(t, "Activated", view.Users[0].ProvisionStatus)
	assert.False(t, view.Users[0].HasDiscrepancy)

	// Max has no roster entry, so his provision status reads Unknown.
	github := GetUnifiedServiceView(snap, "github")
	require.NotNil(t, github)
	require.Len(t, github.Users, 1)
	assert.Equal(t, "Unknown", github.Users[0].ProvisionStatus)
	assert.True(t, github.Users[0].HasDiscrepancy)

	assert.Nil(t, GetUnifiedServiceView(snap, "nothing"))
}
