package directory

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceAccessCountsAndFilter(t *testing.T) {
	snap := testSnapshot()

	access := GetServiceAccess(snap, "Slack", "")
	assert.Equal(t, 3, access.TotalCount)
	assert.Equal(t, 3, access.ActiveCount)
	assert.Equal(t, 0, access.InvitedCount)

	invited := GetServiceAccess(snap, "GitHub", dataset.ServiceInvited)
	require.Len(t, invited.Users, 1)
	assert.Equal(t, "U001", invited.Users[0].UserID)
	assert.Equal(t, 1, invited.TotalCount)
}

func TestGetServiceAccessUnknownService(t *testing.T) {
	snap := testSnapshot()

	access := GetServiceAccess(snap, "Nothing Here", "")
	assert.Zero(t, access.TotalCount)
	assert.Empty(t, access.Users)
}

func TestGetProvisioningStatus(t *testing.T) {
	snap := testSnapshot()

	ps := GetProvisioningStatus(snap, "aby@example.com")
	require.NotNil(t, ps)
	assert.Equal(t, "Aby Saji Pappachan", ps.Employee.Name)
	assert.Equal(t, 3, ps.ServicesSummary.Total)
	assert.Equal(t, 2, ps.ServicesSummary.Activated)
	assert.Equal(t, 1, ps.ServicesSummary.Invited)

	assert.Nil(t, GetProvisioningStatus(snap, "ghost@nowhere.com"))
}

func TestGetLocationStatsGroupsAndSorts(t *testing.T) {
	snap := testSnapshot()

	stats := GetLocationStats(snap, "")
	require.Len(t, stats, 2)
	// SFO has two employees, TYO one.
	assert.Equal(t, "SFO", stats[0].LocationCode)
	assert.Equal(t, 2, stats[0].EmployeeCount)
	assert.Equal(t, 1, stats[0].ActiveEmployees)
	assert.Equal(t, 1, stats[0].DeletedEmployees)

	only := GetLocationStats(snap, "TYO")
	require.Len(t, only, 1)
	assert.Equal(t, 1, only[0].EmployeeCount)
}

func TestGetLocationStatsBlankLocationIsUnknown(t *testing.T) {
	snap := &dataset.Snapshot{
		Employees: []dataset.Employee{
			{FirstName: "A", LastName: "B", UserID: "U1", Status: dataset.EmployeeActive},
		},
	}

	stats := GetLocationStats(snap, "")
	require.Len(t, stats, 1)
	assert.Equal(t, "Unknown", stats[0].LocationCode)
}

func TestAuditDeletedUsersCountsLiveAccess(t *testing.T) {
	snap := &dataset.Snapshot{
		ServiceNames: []string{"Slack", "AWS", "GitHub"},
		Employees: []dataset.Employee{
			{
				FirstName: "Gone", LastName: "User", UserID: "U9",
				Status:   dataset.EmployeeDeleted,
				Services: map[string]string{"Slack": "Activated", "AWS": "Invited", "GitHub": "Deactivated"},
			},
			{
				FirstName: "Clean", LastName: "Exit", UserID: "U10",
				Status:   dataset.EmployeeDeleted,
				Services: map[string]string{"Slack": "Deactivated", "AWS": "Deactivated"},
			},
			{
				FirstName: "Still", LastName: "Here", UserID: "U11",
				Status:   dataset.EmployeeActive,
				Services: map[string]string{"Slack": "Activated"},
			},
		},
	}

	audits := AuditDeletedUsers(snap)
	require.Len(t, audits, 1)
	assert.Equal(t, "U9", audits[0].UserID)
	assert.Equal(t, 2, audits[0].IssueCount)
	assert.Equal(t, []string{"Slack"}, audits[0].ActiveServices)
	assert.Equal(t, []string{"AWS"}, audits[0].InvitedServices)
}

func TestComplianceDashboard(t *testing.T) {
	snap := testSnapshot()

	dash := GetComplianceDashboard(snap)
	assert.Equal(t, 3, dash.TotalEmployees)
	assert.Equal(t, 2, dash.ActiveEmployees)
	assert.Equal(t, 1, dash.DeletedEmployees)
	assert.Equal(t, 3, dash.TotalServices)
	// John Deere is deleted with Slack still Activated and AWS Invited.
	assert.Equal(t, 1, dash.DeletedUsersWithActiveServices)
	assert.Len(t, dash.RecentIssues, 2)
	require.NotEmpty(t, dash.TopServices)
	assert.Equal(t, "Slack", dash.TopServices[0].Name)
	assert.Equal(t, 2, dash.TopServices[0].ActiveUsers)
}

func TestGetUsersByRole(t *testing.T) {
	snap := testSnapshot()

	engineers := GetUsersByRole(snap, "Engineer")
	require.Len(t, engineers, 2)

	// Deleted employees never appear, even on a role match.
	sales := GetUsersByRole(snap, "Sales")
	assert.Empty(t, sales)
}

func TestGetUsersByServiceCount(t *testing.T) {
	snap := testSnapshot()

	atLeastTwo := GetUsersByServiceCount(snap, 2, -1, false)
	require.Len(t, atLeastTwo, 2)
	assert.GreaterOrEqual(t, atLeastTwo[0].ActivatedServicesCount, atLeastTwo[1].ActivatedServicesCount)

	none := GetUsersByServiceCount(snap, 5, -1, false)
	assert.Empty(t, none)

	withInactive := GetUsersByServiceCount(snap, -1, -1, true)
	assert.Len(t, withInactive, 3)
}
