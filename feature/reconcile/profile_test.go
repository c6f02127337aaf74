package reconcile

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompleteITProfileHealthy(t *testing.T) {
	snap := testSnapshot()

	profile := GetCompleteITProfile(snap, "jane.doe@example.com")
	require.NotNil(t, profile)
	assert.Equal(t, "Jane Doe", profile.User.Name)

	assert.Equal(t, 2, profile.SoftwareAccess.Total)
	assert.Equal(t, 2, profile.SoftwareAccess.Activated)

	assert.Equal(t, 1, profile.HardwareAssets.Total)
	assert.Equal(t, 1, profile.HardwareAssets.Laptops)

	cs := profile.ComplianceStatus
	assert.True(t, cs.AllDevicesMDMEnrolled)
	assert.True(t, cs.HasActiveServices)
	assert.True(t, cs.HasAssignedDevices)
	assert.Empty(t, cs.Issues)
	// 30 MDM + 30 services + 20 devices + 20 clean.
	assert.Equal(t, 100, cs.Score)
}

func TestGetCompleteITProfileDeletedUser(t *testing.T) {
	snap := testSnapshot()

	profile := GetCompleteITProfile(snap, "john.deere@example.com")
	require.NotNil(t, profile)

	cs := profile.ComplianceStatus
	assert.Contains(t, cs.Issues, "Deleted user with active services")
	assert.Contains(t, cs.Issues, "Deleted user with assigned devices")
	// Only the MDM points survive for a deleted employee with open issues.
	assert.Equal(t, 30, cs.Score)
}

func TestGetCompleteITProfileResolvesFuzzyIdentifier(t *testing.T) {
	snap := testSnapshot()

	profile := GetCompleteITProfile(snap, "Jane Doe")
	require.NotNil(t, profile)
	assert.Equal(t, "U002", profile.User.UserID)

	assert.Nil(t, GetCompleteITProfile(snap, "nobody at all"))
}

func TestGetCompleteITProfileITStaffWithoutDevices(t *testing.T) {
	snap := &dataset.Snapshot{
		ServiceNames: []string{"Slack"},
		Employees: []dataset.Employee{
			{
				FirstName: "Ada", LastName: "Nolan", UserID: "U7",
				Status: dataset.EmployeeActive, Email: "ada@example.com",
				Role:     "IT Support",
				Services: map[string]string{"Slack": "Activated"},
			},
		},
	}

	profile := GetCompleteITProfile(snap, "ada@example.com")
	require.NotNil(t, profile)
	assert.Contains(t, profile.ComplianceStatus.Issues, "IT staff without assigned devices")
	// 30 MDM (vacuous) + 30 services, no device or clean-list points.
	assert.Equal(t, 60, profile.ComplianceStatus.Score)
}
