package devices

import (
	"fmt"
	"testing"
	"time"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

func TestGetDevicesByUser(t *testing.T) {
	snap := testSnapshot()

	// Only in-use devices count; the decommissioned MacBook Air stays out.
	held := GetDevicesByUser(snap, "ABY@Example.com")
	assert.Len(t, held, 2)

	assert.Empty(t, GetDevicesByUser(snap, "john.deere@example.com"))
}

func TestGetUserDevices(t *testing.T) {
	snap := testSnapshot()

	ud := GetUserDevices(snap, "aby@example.com", testNow)
	require.NotNil(t, ud)
	assert.Equal(t, "U001", ud.UserID)
	assert.Equal(t, 2, ud.Summary.Total)
	assert.Equal(t, 1, ud.Summary.Laptops)
	assert.Equal(t, 1, ud.Summary.Monitors)
	assert.Equal(t, 0, ud.Summary.Others)
	assert.True(t, ud.Summary.AllMDMEnrolled)
	// AppleCare "Yes" counts even though the coverage end date has passed
	// relative to a later clock.
	assert.True(t, ud.Summary.HasActiveWarranty)

	assert.Nil(t, GetUserDevices(snap, "nobody@example.com", testNow))
}

func TestGetUserDevicesUnmanagedLaptop(t *testing.T) {
	snap := &dataset.Snapshot{
		Devices: []dataset.Device{
			{
				DeviceStatus: dataset.DeviceInUse, DeviceType: "Laptop",
				AssignedUserEmail: "a@example.com", AssignedUserID: "U1",
				MDM: dataset.MDMNo,
			},
		},
	}

	ud := GetUserDevices(snap, "a@example.com", testNow)
	require.NotNil(t, ud)
	assert.False(t, ud.Summary.AllMDMEnrolled)
	assert.False(t, ud.Summary.HasActiveWarranty)
}

func TestGetAvailableDevices(t *testing.T) {
	snap := testSnapshot()

	all := GetAvailableDevices(snap, "", "")
	require.Len(t, all, 1)
	assert.Equal(t, "A-102", all[0].AssetNumber)

	assert.Empty(t, GetAvailableDevices(snap, "Laptop", "Apple"))
	assert.Len(t, GetAvailableDevices(snap, "Laptop", "Dell"), 1)
}

func TestGetDeviceSummary(t *testing.T) {
	snap := testSnapshot()

	summary := GetDeviceSummary(snap)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.InUse)
	assert.Equal(t, 1, summary.Available)
	assert.Equal(t, 1, summary.Decommissioned)
	assert.Equal(t, 3, summary.ByType["Laptop"])
	assert.Equal(t, 2, summary.ByManufacturer["Apple"])
	// MDM split counts laptops only.
	assert.Equal(t, 2, summary.MDMEnrolled)
	assert.Equal(t, 1, summary.MDMUnenrolled)
}

func TestAuditDeviceAssignmentsSeverityOrder(t *testing.T) {
	snap := &dataset.Snapshot{
		Devices: []dataset.Device{
			// Medium: available with an assignee.
			{AssetNumber: "D1", DeviceStatus: dataset.DeviceAvailable, AssignedUserEmail: "a@example.com"},
			// High: in-use laptop outside MDM.
			{AssetNumber: "D2", DeviceStatus: dataset.DeviceInUse, DeviceType: "Laptop",
				AssignedUserEmail: "b@example.com", MDM: dataset.MDMNo},
			// Medium: in-use with nobody assigned.
			{AssetNumber: "D3", DeviceStatus: dataset.DeviceInUse, DeviceType: "Monitor"},
			// High: decommissioned but still assigned.
			{AssetNumber: "D4", DeviceStatus: dataset.DeviceDecommissioned, AssignedUserEmail: "c@example.com"},
		},
	}

	issues := AuditDeviceAssignments(snap)
	require.Len(t, issues, 4)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
	assert.Equal(t, SeverityHigh, issues[1].Severity)
	assert.Equal(t, "D2", issues[0].Device.AssetNumber)
	assert.Equal(t, "D4", issues[1].Device.AssetNumber)
	assert.Equal(t, SeverityMedium, issues[2].Severity)
	assert.Equal(t, SeverityMedium, issues[3].Severity)
}

func TestGetWarrantyExpiringDevices(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := &dataset.Snapshot{
		Devices: []dataset.Device{
			{AssetNumber: "W1", DeviceStatus: dataset.DeviceInUse, EndDate: "2024-02-15",
				AssignedUserEmail: "a@example.com"},
			{AssetNumber: "W2", DeviceStatus: dataset.DeviceInUse, EndDate: "2024-01-10"},
			// Outside the window.
			{AssetNumber: "W3", DeviceStatus: dataset.DeviceInUse, EndDate: "2025-01-01"},
			// Already expired.
			{AssetNumber: "W4", DeviceStatus: dataset.DeviceInUse, EndDate: "2023-12-01"},
			// Decommissioned devices never alert.
			{AssetNumber: "W5", DeviceStatus: dataset.DeviceDecommissioned, EndDate: "2024-01-20"},
		},
	}

	alerts := GetWarrantyExpiringDevices(snap, 90, now)
	require.Len(t, alerts, 2)
	assert.Equal(t, "W2", alerts[0].Device.AssetNumber)
	assert.Equal(t, 9, alerts[0].DaysUntilExpiry)
	assert.Equal(t, "W1", alerts[1].Device.AssetNumber)
	assert.Equal(t, 45, alerts[1].DaysUntilExpiry)
}

func TestGetDevicesByLocation(t *testing.T) {
	snap := testSnapshot()

	byLoc := GetDevicesByLocation(snap, "")
	assert.Len(t, byLoc["Tokyo"], 2)
	assert.Len(t, byLoc["San Francisco"], 1)
	assert.Len(t, byLoc["Unknown"], 1)

	only := GetDevicesByLocation(snap, "Tokyo")
	assert.Len(t, only, 1)
	assert.Len(t, only["Tokyo"], 2)
}

func TestGetLifecycleStats(t *testing.T) {
	snap := testSnapshot()

	stats := GetLifecycleStats(snap, testNow)
	assert.Equal(t, 4, stats.TotalDevices)

	laptops := stats.ByType["Laptop"]
	assert.Equal(t, 3, laptops.Total)
	assert.Equal(t, 2, laptops.Manufacturers["Apple"])
	// Only the Dell Latitude (2020) is both over three years old and not
	// decommissioned; the MacBook Air (2019) is retired already.
	assert.Equal(t, 1, laptops.DueForRefresh)
	assert.Greater(t, laptops.AverageAge, 0.0)

	assert.Equal(t, 1, stats.Procurement["2021"])
	assert.Equal(t, 1, stats.Procurement["2020"])

	require.Len(t, stats.RefreshRecommendations, 1)
	rec := stats.RefreshRecommendations[0]
	assert.Equal(t, "Laptop", rec.DeviceType)
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, "$2,000", rec.EstimatedCost)
}

func TestLifecycleRefreshCostGroupsThousands(t *testing.T) {
	snap := testSnapshot()
	for i := 0; i < 5; i++ {
		snap.Devices = append(snap.Devices, dataset.Device{
			AssetNumber:  fmt.Sprintf("OLD-%d", i),
			DeviceStatus: dataset.DeviceInUse,
			DeviceType:   "Laptop",
			StartDate:    "2018-04-01",
		})
	}

	stats := GetLifecycleStats(snap, testNow)
	require.Len(t, stats.RefreshRecommendations, 1)
	assert.Equal(t, 6, stats.RefreshRecommendations[0].Count)
	assert.Equal(t, "$12,000", stats.RefreshRecommendations[0].EstimatedCost)
}

func TestDeviceTypeAndManufacturerListings(t *testing.T) {
	snap := testSnapshot()

	assert.Equal(t, []string{"Laptop", "Monitor"}, GetDeviceTypes(snap))
	assert.Equal(t, []string{"Apple", "Dell", "LG"}, GetManufacturers(snap))
}
