package devices

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		Devices: []dataset.Device{
			{
				AssetNumber: "A-100", SerialNumber: "SN100", DeviceStatus: dataset.DeviceInUse,
				DeviceType: "Laptop", Manufacturer: "Apple",
				ModelName: "MacBook Pro 13 inch M1", ModelNumber: "A2338", OperatingSystem: "macOS",
				AssignedUserID: "U001", AssignedUserEmail: "aby@example.com",
				MDM: dataset.MDMYes, AppleCare: "Yes",
				StartDate: "2021-03-15", EndDate: "2024-03-15", City: "Tokyo",
			},
			{
				AssetNumber: "A-101", SerialNumber: "SN101", DeviceStatus: dataset.DeviceInUse,
				DeviceType: "Monitor", Manufacturer: "LG",
				ModelName: "UltraFine 27", ModelNumber: "27UN850", OperatingSystem: "",
				AssignedUserID: "U001", AssignedUserEmail: "aby@example.com",
				MDM: dataset.MDMNotApplicable,
				StartDate: "2022-01-10", City: "Tokyo",
			},
			{
				AssetNumber: "A-102", SerialNumber: "SN102", DeviceStatus: dataset.DeviceAvailable,
				DeviceType: "Laptop", Manufacturer: "Dell",
				ModelName: "Latitude 7420", ModelNumber: "L7420", OperatingSystem: "Windows 11",
				MDM: dataset.MDMNo,
				StartDate: "2020-01-15", City: "San Francisco",
			},
			{
				AssetNumber: "A-103", SerialNumber: "SN103", DeviceStatus: dataset.DeviceDecommissioned,
				DeviceType: "Laptop", Manufacturer: "Apple",
				ModelName: "MacBook Air", ModelNumber: "A2179", OperatingSystem: "macOS",
				AssignedUserID: "U003", AssignedUserEmail: "john.deere@example.com",
				MDM: dataset.MDMYes,
				StartDate: "2019-09-01", City: "",
			},
		},
	}
}

func TestSearchDevicesSubstring(t *testing.T) {
	snap := testSnapshot()

	bySerial := SearchDevices(snap, "sn102", "")
	require.Len(t, bySerial, 1)
	assert.Equal(t, "A-102", bySerial[0].AssetNumber)

	byEmail := SearchDevices(snap, "aby@example.com", "")
	assert.Len(t, byEmail, 2)

	byManufacturer := SearchDevices(snap, "apple", "")
	assert.Len(t, byManufacturer, 2)
}

func TestSearchDevicesKeywordFallback(t *testing.T) {
	snap := testSnapshot()

	// The literal string matches no field, but once punctuation is stripped
	// every keyword appears in the model name.
	results := SearchDevices(snap, "MacBook M1 13-inch", "")
	require.Len(t, results, 1)
	assert.Equal(t, "A-100", results[0].AssetNumber)

	// Single-word queries never fall back to keyword matching.
	assert.Empty(t, SearchDevices(snap, "macos", ""))
}

func TestSearchDevicesStatusFilter(t *testing.T) {
	snap := testSnapshot()

	inUse := SearchDevices(snap, "laptop", "")
	assert.Empty(t, inUse) // "laptop" is a type, not a searchable substring field

	macs := SearchDevices(snap, "macbook", dataset.DeviceDecommissioned)
	require.Len(t, macs, 1)
	assert.Equal(t, "A-103", macs[0].AssetNumber)
}

func TestSearchDevicesEmptyQuery(t *testing.T) {
	snap := testSnapshot()

	assert.Empty(t, SearchDevices(snap, "", ""))
	assert.Empty(t, SearchDevices(snap, "   ", ""))
}

func TestGroupByHolder(t *testing.T) {
	snap := testSnapshot()

	holders, unassigned := GroupByHolder(snap.Devices)
	require.Len(t, holders, 1)
	assert.Equal(t, "aby@example.com", holders[0].UserEmail)
	assert.Len(t, holders[0].Devices, 2)
	// Available and decommissioned devices fall into the unassigned pool.
	assert.Len(t, unassigned, 2)
}
