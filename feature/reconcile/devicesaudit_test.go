package reconcile

import (
	"testing"
	"time"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var auditNow = time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

func TestAuditDeviceAssignmentMismatch(t *testing.T) {
	snap := testSnapshot()

	audit := AuditDeviceAssignmentMismatch(snap, auditNow)

	require.Len(t, audit.DevicesAssignedToUnknownUsers, 1)
	assert.Equal(t, "ghost@example.com", audit.DevicesAssignedToUnknownUsers[0].Email)

	require.Len(t, audit.DevicesAssignedToDeletedUsers, 1)
	deleted := audit.DevicesAssignedToDeletedUsers[0]
	assert.Equal(t, "U003", deleted.UserID)
	// 2023-01-01 through 2023-03-01 is 59 days.
	assert.Equal(t, 59, deleted.DaysAssigned)

	// Jane, the only active IT employee, holds a laptop.
	assert.Empty(t, audit.EmployeesWithoutRequiredDevices)
}

func TestAuditDeviceMismatchMissingAssignedDate(t *testing.T) {
	snap := testSnapshot()
	snap.Devices[2].AssignedDate = ""

	audit := AuditDeviceAssignmentMismatch(snap, auditNow)
	require.Len(t, audit.DevicesAssignedToDeletedUsers, 1)
	assert.Zero(t, audit.DevicesAssignedToDeletedUsers[0].DaysAssigned)
}

func TestAuditDeviceMismatchITStaffWithoutLaptop(t *testing.T) {
	snap := &dataset.Snapshot{
		Employees: []dataset.Employee{
			{
				FirstName: "Ada", LastName: "Nolan", UserID: "U7",
				Status: dataset.EmployeeActive, Email: "ada@example.com",
				Role: "IT Support", Services: map[string]string{},
			},
			{
				FirstName: "Ben", LastName: "Ito", UserID: "U8",
				Status: dataset.EmployeeActive, Email: "ben@example.com",
				Role: "Sales", Services: map[string]string{},
			},
		},
		Devices: []dataset.Device{
			// A monitor does not satisfy the laptop requirement.
			{AssetNumber: "M-1", DeviceStatus: dataset.DeviceInUse, DeviceType: "Monitor",
				AssignedUserEmail: "ada@example.com"},
		},
	}

	audit := AuditDeviceAssignmentMismatch(snap, auditNow)
	require.Len(t, audit.EmployeesWithoutRequiredDevices, 1)
	missing := audit.EmployeesWithoutRequiredDevices[0]
	assert.Equal(t, "ada@example.com", missing.Email)
	assert.Equal(t, []string{"Laptop"}, missing.MissingDevices)
}
