package reconcile

import (
	"strings"
	"time"

	"provision-manager/core/dataset"
	"provision-manager/feature/devices"
)

// DeletedUserDevice is an in-use device held by a deleted employee.
type DeletedUserDevice struct {
	Device       dataset.Device `json:"device"`
	UserEmail    string         `json:"userEmail"`
	UserID       string         `json:"userId"`
	UserName     string         `json:"userName"`
	UserStatus   string         `json:"userStatus"`
	AssignedDate string         `json:"assignedDate"`
	DaysAssigned int            `json:"daysAssigned"`
}

// UnknownUserDevice is an in-use device whose assignee matches no employee.
type UnknownUserDevice struct {
	Device dataset.Device `json:"device"`
	Email  string         `json:"email"`
}

// MissingDeviceEmployee is an active employee lacking required hardware.
type MissingDeviceEmployee struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	UserID         string   `json:"userId"`
	Role           string   `json:"role"`
	MissingDevices []string `json:"missingDevices"`
}

// DeviceAssignmentMismatch is the cross-export device audit.
type DeviceAssignmentMismatch struct {
	DevicesAssignedToDeletedUsers   []DeletedUserDevice     `json:"devicesAssignedToDeletedUsers"`
	DevicesAssignedToUnknownUsers   []UnknownUserDevice     `json:"devicesAssignedToUnknownUsers"`
	EmployeesWithoutRequiredDevices []MissingDeviceEmployee `json:"employeesWithoutRequiredDevices"`
}

const dateLayout = "2006-01-02"

// AuditDeviceAssignmentMismatch joins the inventory against the employee
// roster. In-use devices whose assignee matches no employee are unknown;
// those held by deleted employees report how long they have been assigned,
// counting from now when the assignment date is missing so the figure reads
// zero days. Active employees whose role mentions IT must hold a laptop.
func AuditDeviceAssignmentMismatch(snap *dataset.Snapshot, now time.Time) DeviceAssignmentMismatch {
	result := DeviceAssignmentMismatch{
		DevicesAssignedToDeletedUsers:   []DeletedUserDevice{},
		DevicesAssignedToUnknownUsers:   []UnknownUserDevice{},
		EmployeesWithoutRequiredDevices: []MissingDeviceEmployee{},
	}

	byEmail := make(map[string]*dataset.Employee, len(snap.Employees))
	for i := range snap.Employees {
		byEmail[strings.ToLower(snap.Employees[i].Email)] = &snap.Employees[i]
	}

	for _, d := range snap.Devices {
		if d.AssignedUserEmail == "" || d.DeviceStatus != dataset.DeviceInUse {
			continue
		}

		emp, known := byEmail[d.AssignedUserEmail]
		if !known {
			result.DevicesAssignedToUnknownUsers = append(result.DevicesAssignedToUnknownUsers,
				UnknownUserDevice{Device: d, Email: d.AssignedUserEmail})
			continue
		}
		if emp.Status != dataset.EmployeeDeleted {
			continue
		}

		daysAssigned := 0
		if assigned, err := time.Parse(dateLayout, strings.TrimSpace(d.AssignedDate)); err == nil {
			daysAssigned = int(now.Sub(assigned).Hours() / 24)
		}
		result.DevicesAssignedToDeletedUsers = append(result.DevicesAssignedToDeletedUsers, DeletedUserDevice{
			Device:       d,
			UserEmail:    emp.Email,
			UserID:       emp.UserID,
			UserName:     emp.FullName(),
			UserStatus:   emp.Status,
			AssignedDate: d.AssignedDate,
			DaysAssigned: daysAssigned,
		})
	}

	for _, emp := range snap.Employees {
		if emp.Status != dataset.EmployeeActive || !strings.Contains(emp.Role, "IT") {
			continue
		}

		hasLaptop := false
		for _, d := range devices.GetDevicesByUser(snap, emp.Email) {
			if d.DeviceType == "Laptop" {
				hasLaptop = true
				break
			}
		}
		if !hasLaptop {
			result.EmployeesWithoutRequiredDevices = append(result.EmployeesWithoutRequiredDevices,
				MissingDeviceEmployee{
					Name:           emp.FullName(),
					Email:          emp.Email,
					UserID:         emp.UserID,
					Role:           emp.Role,
					MissingDevices: []string{"Laptop"},
				})
		}
	}
	return result
}
