package reconcile

import (
	"fmt"
	"math"
	"strings"

	"provision-manager/core/dataset"
	"provision-manager/feature/devices"
)

// requiredOnboardingServices must be Activated before onboarding counts as
// complete on the software side.
var requiredOnboardingServices = []string{
	"Slack",
	"Google Workspace - josys.com",
	"Microsoft 365 (Azure AD)",
}

// requiredOnboardingDevices by device type.
var requiredOnboardingDevices = []string{"Laptop"}

const maxRecommendedDevices = 5

// ChecklistUser identifies the employee a checklist belongs to.
type ChecklistUser struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Role   string `json:"role,omitempty"`
}

// ChecklistSection tracks required/assigned/missing for one item class.
type ChecklistSection struct {
	Required []string `json:"required"`
	Assigned []string `json:"assigned"`
	Missing  []string `json:"missing"`
	Status   string   `json:"status"`
}

// OnboardingChecklist tracks a new hire's provisioning progress.
type OnboardingChecklist struct {
	User      ChecklistUser `json:"user"`
	Checklist struct {
		Services             ChecklistSection `json:"services"`
		Devices              ChecklistSection `json:"devices"`
		CompletionPercentage int              `json:"completionPercentage"`
	} `json:"checklist"`
	Recommendations struct {
		AvailableDevices []dataset.Device `json:"availableDevices"`
	} `json:"recommendations"`
}

func sectionStatus(missing []string) string {
	if len(missing) == 0 {
		return "complete"
	}
	return "incomplete"
}

// GetOnboardingChecklist checks one employee, found by exact email, against
// the required services and device types. Completion is the share of
// required items satisfied, and up to five available laptops are suggested
// for anything missing on the hardware side. Returns nil for an unknown
// email.
func GetOnboardingChecklist(snap *dataset.Snapshot, userEmail string) *OnboardingChecklist {
	emp := findByEmail(snap, userEmail)
	if emp == nil {
		return nil
	}

	checklist := &OnboardingChecklist{
		User: ChecklistUser{
			Name:   emp.FullName(),
			UserID: emp.UserID,
			Email:  emp.Email,
			Status: emp.Status,
			Role:   emp.Role,
		},
	}

	assignedServices := []string{}
	missingServices := []string{}
	for _, required := range requiredOnboardingServices {
		if emp.Services[required] == dataset.ServiceActivated {
			assignedServices = append(assignedServices, required)
		} else {
			missingServices = append(missingServices, required)
		}
	}
	checklist.Checklist.Services = ChecklistSection{
		Required: requiredOnboardingServices,
		Assigned: assignedServices,
		Missing:  missingServices,
		Status:   sectionStatus(missingServices),
	}

	held := devices.GetDevicesByUser(snap, emp.Email)
	heldTypes := []string{}
	seen := map[string]struct{}{}
	for _, d := range held {
		if _, ok := seen[d.DeviceType]; ok {
			continue
		}
		seen[d.DeviceType] = struct{}{}
		heldTypes = append(heldTypes, d.DeviceType)
	}
	missingTypes := []string{}
	for _, required := range requiredOnboardingDevices {
		if _, ok := seen[required]; !ok {
			missingTypes = append(missingTypes, required)
		}
	}
	checklist.Checklist.Devices = ChecklistSection{
		Required: requiredOnboardingDevices,
		Assigned: heldTypes,
		Missing:  missingTypes,
		Status:   sectionStatus(missingTypes),
	}

	totalItems := len(requiredOnboardingServices) + len(requiredOnboardingDevices)
	completedItems := len(assignedServices) + len(requiredOnboardingDevices) - len(missingTypes)
	checklist.Checklist.CompletionPercentage = int(math.Round(float64(completedItems) / float64(totalItems) * 100))

	available := devices.GetAvailableDevices(snap, "Laptop", "")
	if len(available) > maxRecommendedDevices {
		available = available[:maxRecommendedDevices]
	}
	checklist.Recommendations.AvailableDevices = available

	return checklist
}

// OffboardingChecklist tracks a leaver's deprovisioning progress.
type OffboardingChecklist struct {
	User      ChecklistUser `json:"user"`
	Checklist struct {
		ServicesDeactivated  int `json:"servicesDeactivated"`
		ServicesStillActive  int `json:"servicesStillActive"`
		DevicesReturned      int `json:"devicesReturned"`
		DevicesStillAssigned int `json:"devicesStillAssigned"`
		CompletionPercentage int `json:"completionPercentage"`
	} `json:"checklist"`
	ActionItems     []string         `json:"actionItems"`
	ActiveServices  []string         `json:"activeServices"`
	AssignedDevices []dataset.Device `json:"assignedDevices"`
}

// GetOffboardingChecklist measures how much of one employee's access and
// hardware has been pulled back. Devices ever pointed at the email count as
// returned once they are no longer in use. Completion covers every tracked
// service plus those devices, and reads 100 when there is nothing to do.
// Returns nil for an unknown email.
func GetOffboardingChecklist(snap *dataset.Snapshot, userEmail string) *OffboardingChecklist {
	emp := findByEmail(snap, userEmail)
	if emp == nil {
		return nil
	}

	checklist := &OffboardingChecklist{
		User: ChecklistUser{
			Name:   emp.FullName(),
			UserID: emp.UserID,
			Email:  emp.Email,
			Status: emp.Status,
		},
		ActionItems:    []string{},
		ActiveServices: []string{},
	}

	deactivated := 0
	for _, name := range snap.ServiceNames {
		switch emp.Services[name] {
		case dataset.ServiceActivated, dataset.ServiceInvited:
			checklist.ActiveServices = append(checklist.ActiveServices, name)
		case dataset.ServiceDeactivated, dataset.ServiceDeleted:
			deactivated++
		}
	}

	stillAssigned := devices.GetDevicesByUser(snap, emp.Email)
	checklist.AssignedDevices = stillAssigned

	everAssigned := 0
	lowerEmail := strings.ToLower(userEmail)
	for _, d := range snap.Devices {
		if d.AssignedUserEmail == lowerEmail {
			everAssigned++
		}
	}

	checklist.Checklist.ServicesDeactivated = deactivated
	checklist.Checklist.ServicesStillActive = len(checklist.ActiveServices)
	checklist.Checklist.DevicesReturned = everAssigned - len(stillAssigned)
	checklist.Checklist.DevicesStillAssigned = len(stillAssigned)

	totalItems := len(emp.Services) + everAssigned
	completedItems := deactivated + everAssigned - len(stillAssigned)
	if totalItems > 0 {
		checklist.Checklist.CompletionPercentage = int(math.Round(float64(completedItems) / float64(totalItems) * 100))
	} else {
		checklist.Checklist.CompletionPercentage = 100
	}

	for _, service := range checklist.ActiveServices {
		checklist.ActionItems = append(checklist.ActionItems, "Deactivate access to "+service)
	}
	for _, d := range stillAssigned {
		checklist.ActionItems = append(checklist.ActionItems,
			fmt.Sprintf("Collect %s (%s)", d.DeviceType, d.AssetNumber))
	}
	return checklist
}

func findByEmail(snap *dataset.Snapshot, email string) *dataset.Employee {
	lower := strings.ToLower(strings.TrimSpace(email))
	if lower == "" {
		return nil
	}
	for i := range snap.Employees {
		if strings.ToLower(snap.Employees[i].Email) == lower {
			return &snap.Employees[i]
		}
	}
	return nil
}
