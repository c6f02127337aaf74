package reconcile

import (
	"strings"

	"provision-manager/core/dataset"
	"provision-manager/feature/devices"
	"provision-manager/feature/directory"
)

// ProfileUser identifies the profiled employee.
type ProfileUser struct {
	Name         string `json:"name"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	Role         string `json:"role"`
	WorkLocation string `json:"workLocation"`
}

// SoftwareAccess summarizes the employee's service standing.
type SoftwareAccess struct {
	Total       int                      `json:"total"`
	Activated   int                      `json:"activated"`
	Invited     int                      `json:"invited"`
	Deactivated int                      `json:"deactivated"`
	Deleted     int                      `json:"deleted"`
	Services    []directory.ServiceEntry `json:"services"`
}

// HardwareAssets summarizes the employee's in-use devices.
type HardwareAssets struct {
	Total    int              `json:"total"`
	Laptops  int              `json:"laptops"`
	Monitors int              `json:"monitors"`
	Others   int              `json:"others"`
	Devices  []dataset.Device `json:"devices"`
}

// ComplianceStatus scores the profile and lists its issues.
type ComplianceStatus struct {
	AllDevicesMDMEnrolled bool     `json:"allDevicesMDMEnrolled"`
	HasActiveServices     bool     `json:"hasActiveServices"`
	HasAssignedDevices    bool     `json:"hasAssignedDevices"`
	Score                 int      `json:"score"`
	Issues                []string `json:"issues"`
}

// CompleteITProfile joins one employee's software and hardware standing.
type CompleteITProfile struct {
	User             ProfileUser      `json:"user"`
	SoftwareAccess   SoftwareAccess   `json:"softwareAccess"`
	HardwareAssets   HardwareAssets   `json:"hardwareAssets"`
	ComplianceStatus ComplianceStatus `json:"complianceStatus"`
}

// GetCompleteITProfile resolves the identifier and joins the employee's
// provisioning record with their in-use devices. The compliance score awards
// 30 points for full laptop MDM enrollment, 30 for an active employee with
// active services, 20 for an active employee with assigned devices, and 20
// for a clean issue list. Returns nil when the identifier resolves to nobody.
func GetCompleteITProfile(snap *dataset.Snapshot, identifier string) *CompleteITProfile {
	emp := directory.Resolve(snap, identifier)
	if emp == nil {
		return nil
	}

	profile := &CompleteITProfile{
		User: ProfileUser{
			Name:         emp.FullName(),
			UserID:       emp.UserID,
			Email:        emp.Email,
			Status:       emp.Status,
			Role:         emp.Role,
			WorkLocation: emp.WorkLocationCode,
		},
	}
	profile.SoftwareAccess.Services = []directory.ServiceEntry{}
	profile.ComplianceStatus.Issues = []string{}

	for _, name := range snap.ServiceNames {
		status := emp.Services[name]
		if status == "" {
			continue
		}
		profile.SoftwareAccess.Services = append(profile.SoftwareAccess.Services,
			directory.ServiceEntry{Name: name, Status: status})
		switch status {
		case dataset.ServiceActivated:
			profile.SoftwareAccess.Activated++
		case dataset.ServiceInvited:
			profile.SoftwareAccess.Invited++
		case dataset.ServiceDeactivated:
			profile.SoftwareAccess.Deactivated++
		case dataset.ServiceDeleted:
			profile.SoftwareAccess.Deleted++
		}
	}
	profile.SoftwareAccess.Total = len(profile.SoftwareAccess.Services)

	held := devices.GetDevicesByUser(snap, emp.Email)
	profile.HardwareAssets.Devices = held
	profile.HardwareAssets.Total = len(held)

	laptopMDMOK := true
	for _, d := range held {
		switch d.DeviceType {
		case "Laptop":
			profile.HardwareAssets.Laptops++
			if d.MDM != dataset.MDMYes {
				laptopMDMOK = false
			}
		case "Monitor", "Monitor 32 Inch":
			profile.HardwareAssets.Monitors++
		default:
			profile.HardwareAssets.Others++
		}
	}

	cs := &profile.ComplianceStatus
	cs.AllDevicesMDMEnrolled = laptopMDMOK
	cs.HasActiveServices = profile.SoftwareAccess.Activated > 0
	cs.HasAssignedDevices = len(held) > 0

	if !cs.AllDevicesMDMEnrolled {
		cs.Issues = append(cs.Issues, "Not all laptops enrolled in MDM")
	}
	if emp.Status == dataset.EmployeeActive && !cs.HasActiveServices {
		cs.Issues = append(cs.Issues, "No active services")
	}
	if emp.Status == dataset.EmployeeActive && !cs.HasAssignedDevices && strings.Contains(emp.Role, "IT") {
		cs.Issues = append(cs.Issues, "IT staff without assigned devices")
	}
	if emp.Status == dataset.EmployeeDeleted && cs.HasActiveServices {
		cs.Issues = append(cs.Issues, "Deleted user with active services")
	}
	if emp.Status == dataset.EmployeeDeleted && cs.HasAssignedDevices {
		cs.Issues = append(cs.Issues, "Deleted user with assigned devices")
	}

	if cs.AllDevicesMDMEnrolled {
		cs.Score += 30
	}
	if cs.HasActiveServices && emp.Status == dataset.EmployeeActive {
		cs.Score += 30
	}
	if cs.HasAssignedDevices && emp.Status == dataset.EmployeeActive {
		cs.Score += 20
	}
	if len(cs.Issues) == 0 {
		cs.Score += 20
	}
	return profile
}
