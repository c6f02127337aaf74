package devices

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"provision-manager/core/dataset"
)

// costPrinter renders dollar amounts with thousands separators ($4,000).
var costPrinter = message.NewPrinter(language.English)

const dateLayout = "2006-01-02"

// parseDate accepts the export's ISO dates. Returns the zero time for blank
// or malformed values.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetDevicesByUser returns the in-use devices assigned to the given email.
func GetDevicesByUser(snap *dataset.Snapshot, email string) []dataset.Device {
	normalized := strings.ToLower(strings.TrimSpace(email))

	out := []dataset.Device{}
	for _, d := range snap.Devices {
		if d.AssignedUserEmail == normalized && d.DeviceStatus == dataset.DeviceInUse {
			out = append(out, d)
		}
	}
	return out
}

// UserDeviceSummary rolls up one user's hardware.
type UserDeviceSummary struct {
	Total             int  `json:"total"`
	Laptops           int  `json:"laptops"`
	Monitors          int  `json:"monitors"`
	Others            int  `json:"others"`
	AllMDMEnrolled    bool `json:"allMDMEnrolled"`
	HasActiveWarranty bool `json:"hasActiveWarranty"`
}

// UserDevices is the per-user device rollup.
type UserDevices struct {
	UserEmail string            `json:"userEmail"`
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	Devices   []dataset.Device  `json:"devices"`
	Summary   UserDeviceSummary `json:"summary"`
}

// GetUserDevices builds the rollup for one user's in-use devices. Returns nil
// when the user holds nothing. AllMDMEnrolled considers laptops only, and is
// vacuously true for a user with no laptops. A warranty is active when
// AppleCare is "Yes" or the coverage end date is in the future relative to
// now. UserName is left blank for callers that join against the directory.
func GetUserDevices(snap *dataset.Snapshot, email string, now time.Time) *UserDevices {
	held := GetDevicesByUser(snap, email)
	if len(held) == 0 {
		return nil
	}

	ud := &UserDevices{UserEmail: email, UserID: held[0].AssignedUserID, Devices: held}
	ud.Summary.Total = len(held)
	ud.Summary.AllMDMEnrolled = true

	for _, d := range held {
		switch d.DeviceType {
		case "Laptop":
			ud.Summary.Laptops++
			if d.MDM != dataset.MDMYes {
				ud.Summary.AllMDMEnrolled = false
			}
		case "Monitor", "Monitor 32 Inch":
			ud.Summary.Monitors++
		default:
			ud.Summary.Others++
		}

		if d.AppleCare == "Yes" {
			ud.Summary.HasActiveWarranty = true
		} else if end := parseDate(d.EndDate); !end.IsZero() && end.After(now) {
			ud.Summary.HasActiveWarranty = true
		}
	}
	return ud
}

// GetAvailableDevices lists devices in the Available status, optionally
// narrowed by exact device type and manufacturer.
func GetAvailableDevices(snap *dataset.Snapshot, deviceType, manufacturer string) []dataset.Device {
	out := []dataset.Device{}
	for _, d := range snap.Devices {
		if d.DeviceStatus != dataset.DeviceAvailable {
			continue
		}
		if deviceType != "" && d.DeviceType != deviceType {
			continue
		}
		if manufacturer != "" && d.Manufacturer != manufacturer {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DeviceSummary is the fleet-wide inventory rollup. MDM counts cover laptops
// only.
type DeviceSummary struct {
	Total          int            `json:"total"`
	InUse          int            `json:"inUse"`
	Available      int            `json:"available"`
	Decommissioned int            `json:"decommissioned"`
	Unknown        int            `json:"unknown"`
	ByType         map[string]int `json:"byType"`
	ByManufacturer map[string]int `json:"byManufacturer"`
	MDMEnrolled    int            `json:"mdmEnrolled"`
	MDMUnenrolled  int            `json:"mdmUnenrolled"`
}

// GetDeviceSummary counts the whole inventory by status, type, and
// manufacturer.
func GetDeviceSummary(snap *dataset.Snapshot) DeviceSummary {
	summary := DeviceSummary{
		Total:          len(snap.Devices),
		ByType:         map[string]int{},
		ByManufacturer: map[string]int{},
	}

	for _, d := range snap.Devices {
		switch d.DeviceStatus {
		case dataset.DeviceInUse:
			summary.InUse++
		case dataset.DeviceAvailable:
			summary.Available++
		case dataset.DeviceDecommissioned:
			summary.Decommissioned++
		case dataset.DeviceUnknown:
			summary.Unknown++
		}

		if d.DeviceType != "" {
			summary.ByType[d.DeviceType]++
		}
		if d.Manufacturer != "" {
			summary.ByManufacturer[d.Manufacturer]++
		}

		if d.DeviceType == "Laptop" {
			switch d.MDM {
			case dataset.MDMYes:
				summary.MDMEnrolled++
			case dataset.MDMNo:
				summary.MDMUnenrolled++
			}
		}
	}
	return summary
}

// Issue severities, worst first.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// AssignmentIssue is one inventory hygiene finding.
type AssignmentIssue struct {
	Device   dataset.Device `json:"device"`
	Issue    string         `json:"issue"`
	Severity string         `json:"severity"`
}

// AuditDeviceAssignments checks every device for contradictory bookkeeping:
// Available or Decommissioned devices that still carry an assigned user,
// in-use devices with nobody assigned, and in-use laptops outside MDM.
// High severity findings sort first; ties keep inventory order.
func AuditDeviceAssignments(snap *dataset.Snapshot) []AssignmentIssue {
	issues := []AssignmentIssue{}

	for _, d := range snap.Devices {
		if d.DeviceStatus == dataset.DeviceAvailable && d.AssignedUserEmail != "" {
			issues = append(issues, AssignmentIssue{
				Device:   d,
				Issue:    "Device marked as Available but has assigned user",
				Severity: SeverityMedium,
			})
		}
		if d.DeviceStatus == dataset.DeviceInUse && d.AssignedUserEmail == "" {
			issues = append(issues, AssignmentIssue{
				Device:   d,
				Issue:    "Device marked as In-use but has no assigned user",
				Severity: SeverityMedium,
			})
		}
		if d.DeviceType == "Laptop" && d.DeviceStatus == dataset.DeviceInUse && d.MDM == dataset.MDMNo {
			issues = append(issues, AssignmentIssue{
				Device:   d,
				Issue:    "Laptop not enrolled in MDM (Security Risk)",
				Severity: SeverityHigh,
			})
		}
		if d.DeviceStatus == dataset.DeviceDecommissioned && d.AssignedUserEmail != "" {
			issues = append(issues, AssignmentIssue{
				Device:   d,
				Issue:    "Decommissioned device still showing as assigned",
				Severity: SeverityHigh,
			})
		}
	}

	rank := map[string]int{SeverityHigh: 0, SeverityMedium: 1, SeverityLow: 2}
	sort.SliceStable(issues, func(i, j int) bool {
		return rank[issues[i].Severity] < rank[issues[j].Severity]
	})
	return issues
}

// WarrantyAlert flags a device whose coverage runs out soon.
type WarrantyAlert struct {
	Device          dataset.Device `json:"device"`
	WarrantyEndDate string         `json:"warrantyEndDate"`
	DaysUntilExpiry int            `json:"daysUntilExpiry"`
	AssignedUser    string         `json:"assignedUser,omitempty"`
}

// GetWarrantyExpiringDevices lists devices whose coverage end date falls
// within daysThreshold days of now, soonest first. Already-expired coverage
// and decommissioned devices are excluded.
func GetWarrantyExpiringDevices(snap *dataset.Snapshot, daysThreshold int, now time.Time) []WarrantyAlert {
	alerts := []WarrantyAlert{}
	threshold := now.Add(time.Duration(daysThreshold) * 24 * time.Hour)

	for _, d := range snap.Devices {
		if d.EndDate == "" || d.DeviceStatus == dataset.DeviceDecommissioned {
			continue
		}
		end := parseDate(d.EndDate)
		if end.IsZero() || end.After(threshold) || end.Before(now) {
			continue
		}
		alerts = append(alerts, WarrantyAlert{
			Device:          d,
			WarrantyEndDate: d.EndDate,
			DaysUntilExpiry: int(end.Sub(now).Hours() / 24),
			AssignedUser:    d.AssignedUserEmail,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilExpiry < alerts[j].DaysUntilExpiry
	})
	return alerts
}

// GetDevicesByLocation groups devices by city, with blank cities under
// "Unknown". city narrows the result to one location.
func GetDevicesByLocation(snap *dataset.Snapshot, city string) map[string][]dataset.Device {
	byLocation := map[string][]dataset.Device{}
	for _, d := range snap.Devices {
		loc := d.City
		if loc == "" {
			loc = "Unknown"
		}
		if city != "" && loc != city {
			continue
		}
		byLocation[loc] = append(byLocation[loc], d)
	}
	return byLocation
}

// TypeLifecycle aggregates one device type's fleet.
type TypeLifecycle struct {
	Total         int            `json:"total"`
	Manufacturers map[string]int `json:"manufacturers"`
	AverageAge    float64        `json:"averageAge"`
	DueForRefresh int            `json:"dueForRefresh"`
}

// RefreshRecommendation is a procurement suggestion for aging hardware.
type RefreshRecommendation struct {
	DeviceType    string `json:"deviceType"`
	Manufacturer  string `json:"manufacturer"`
	Count         int    `json:"count"`
	Reason        string `json:"reason"`
	EstimatedCost string `json:"estimatedCost"`
}

// LifecycleStats summarizes fleet age, procurement history, and refresh needs.
type LifecycleStats struct {
	TotalDevices           int                      `json:"totalDevices"`
	ByType                 map[string]TypeLifecycle `json:"byType"`
	Procurement            map[string]int           `json:"procurement"`
	RefreshRecommendations []RefreshRecommendation  `json:"refreshRecommendations"`
}

// laptops older than this many years are due for refresh
const laptopRefreshYears = 3.0

const laptopReplacementCost = 2000

// GetLifecycleStats computes per-type age statistics from procurement start
// dates, counts procurement by year, and recommends replacing laptops over
// three years old that are not yet decommissioned.
func GetLifecycleStats(snap *dataset.Snapshot, now time.Time) LifecycleStats {
	stats := LifecycleStats{
		TotalDevices:           len(snap.Devices),
		ByType:                 map[string]TypeLifecycle{},
		Procurement:            map[string]int{},
		RefreshRecommendations: []RefreshRecommendation{},
	}

	ages := map[string][]float64{}

	for _, d := range snap.Devices {
		typ := d.DeviceType
		if typ == "" {
			typ = "Unknown"
		}

		tl := stats.ByType[typ]
		if tl.Manufacturers == nil {
			tl.Manufacturers = map[string]int{}
		}
		tl.Total++
		if d.Manufacturer != "" {
			tl.Manufacturers[d.Manufacturer]++
		}

		if start := parseDate(d.StartDate); !start.IsZero() {
			age := now.Sub(start).Hours() / (365 * 24)
			ages[typ] = append(ages[typ], age)
			if typ == "Laptop" && age > laptopRefreshYears && d.DeviceStatus != dataset.DeviceDecommissioned {
				tl.DueForRefresh++
			}

			stats.Procurement[start.Format("2006")]++
		}
		stats.ByType[typ] = tl
	}

	for typ, tl := range stats.ByType {
		if vals := ages[typ]; len(vals) > 0 {
			sum := 0.0
			for _, v := range vals {
				sum += v
			}
			tl.AverageAge = sum / float64(len(vals))
			stats.ByType[typ] = tl
		}
	}

	if laptops := stats.ByType["Laptop"]; laptops.DueForRefresh > 0 {
		stats.RefreshRecommendations = append(stats.RefreshRecommendations, RefreshRecommendation{
			DeviceType:    "Laptop",
			Manufacturer:  "Various",
			Count:         laptops.DueForRefresh,
			Reason:        "Over 3 years old",
			EstimatedCost: costPrinter.Sprintf("$%d", laptops.DueForRefresh*laptopReplacementCost),
		})
	}
	return stats
}

// GetDeviceTypes lists the distinct device types, sorted.
func GetDeviceTypes(snap *dataset.Snapshot) []string {
	return distinct(snap, func(d *dataset.Device) string { return d.DeviceType })
}

// GetManufacturers lists the distinct manufacturers, sorted.
func GetManufacturers(snap *dataset.Snapshot) []string {
	return distinct(snap, func(d *dataset.Device) string { return d.Manufacturer })
}

func distinct(snap *dataset.Snapshot, key func(*dataset.Device) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range snap.Devices {
		k := key(&snap.Devices[i])
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
