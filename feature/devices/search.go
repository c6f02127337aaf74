package devices

import (
	"strings"

	"provision-manager/core/dataset"
)

// SearchDevices matches the query as a substring against asset number, serial
// number, model name, model number, manufacturer, and the assigned user's id
// and email. When the literal query matches nothing and contains several
// words, it falls back to keyword matching: punctuation is stripped and every
// keyword must appear somewhere in the model name, model number, manufacturer,
// device type, or operating system. That lets "MacBook M1 13-inch" find a
// device whose model name spells the size differently. statusFilter, when
// non-empty, keeps only devices in that status.
func SearchDevices(snap *dataset.Snapshot, query, statusFilter string) []dataset.Device {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matched []dataset.Device
	for _, d := range snap.Devices {
		if deviceMatches(&d, q) {
			matched = append(matched, d)
		}
	}

	if len(matched) == 0 {
		if keywords := queryKeywords(q); len(keywords) > 1 {
			for _, d := range snap.Devices {
				if deviceMatchesKeywords(&d, keywords) {
					matched = append(matched, d)
				}
			}
		}
	}

	if statusFilter == "" {
		return matched
	}
	out := matched[:0]
	for _, d := range matched {
		if d.DeviceStatus == statusFilter {
			out = append(out, d)
		}
	}
	return out
}

func deviceMatches(d *dataset.Device, q string) bool {
	return strings.Contains(strings.ToLower(d.AssetNumber), q) ||
		strings.Contains(strings.ToLower(d.SerialNumber), q) ||
		strings.Contains(strings.ToLower(d.ModelName), q) ||
		strings.Contains(strings.ToLower(d.ModelNumber), q) ||
		strings.Contains(strings.ToLower(d.Manufacturer), q) ||
		strings.Contains(d.AssignedUserEmail, q) ||
		strings.Contains(strings.ToLower(d.AssignedUserID), q)
}

// queryKeywords lower-cases the query, replaces anything outside [a-z0-9]
// with spaces, and splits into words.
func queryKeywords(q string) []string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, q)
	return strings.Fields(mapped)
}

func deviceMatchesKeywords(d *dataset.Device, keywords []string) bool {
	searchable := strings.ToLower(strings.Join([]string{
		d.ModelName,
		d.ModelNumber,
		d.Manufacturer,
		d.DeviceType,
		d.OperatingSystem,
	}, " "))

	for _, kw := range keywords {
		if !strings.Contains(searchable, kw) {
			return false
		}
	}
	return true
}

// DeviceHolder groups matched in-use devices under their assigned user.
type DeviceHolder struct {
	UserEmail string           `json:"userEmail"`
	Devices   []dataset.Device `json:"devices"`
}

// GroupByHolder splits matched devices into per-user groups and a pool of
// unassigned ones. Only in-use devices with an assigned email count as held.
func GroupByHolder(devices []dataset.Device) (holders []DeviceHolder, unassigned []dataset.Device) {
	index := make(map[string]int)
	for _, d := range devices {
		if d.AssignedUserEmail == "" || d.DeviceStatus != dataset.DeviceInUse {
			unassigned = append(unassigned, d)
			continue
		}
		i, ok := index[d.AssignedUserEmail]
		if !ok {
			i = len(holders)
			index[d.AssignedUserEmail] = i
			holders = append(holders, DeviceHolder{UserEmail: d.AssignedUserEmail})
		}
		holders[i].Devices = append(holders[i].Devices, d)
	}
	return holders, unassigned
}
