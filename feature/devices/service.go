package devices

import (
	"time"

	"provision-manager/core/dataset"

	"go.uber.org/zap"
)

// Service answers inventory queries against the current snapshot.
type Service struct {
	source *dataset.Source
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new devices service.
func NewService(source *dataset.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger, now: time.Now}
}

// Search returns devices matching the query, optionally filtered by status.
func (s *Service) Search(query, statusFilter string) ([]dataset.Device, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return SearchDevices(snap, query, statusFilter), nil
}

// DevicesByUser lists the in-use devices assigned to an email.
func (s *Service) DevicesByUser(email string) ([]dataset.Device, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetDevicesByUser(snap, email), nil
}

// UserDevices builds the per-user rollup, nil when the user holds nothing.
func (s *Service) UserDevices(email string) (*UserDevices, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetUserDevices(snap, email, s.now()), nil
}

// AvailableDevices lists stock, optionally narrowed by type and manufacturer.
func (s *Service) AvailableDevices(deviceType, manufacturer string) ([]dataset.Device, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetAvailableDevices(snap, deviceType, manufacturer), nil
}

// Summary counts the whole fleet.
func (s *Service) Summary() (DeviceSummary, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return DeviceSummary{}, err
	}
	return GetDeviceSummary(snap), nil
}

// AssignmentAudit lists inventory hygiene findings, worst first.
func (s *Service) AssignmentAudit() ([]AssignmentIssue, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return AuditDeviceAssignments(snap), nil
}

// WarrantyExpiring lists devices whose coverage ends within the threshold.
func (s *Service) WarrantyExpiring(daysThreshold int) ([]WarrantyAlert, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetWarrantyExpiringDevices(snap, daysThreshold, s.now()), nil
}

// ByLocation groups devices by city.
func (s *Service) ByLocation(city string) (map[string][]dataset.Device, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetDevicesByLocation(snap, city), nil
}

// Lifecycle computes fleet age and refresh statistics.
func (s *Service) Lifecycle() (LifecycleStats, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return LifecycleStats{}, err
	}
	return GetLifecycleStats(snap, s.now()), nil
}

// DeviceTypes lists the distinct device types.
func (s *Service) DeviceTypes() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetDeviceTypes(snap), nil
}

// Manufacturers lists the distinct manufacturers.
func (s *Service) Manufacturers() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetManufacturers(snap), nil
}
