package directory

import (
	"provision-manager/core/dataset"

	"go.uber.org/zap"
)

// Service answers directory queries against the current snapshot.
type Service struct {
	source *dataset.Source
	logger *zap.Logger
}

// NewService creates a new directory service.
func NewService(source *dataset.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// ResolveEmployee resolves a free-text identifier to at most one employee.
func (s *Service) ResolveEmployee(identifier string) (*dataset.Employee, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return Resolve(snap, identifier), nil
}

// SearchEmployees returns ranked matches for the query.
func (s *Service) SearchEmployees(query string) ([]dataset.Employee, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return SearchEmployees(snap, query), nil
}

// ServiceAccess reports who holds access to one service.
func (s *Service) ServiceAccess(serviceName, statusFilter string) (ServiceAccess, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return ServiceAccess{}, err
	}
	return GetServiceAccess(snap, serviceName, statusFilter), nil
}

// ProvisioningStatus summarizes one employee's service standing.
func (s *Service) ProvisioningStatus(identifier string) (*ProvisioningStatus, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetProvisioningStatus(snap, identifier), nil
}

// LocationStats aggregates employees by work location.
func (s *Service) LocationStats(locationCode string) ([]LocationStats, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetLocationStats(snap, locationCode), nil
}

// DeletedUsersAudit lists deleted employees with live access.
func (s *Service) DeletedUsersAudit() ([]DeletedUserAudit, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return AuditDeletedUsers(snap), nil
}

// ComplianceDashboard builds the org-wide summary.
func (s *Service) ComplianceDashboard() (ComplianceDashboard, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return ComplianceDashboard{}, err
	}
	return GetComplianceDashboard(snap), nil
}

// UsersByRole returns active employees whose role contains the substring.
func (s *Service) UsersByRole(role string) ([]dataset.Employee, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetUsersByRole(snap, role), nil
}

// UsersByServiceCount filters employees by activated-service count.
func (s *Service) UsersByServiceCount(minCount, maxCount int, includeInactive bool) ([]EmployeeServiceCount, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetUsersByServiceCount(snap, minCount, maxCount, includeInactive), nil
}

// ServiceNames lists every tracked service.
func (s *Service) ServiceNames() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.ServiceNames, nil
}
