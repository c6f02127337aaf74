package reconcile

import (
	"time"

	"provision-manager/core/dataset"

	"go.uber.org/zap"
)

// Service answers cross-export reconciliation queries.
type Service struct {
	source *dataset.Source
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new reconcile service.
func NewService(source *dataset.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger, now: time.Now}
}

// CompleteITProfile joins one employee's software and hardware standing.
func (s *Service) CompleteITProfile(identifier string) (*CompleteITProfile, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetCompleteITProfile(snap, identifier), nil
}

// DeviceMismatchAudit joins the inventory against the employee roster.
func (s *Service) DeviceMismatchAudit() (DeviceAssignmentMismatch, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return DeviceAssignmentMismatch{}, err
	}
	return AuditDeviceAssignmentMismatch(snap, s.now()), nil
}

// SyncReport cross-checks provisions against the portfolio.
func (s *Service) SyncReport() (SyncReport, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return SyncReport{}, err
	}
	return ReconcileProvisionVsPortfolio(snap), nil
}

// UnifiedView merges one app's accounts with provisioning statuses.
func (s *Service) UnifiedView(serviceName string) (*UnifiedServiceView, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetUnifiedServiceView(snap, serviceName), nil
}

// Onboarding builds the provisioning checklist for one email.
func (s *Service) Onboarding(email string) (*OnboardingChecklist, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetOnboardingChecklist(snap, email), nil
}

// Offboarding builds the deprovisioning checklist for one email.
func (s *Service) Offboarding(email string) (*OffboardingChecklist, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetOffboardingChecklist(snap, email), nil
}
