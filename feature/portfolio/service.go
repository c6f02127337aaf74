package portfolio

import (
	"provision-manager/core/dataset"

	"go.uber.org/zap"
)

// Service answers portfolio queries against the current snapshot.
type Service struct {
	source *dataset.Source
	logger *zap.Logger
}

// NewService creates a new portfolio service.
func NewService(source *dataset.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// SpendReport aggregates monthly software spend.
func (s *Service) SpendReport() (SpendReport, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return SpendReport{}, err
	}
	return GetSpendReport(snap), nil
}

// CostOptimization surfaces savings opportunities.
func (s *Service) CostOptimization() (CostOptimizationReport, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return CostOptimizationReport{}, err
	}
	return AuditCostOptimization(snap), nil
}

// PrivilegedAccess reviews admin-role holders.
func (s *Service) PrivilegedAccess() (PrivilegedAccessAudit, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return PrivilegedAccessAudit{}, err
	}
	return AuditPrivilegedAccess(snap), nil
}

// RoleBreakdown buckets one app's accounts by role set, nil on no match.
func (s *Service) RoleBreakdown(serviceName string) (*ServiceRoleBreakdown, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetServiceRoleBreakdown(snap, serviceName), nil
}

// MultiAccountAnomalies finds users with several accounts in one app.
func (s *Service) MultiAccountAnomalies() ([]MultiAccountAnomaly, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return AuditMultiAccountAnomalies(snap), nil
}

// ContractorAudit profiles contractor access and cost.
func (s *Service) ContractorAudit() (ContractorAuditReport, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return ContractorAuditReport{}, err
	}
	return GetContractorAudit(snap), nil
}

// Overview profiles every app in the portfolio.
func (s *Service) Overview() (PortfolioOverview, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return PortfolioOverview{}, err
	}
	return GetPortfolioOverview(snap), nil
}

// DepartmentSpend analyzes one department's spend, nil on no match.
func (s *Service) DepartmentSpend(department string) (*DepartmentSpendAnalysis, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetDepartmentSpendAnalysis(snap, department), nil
}

// DepartmentRoster lists one department's members, nil on no match.
func (s *Service) DepartmentRoster(department string) (*DepartmentAnalysis, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return SearchByDepartment(snap, department), nil
}

// JobTitleProfile profiles holders of one job title, nil on no match.
func (s *Service) JobTitleProfile(jobTitle string) (*JobTitleAnalysis, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return SearchByJobTitle(snap, jobTitle), nil
}

// AccountsByEmail lists every account one user holds.
func (s *Service) AccountsByEmail(email string) ([]dataset.PortfolioAccount, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetPortfolioByEmail(snap, email), nil
}

// Apps lists the distinct app names.
func (s *Service) Apps() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetApps(snap), nil
}

// Departments lists the distinct departments.
func (s *Service) Departments() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetDepartments(snap), nil
}

// JobTitles lists the distinct job titles.
func (s *Service) JobTitles() ([]string, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return GetJobTitles(snap), nil
}
