package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Snapshot is an immutable view of all three exports, in source row order.
type Snapshot struct {
	Employees    []Employee
	Devices      []Device
	Portfolio    []PortfolioAccount
	ServiceNames []string
}

// Source loads and memoizes the data snapshot for the process lifetime.
type Source struct {
	cfg Config

	mu   sync.RWMutex
	snap *Snapshot
	sf   singleflight.Group
}

// NewSource creates a source reading from the configured CSV paths.
func NewSource(cfg Config) *Source {
	return &Source{cfg: cfg}
}

// Snapshot returns the memoized snapshot, loading it on first call.
// Concurrent first calls share a single load.
func (s *Source) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	result, err, _ := s.sf.Do("load", func() (any, error) {
		s.mu.RLock()
		cached := s.snap
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := s.load()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snap = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Reset discards the cached snapshot so the next Snapshot call re-reads the
// files. Intended for tests and explicit reload operations.
func (s *Source) Reset() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

func (s *Source) load() (*Snapshot, error) {
	employees, serviceNames, err := loadEmployees(s.cfg.ProvisionsPath())
	if err != nil {
		return nil, fmt.Errorf("loading provisioning export: %w", err)
	}

	devices, err := loadDevices(s.cfg.DevicesPath())
	if err != nil {
		return nil, fmt.Errorf("loading device export: %w", err)
	}

	portfolio, err := loadPortfolio(s.cfg.PortfolioPath())
	if err != nil {
		return nil, fmt.Errorf("loading portfolio export: %w", err)
	}

	return &Snapshot{
		Employees:    employees,
		Devices:      devices,
		Portfolio:    portfolio,
		ServiceNames: serviceNames,
	}, nil
}

// employeeFixedColumns is the number of identity columns that precede the
// per-service columns in the provisioning export.
const employeeFixedColumns = 8

func loadEmployees(path string) ([]Employee, []string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	var serviceNames []string
	for _, h := range header[min(employeeFixedColumns, len(header)):] {
		serviceNames = append(serviceNames, strings.TrimSpace(h))
	}

	employees := make([]Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < employeeFixedColumns {
			continue
		}

		services := make(map[string]string, len(serviceNames))
		for i, name := range serviceNames {
			services[name] = field(row, employeeFixedColumns+i)
		}

		status := field(row, 4)
		if status == "" {
			status = EmployeeActive
		}

		employees = append(employees, Employee{
			FirstName:        field(row, 0),
			LastName:         field(row, 1),
			UserID:           field(row, 2),
			WorkLocationCode: field(row, 3),
			Status:           status,
			Email:            field(row, 5),
			Username:         field(row, 6),
			Role:             field(row, 7),
			Services:         services,
		})
	}
	return employees, serviceNames, nil
}

// deviceMinColumns is the minimum column count a device row must carry.
const deviceMinColumns = 22

func loadDevices(path string) ([]Device, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	devices := make([]Device, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < deviceMinColumns {
			continue
		}

		devices = append(devices, Device{
			AssetNumber:       field(row, 0),
			DeviceStatus:      field(row, 1),
			DeviceType:        field(row, 2),
			Manufacturer:      field(row, 3),
			ModelNumber:       field(row, 4),
			ModelName:         field(row, 5),
			OperatingSystem:   field(row, 6),
			SerialNumber:      field(row, 7),
			Procurement:       field(row, 8),
			StartDate:         field(row, 9),
			EndDate:           field(row, 10),
			AdditionalInfo:    field(row, 11),
			AssignedUserID:    field(row, 12),
			AssignedUserEmail: strings.ToLower(field(row, 13)),
			AssignedDate:      field(row, 14),
			UnassignedDate:    field(row, 15),
			MDM:               field(row, 16),
			Vendor:            field(row, 17),
			AppleCare:         field(row, 18),
			AssetStatus:       field(row, 19),
			City:              field(row, 20),
			Color:             field(row, 21),
			Region:            field(row, 22),
		})
	}
	return devices, nil
}

func loadPortfolio(path string) ([]PortfolioAccount, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	accounts := make([]PortfolioAccount, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}

		expense, _ := strconv.ParseFloat(field(row, 4), 64)

		accounts = append(accounts, PortfolioAccount{
			App:            field(row, 0),
			Identifier:     field(row, 1),
			ID:             field(row, 2),
			AccountStatus:  field(row, 3),
			MonthlyExpense: expense,
			Roles:          splitMulti(field(row, 5)),
			AdditionalInfo: field(row, 6),
			FirstName:      field(row, 7),
			LastName:       field(row, 8),
			UserStatus:     field(row, 9),
			Email:          field(row, 10),
			UserID:         field(row, 11),
			UserCategory:   field(row, 12),
			Departments:    splitMulti(field(row, 13)),
			JobTitle:       field(row, 14),
			Role:           field(row, 15),
		})
	}
	return accounts, nil
}

// field returns the trimmed cell at index i, or "" when the row is shorter.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// splitMulti splits a pipe-delimited multi-value cell, dropping blanks.
func splitMulti(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
