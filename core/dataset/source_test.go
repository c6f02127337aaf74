package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, provisions, devices, portfolio string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		Dir:            dir,
		ProvisionsFile: "provisions.csv",
		DevicesFile:    "devices.csv",
		PortfolioFile:  "portfolio.csv",
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.ProvisionsFile), []byte(provisions), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.DevicesFile), []byte(devices), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.PortfolioFile), []byte(portfolio), 0644))
	return cfg
}

const provisionsHeader = "First Name,Last Name,User ID,Work Location,Status,Email,Username,Role,Slack,AWS"

const devicesHeader = "Asset Number,Device Status,Device Type,Manufacturer,Model Number,Model Name,Operating System,Serial Number,Procurement,Start Date,End Date,Additional Information,Assigned User ID,Assigned User Email,Assigned Date,Unassigned Date,MDM,Vendor,AppleCare,Asset Status,City,Color,Region"

const portfolioHeader = "App,Identifier,ID,Account Status,Monthly Expense,Roles,Additional Information,First Name,Last Name,User Status,Email,User ID,User Category,Departments,Job Title,Role"

func deviceRow(asset, status, dtype, email string) string {
	return asset + "," + status + "," + dtype + ",Apple,A2338,MacBook Pro,macOS,SN-" + asset +
		",Purchase,2022-01-01,2025-01-01,,U100," + email + ",2022-01-10,,Yes,Direct,Yes,Owned,Tokyo,Silver,APAC"
}

func TestSnapshotLoadsAllThreeExports(t *testing.T) {
	cfg := writeFixtures(t,
		provisionsHeader+"\n"+
			"Aby,Saji Pappachan,U001,TYO,Active,aby@example.com,aby,IT Engineer,Activated,Activated\n",
		devicesHeader+"\n"+deviceRow("A-1", DeviceInUse, "Laptop", "ABY@example.com")+"\n",
		portfolioHeader+"\n"+
			"AWS,aws-dev,1,Activated,120.50,Admin|Developer,,Aby,Saji Pappachan,Active,aby@example.com,U001,Employee,Engineering|Platform,Engineer,Member\n",
	)

	snap, err := NewSource(cfg).Snapshot()
	require.NoError(t, err)

	require.Len(t, snap.Employees, 1)
	emp := snap.Employees[0]
	assert.Equal(t, "Aby", emp.FirstName)
	assert.Equal(t, "Aby Saji Pappachan", emp.FullName())
	assert.Equal(t, map[string]string{"Slack": "Activated", "AWS": "Activated"}, emp.Services)
	assert.Equal(t, []string{"Slack", "AWS"}, snap.ServiceNames)

	require.Len(t, snap.Devices, 1)
	assert.Equal(t, "aby@example.com", snap.Devices[0].AssignedUserEmail, "assigned email is lower-cased on load")

	require.Len(t, snap.Portfolio, 1)
	acct := snap.Portfolio[0]
	assert.Equal(t, 120.50, acct.MonthlyExpense)
	assert.Equal(t, []string{"Admin", "Developer"}, acct.Roles)
	assert.Equal(t, []string{"Engineering", "Platform"}, acct.Departments)
}

func TestSnapshotSkipsShortRows(t *testing.T) {
	cfg := writeFixtures(t,
		provisionsHeader+"\n"+
			"Broken,Row\n"+
			"Jane,Doe,U002,SFO,Active,jane@example.com,jdoe,Engineer,Invited,\n",
		devicesHeader+"\nA-1,In-use,Laptop\n",
		portfolioHeader+"\nSlack,slack-1\n",
	)

	snap, err := NewSource(cfg).Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Employees, 1)
	assert.Equal(t, "Jane", snap.Employees[0].FirstName)
	assert.Empty(t, snap.Devices)
	assert.Empty(t, snap.Portfolio)
}

func TestSnapshotQuotedFieldsAndDefaults(t *testing.T) {
	cfg := writeFixtures(t,
		provisionsHeader+"\n"+
			"John,\"Smith, Jr.\",U003,NYC,,john@example.com,jsmith,\"Manager, IT\",,Deactivated\n",
		devicesHeader+"\n",
		portfolioHeader+"\n",
	)

	snap, err := NewSource(cfg).Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Employees, 1)
	emp := snap.Employees[0]
	assert.Equal(t, "Smith, Jr.", emp.LastName)
	assert.Equal(t, "Manager, IT", emp.Role)
	assert.Equal(t, EmployeeActive, emp.Status, "blank status defaults to Active")
}

func TestSnapshotMemoizedUntilReset(t *testing.T) {
	cfg := writeFixtures(t,
		provisionsHeader+"\nJane,Doe,U002,SFO,Active,jane@example.com,jdoe,Engineer,Invited,\n",
		devicesHeader+"\n",
		portfolioHeader+"\n",
	)
	src := NewSource(cfg)

	first, err := src.Snapshot()
	require.NoError(t, err)
	second, err := src.Snapshot()
	require.NoError(t, err)
	assert.Same(t, first, second, "second call returns the cached snapshot")

	// Rewrite the file; without a reset the old snapshot is still served.
	require.NoError(t, os.WriteFile(cfg.ProvisionsPath(), []byte(provisionsHeader+"\n"), 0644))
	third, err := src.Snapshot()
	require.NoError(t, err)
	assert.Same(t, first, third)

	src.Reset()
	fourth, err := src.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, fourth.Employees)
}

func TestSnapshotMissingFileFails(t *testing.T) {
	cfg := Config{
		Dir:            t.TempDir(),
		ProvisionsFile: "missing.csv",
		DevicesFile:    "missing.csv",
		PortfolioFile:  "missing.csv",
	}
	_, err := NewSource(cfg).Snapshot()
	assert.Error(t, err)
}
