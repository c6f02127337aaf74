package directory

import (
	"testing"

	"provision-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		ServiceNames: []string{"Slack", "AWS", "GitHub"},
		Employees: []dataset.Employee{
			{
				FirstName: "Aby", LastName: "Saji Pappachan", UserID: "U001",
				WorkLocationCode: "TYO", Status: dataset.EmployeeActive,
				Email: "aby@example.com", Username: "aby.p", Role: "IT Engineer",
				Services: map[string]string{"Slack": "Activated", "AWS": "Activated", "GitHub": "Invited"},
			},
			{
				FirstName: "Jane", LastName: "Doe", UserID: "U002",
				WorkLocationCode: "SFO", Status: dataset.EmployeeActive,
				Email: "jane.doe@example.com", Username: "jdoe", Role: "Engineering Manager",
				Services: map[string]string{"Slack": "Activated", "AWS": "", "GitHub": "Activated"},
			},
			{
				FirstName: "John", LastName: "Deere", UserID: "U003",
				WorkLocationCode: "SFO", Status: dataset.EmployeeDeleted,
				Email: "john.deere@example.com", Username: "john.d", Role: "Sales",
				Services: map[string]string{"Slack": "Activated", "AWS": "Invited", "GitHub": "Deactivated"},
			},
		},
	}
}

func TestResolveExactEmailAnyCase(t *testing.T) {
	snap := testSnapshot()

	emp := Resolve(snap, "JANE.DOE@Example.COM")
	require.NotNil(t, emp)
	assert.Equal(t, "U002", emp.UserID)
}

func TestResolvePriorityOrder(t *testing.T) {
	// An employee whose username collides with another employee's user id:
	// the user id rule ranks above username, so it must win.
	snap := &dataset.Snapshot{
		Employees: []dataset.Employee{
			{FirstName: "A", LastName: "One", UserID: "X9", Email: "a@example.com", Username: "u100"},
			{FirstName: "B", LastName: "Two", UserID: "U100", Email: "b@example.com", Username: "b2"},
		},
	}

	emp := Resolve(snap, "u100")
	require.NotNil(t, emp)
	assert.Equal(t, "U100", emp.UserID)
}

func TestResolveByUserIDAndUsername(t *testing.T) {
	snap := testSnapshot()

	byID := Resolve(snap, "u003")
	require.NotNil(t, byID)
	assert.Equal(t, "John", byID.FirstName)

	byUsername := Resolve(snap, "jdoe")
	require.NotNil(t, byUsername)
	assert.Equal(t, "Jane", byUsername.FirstName)
}

func TestResolveFullName(t *testing.T) {
	snap := testSnapshot()

	emp := Resolve(snap, "jane doe")
	require.NotNil(t, emp)
	assert.Equal(t, "U002", emp.UserID)
}

func TestResolveDroppedMiddleName(t *testing.T) {
	snap := testSnapshot()

	emp := Resolve(snap, "Aby Pappachan")
	require.NotNil(t, emp)
	assert.Equal(t, "U001", emp.UserID)
}

func TestResolveEmailLocalPartPrefix(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name       string
		identifier string
		wantUserID string
	}{
		{"bare local part", "aby", "U001"},
		{"local part with stale domain", "jane.doe@old-corp.com", "U002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := Resolve(snap, tt.identifier)
			require.NotNil(t, emp)
			assert.Equal(t, tt.wantUserID, emp.UserID)
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	snap := testSnapshot()

	assert.Nil(t, Resolve(snap, "nobody in particular"))
	assert.Nil(t, Resolve(snap, ""))
	assert.Nil(t, Resolve(snap, "   "))
}
