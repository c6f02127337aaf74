package dataset

// Employee statuses as they appear in the provisioning export.
const (
	EmployeeActive  = "Active"
	EmployeeDeleted = "Deleted"
)

// Per-service provisioning statuses.
const (
	ServiceActivated   = "Activated"
	ServiceInvited     = "Invited"
	ServiceDeactivated = "Deactivated"
	ServiceDeleted     = "Deleted"
)

// Employee is one row of the provisioning matrix. The first eight columns are
// fixed identity attributes; every remaining column maps one tracked service
// name to the employee's status in it.
type Employee struct {
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	UserID           string            `json:"userId"`
	WorkLocationCode string            `json:"workLocationCode"`
	Status           string            `json:"status"`
	Email            string            `json:"email"`
	Username         string            `json:"username"`
	Role             string            `json:"role"`
	Services         map[string]string `json:"services"`
}

// FullName returns "FirstName LastName".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
