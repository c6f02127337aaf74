package dataset

import "strings"

// PortfolioAccount is one row of the app portfolio export: a single paid
// account a user holds in one app. An employee may legitimately own several
// accounts in the same app (environment-segmented AWS roles, for example).
type PortfolioAccount struct {
	App            string   `json:"app"`
	Identifier     string   `json:"identifier"`
	ID             string   `json:"id"`
	AccountStatus  string   `json:"accountStatus"`
	MonthlyExpense float64  `json:"monthlyExpense"`
	Roles          []string `json:"roles"`
	AdditionalInfo string   `json:"additionalInformation"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	UserStatus     string   `json:"userStatus"`
	Email          string   `json:"email"`
	UserID         string   `json:"userId"`
	UserCategory   string   `json:"userCategory"`
	Departments    []string `json:"departments"`
	JobTitle       string   `json:"jobTitle"`
	Role           string   `json:"role"`
}

// FullName returns "FirstName LastName".
func (a *PortfolioAccount) FullName() string {
	return a.FirstName + " " + a.LastName
}

// IsContractor reports whether the account belongs to a contractor, based on
// the user category or the 'C' user-id prefix convention.
func (a *PortfolioAccount) IsContractor() bool {
	return strings.Contains(strings.ToLower(a.UserCategory), "contractor") ||
		strings.HasPrefix(a.UserID, "C")
}
