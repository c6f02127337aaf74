// Package directory answers employee-centric queries against the provisioning
// snapshot.
//
// It owns the two lookup primitives every other feature builds on:
//
//   - Resolve: fuzzy resolution of a free-text identifier (name fragment,
//     email, username, user id) to at most one employee, by a fixed priority
//     ladder. Used wherever a single target employee is structurally required.
//   - SearchEmployees: ranked multi-field search returning every plausible
//     match, best first. Used where the caller wants to inspect candidates.
//
// On top of those it provides the employee-side reports: per-service access
// listings, per-employee provisioning status, location statistics, the
// deleted-users audit and the compliance dashboard.
package directory
