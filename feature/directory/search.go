package directory

import (
	"sort"
	"strings"

	"provision-manager/core/dataset"
)

// Match weights, highest first. Exact identity matches dominate, prefix
// matches beat substring matches, and the multi-token name heuristic adds a
// moderate bonus per matched last-name word.
const (
	weightExactEmail    = 1000
	weightExactUserID   = 900
	weightExactFullName = 800
	weightExactUsername = 700

	weightEmailPrefix     = 600
	weightFullNamePrefix  = 500
	weightFirstNamePrefix = 400
	weightLastNamePrefix  = 350

	weightEmailContains     = 300
	weightFullNameContains  = 250
	weightFirstNameContains = 200
	weightLastNameContains  = 150
	weightUserIDContains    = 100
	weightUsernameContains  = 50

	weightNameHeuristicBase = 400
	weightLastWordExact     = 50
	weightLastWordContains  = 30
)

// SearchEmployees returns every employee with a positive match score for the
// query, best first. Ties keep source row order (stable sort). A query that
// matches nothing returns an empty slice.
func SearchEmployees(snap *dataset.Snapshot, query string) []dataset.Employee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type scored struct {
		emp   dataset.Employee
		score int
	}
	var results []scored

	for _, emp := range snap.Employees {
		if s := scoreEmployee(&emp, q); s > 0 {
			results = append(results, scored{emp: emp, score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]dataset.Employee, len(results))
	for i, r := range results {
		out[i] = r.emp
	}
	return out
}

func scoreEmployee(emp *dataset.Employee, q string) int {
	fullName := strings.ToLower(emp.FullName())
	email := strings.ToLower(emp.Email)
	userID := strings.ToLower(emp.UserID)
	username := strings.ToLower(emp.Username)
	firstName := strings.ToLower(emp.FirstName)
	lastName := strings.ToLower(emp.LastName)

	score := 0

	if email == q {
		score += weightExactEmail
	}
	if userID == q {
		score += weightExactUserID
	}
	if fullName == q {
		score += weightExactFullName
	}
	if username != "" && username == q {
		score += weightExactUsername
	}

	if strings.HasPrefix(email, q) {
		score += weightEmailPrefix
	}
	if strings.HasPrefix(fullName, q) {
		score += weightFullNamePrefix
	}
	if strings.HasPrefix(firstName, q) {
		score += weightFirstNamePrefix
	}
	if strings.HasPrefix(lastName, q) {
		score += weightLastNamePrefix
	}

	if strings.Contains(email, q) {
		score += weightEmailContains
	}
	if strings.Contains(fullName, q) {
		score += weightFullNameContains
	}
	if strings.Contains(firstName, q) {
		score += weightFirstNameContains
	}
	if strings.Contains(lastName, q) {
		score += weightLastNameContains
	}
	if strings.Contains(userID, q) {
		score += weightUserIDContains
	}
	if username != "" && strings.Contains(username, q) {
		score += weightUsernameContains
	}

	// Multi-token first/last heuristic, same shape as Resolve but additive.
	tokens := strings.Fields(q)
	if len(tokens) >= 2 {
		first := tokens[0]
		if firstName == first || strings.Contains(firstName, first) {
			lastWords := strings.Fields(lastName)
			bonus := 0
			for _, qw := range tokens[1:] {
				for _, lw := range lastWords {
					if lw == qw {
						bonus += weightLastWordExact
					} else if strings.Contains(lw, qw) || strings.Contains(qw, lw) {
						bonus += weightLastWordContains
					}
				}
			}
			if bonus > 0 {
				score += weightNameHeuristicBase + bonus
			}
		}
	}

	return score
}
