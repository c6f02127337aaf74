package directory

import (
	"strings"

	"provision-manager/core/dataset"
)

// Resolve matches a free-text identifier to at most one employee. Rules are
// tried in strict priority order and the first hit wins, so an ambiguous
// identifier still yields a deterministic single result:
//
//  1. exact email
//  2. exact user id
//  3. exact username
//  4. exact full name
//  5. token-based partial name ("Aby Pappachan" vs a stored "Aby Saji
//     Pappachan")
//  6. email local-part prefix
//
// All comparisons are case-insensitive. Returns nil when nothing matches.
func Resolve(snap *dataset.Snapshot, identifier string) *dataset.Employee {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if id == "" {
		return nil
	}

	for i := range snap.Employees {
		if strings.ToLower(snap.Employees[i].Email) == id {
			return &snap.Employees[i]
		}
	}
	for i := range snap.Employees {
		if strings.ToLower(snap.Employees[i].UserID) == id {
			return &snap.Employees[i]
		}
	}
	for i := range snap.Employees {
		e := &snap.Employees[i]
		if e.Username != "" && strings.ToLower(e.Username) == id {
			return e
		}
	}
	for i := range snap.Employees {
		if strings.ToLower(snap.Employees[i].FullName()) == id {
			return &snap.Employees[i]
		}
	}

	if m := resolvePartialName(snap, id); m != nil {
		return m
	}

	// Email local-part prefix: "jdoe" or "jdoe@old-domain" both match
	// jdoe@example.com.
	local := id
	if at := strings.IndexByte(id, '@'); at >= 0 {
		local = id[:at]
	}
	for i := range snap.Employees {
		if strings.HasPrefix(strings.ToLower(snap.Employees[i].Email), local+"@") {
			return &snap.Employees[i]
		}
	}

	return nil
}

// resolvePartialName applies the two-token first/last-name heuristic: the
// first token is a candidate first name, the rest a candidate last-name
// phrase. First and last name components match on equality or substring
// containment in either direction, which tolerates dropped middle names and
// minor spelling drift.
func resolvePartialName(snap *dataset.Snapshot, id string) *dataset.Employee {
	tokens := strings.Fields(id)
	if len(tokens) < 2 {
		return nil
	}

	first := tokens[0]
	lastWords := tokens[1:]

	for i := range snap.Employees {
		e := &snap.Employees[i]
		empFirst := strings.ToLower(e.FirstName)
		if !looseMatch(empFirst, first) {
			continue
		}

		empLastWords := strings.Fields(strings.ToLower(e.LastName))
		for _, qw := range lastWords {
			for _, lw := range empLastWords {
				if looseMatch(lw, qw) {
					return e
				}
			}
		}
	}
	return nil
}

// looseMatch reports equality or substring containment in either direction.
func looseMatch(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
