// Package filter implements the in-memory case filtering used by the
// role-scoped dashboards. All predicates run as a pure function over the
// full fetched case list; an empty filter passes every case through, so
// the result is always a subset of the input and equals it when no filter
// input is set.
package filter

import (
	"strings"
	"time"

	"github.com/iliyamo/case-record-tracker/internal/model"
)

// Filter carries the admin dashboard's filter inputs. Zero values mean
// "unset" and pass everything. All set predicates are AND-combined.
type Filter struct {
	// SearchTerm matches case-insensitively against caseNo, name and
	// crimeType, or case-sensitively as a substring of aadharNo.
	SearchTerm string
	// DateFrom/DateTo bound createdAt inclusively at day granularity,
	// in the given location: from 00:00:00.000, to 23:59:59.999.
	// Format "2006-01-02".
	DateFrom string
	DateTo   string
	// Clerk compares exactly against the case's officerName. The selector
	// is labelled "Clerk" in the UI but has always filtered on the
	// recorded officer name; kept as observed.
	Clerk string
	// AadharOrCase matches case-insensitively against aadharNo or caseNo.
	AadharOrCase string
	// PinCode is a case-sensitive substring match against address.
	PinCode string
}

// Zero reports whether no filter input is set.
func (f Filter) Zero() bool {
	return f.SearchTerm == "" && f.DateFrom == "" && f.DateTo == "" &&
		f.Clerk == "" && f.AadharOrCase == "" && f.PinCode == ""
}

// Apply returns the cases matching every set predicate. The input slice is
// not modified.
func Apply(cases []model.Case, f Filter, loc *time.Location) []model.Case {
	if loc == nil {
		loc = time.Local
	}
	var from, to time.Time
	if f.DateFrom != "" {
		if d, err := time.ParseInLocation("2006-01-02", f.DateFrom, loc); err == nil {
			from = d // start of day
		}
	}
	if f.DateTo != "" {
		if d, err := time.ParseInLocation("2006-01-02", f.DateTo, loc); err == nil {
			to = d.Add(24*time.Hour - time.Millisecond) // 23:59:59.999
		}
	}

	out := make([]model.Case, 0, len(cases))
	for _, c := range cases {
		if f.SearchTerm != "" && !matchesSearch(c, f.SearchTerm) {
			continue
		}
		created := c.CreatedAt.In(loc)
		if !from.IsZero() && created.Before(from) {
			continue
		}
		if !to.IsZero() && created.After(to) {
			continue
		}
		if f.Clerk != "" && c.OfficerName != f.Clerk {
			continue
		}
		if f.AadharOrCase != "" {
			term := strings.ToLower(f.AadharOrCase)
			if !strings.Contains(strings.ToLower(c.AadharNo), term) &&
				!strings.Contains(strings.ToLower(c.CaseNo), term) {
				continue
			}
		}
		if f.PinCode != "" && !strings.Contains(c.Address, f.PinCode) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesSearch implements the free-text predicate: case-insensitive
// substring on caseNo/name/crimeType, case-sensitive substring on
// aadharNo. Aadhar numbers are digit strings, so lowering them would only
// mask typos in the search term.
func matchesSearch(c model.Case, term string) bool {
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.CaseNo), lower) ||
		strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(c.AadharNo, term) ||
		strings.Contains(strings.ToLower(c.CrimeType), lower)
}

// Search implements the simpler free-text search used by the police and
// clerk tables: same OR-combination as the free-text predicate above.
func Search(cases []model.Case, term string) []model.Case {
	if term == "" {
		return cases
	}
	out := make([]model.Case, 0, len(cases))
	for _, c := range cases {
		if matchesSearch(c, term) {
			out = append(out, c)
		}
	}
	return out
}

// Stats summarizes the dashboard counters derived from the full case and
// user lists.
type Stats struct {
	TotalCases         int `json:"totalCases"`
	OpenCases          int `json:"openCases"`
	UnderInvestigation int `json:"underInvestigation"`
	InCourt            int `json:"inCourt"`
	ClosedCases        int `json:"closedCases"`
	TotalUsers         int `json:"totalUsers"`
}

// Count tallies the per-status case counts plus the user total.
func Count(cases []model.Case, users []model.User) Stats {
	s := Stats{TotalCases: len(cases), TotalUsers: len(users)}
	for _, c := range cases {
		switch c.Status {
		case model.StatusOpen:
			s.OpenCases++
		case model.StatusUnderInvestigation:
			s.UnderInvestigation++
		case model.StatusInCourt:
			s.InCourt++
		case model.StatusClosed:
			s.ClosedCases++
		}
	}
	return s
}
