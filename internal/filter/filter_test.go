package filter

import (
	"testing"
	"time"

	"github.com/iliyamo/case-record-tracker/internal/model"
)

func sampleCases() []model.Case {
	mk := func(id uint64, caseNo, name, aadhar, crimeType, officer, address, status string, created time.Time) model.Case {
		return model.Case{
			ID: id, CaseNo: caseNo, Name: name, AadharNo: aadhar,
			CrimeType: crimeType, OfficerName: officer, Address: address,
			Status: status, CreatedAt: created,
		}
	}
	return []model.Case{
		mk(1, "CR-2024-001", "Vikram Singh", "234567891234", "Cyber Fraud",
			"Inspector Ramesh Yadav", "123 MG Road, Bangalore, Karnataka - 560001",
			model.StatusInCourt, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)),
		mk(2, "CR-2024-002", "Anjali Verma", "345678912345", "Identity Theft",
			"Sub-Inspector Meera Desai", "456 Nehru Street, Mumbai, Maharashtra - 400001",
			model.StatusClosed, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)),
		mk(3, "CR-2023-118", "Ravi Patel", "999999999999", "Theft",
			"Inspector Ramesh Yadav", "9 Station Road, Pune - 411001",
			model.StatusOpen, time.Date(2023, 12, 1, 8, 30, 0, 0, time.UTC)),
	}
}

// TestApplyZeroFilter verifies the pass-through property: with no filter
// inputs set the result is exactly the input.
func TestApplyZeroFilter(t *testing.T) {
	cases := sampleCases()
	got := Apply(cases, Filter{}, time.UTC)
	if len(got) != len(cases) {
		t.Fatalf("expected %d cases, got %d", len(cases), len(got))
	}
	for i := range got {
		if got[i].ID != cases[i].ID {
			t.Errorf("case %d: expected id %d, got %d", i, cases[i].ID, got[i].ID)
		}
	}
}

// TestApplySubset verifies every filter output is a subset of the input.
func TestApplySubset(t *testing.T) {
	cases := sampleCases()
	ids := map[uint64]bool{}
	for _, c := range cases {
		ids[c.ID] = true
	}
	filters := []Filter{
		{SearchTerm: "cr-2024"},
		{DateFrom: "2024-01-01"},
		{DateTo: "2024-01-01"},
		{Clerk: "Inspector Ramesh Yadav"},
		{AadharOrCase: "2345"},
		{PinCode: "560001"},
		{SearchTerm: "theft", Clerk: "Sub-Inspector Meera Desai"},
	}
	for _, f := range filters {
		for _, c := range Apply(cases, f, time.UTC) {
			if !ids[c.ID] {
				t.Errorf("filter %+v produced case id %d not present in input", f, c.ID)
			}
		}
	}
}

// TestSearchCaseSensitivity covers the mixed sensitivity of the free-text
// predicate: caseNo/name/crimeType match case-insensitively, aadharNo only
// as an exact substring.
func TestSearchCaseSensitivity(t *testing.T) {
	cases := sampleCases()

	tests := []struct {
		name string
		term string
		want []uint64
	}{
		{"case number prefix, different case", "cr-2024", []uint64{1, 2}},
		{"upper case term on caseNo", "CR-2024", []uint64{1, 2}},
		{"name substring", "vikram", []uint64{1}},
		{"crime type substring", "THEFT", []uint64{2, 3}},
		{"aadhar exact substring", "234567891234", []uint64{1}},
		{"aadhar not a substring of a different number", "123456789999", nil},
		{"no match at all", "nonexistent", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(cases, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d matches, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("match %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

// TestSearchAadharNotMatchedAgainstOther ensures an aadhar-looking term
// does not match a case whose aadharNo merely shares digits.
func TestSearchAadharNotMatchedAgainstOther(t *testing.T) {
	cases := sampleCases()
	got := Search(cases, "234567891234")
	for _, c := range got {
		if c.AadharNo == "999999999999" {
			t.Errorf("term must not match aadharNo %q", c.AadharNo)
		}
	}
}

// TestDateRangeInclusive checks the day-granularity bounds: a case created
// at 23:59:59 on the dateTo day is still included, and one created at the
// first second of dateFrom is too.
func TestDateRangeInclusive(t *testing.T) {
	cases := sampleCases()

	got := Apply(cases, Filter{DateTo: "2024-03-15"}, time.UTC)
	found := false
	for _, c := range got {
		if c.ID == 1 {
			found = true
		}
		if c.ID == 2 {
			t.Errorf("case created 2024-05-02 must not pass dateTo 2024-03-15")
		}
	}
	if !found {
		t.Errorf("case created 2024-03-15T23:59:59 must pass dateTo 2024-03-15")
	}

	got = Apply(cases, Filter{DateFrom: "2024-03-15"}, time.UTC)
	for _, c := range got {
		if c.ID == 3 {
			t.Errorf("case created 2023-12-01 must not pass dateFrom 2024-03-15")
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 cases at or after 2024-03-15, got %d", len(got))
	}
}

// TestClerkExactMatch verifies the selector compares officerName exactly,
// not as a substring.
func TestClerkExactMatch(t *testing.T) {
	cases := sampleCases()
	got := Apply(cases, Filter{Clerk: "Inspector Ramesh Yadav"}, time.UTC)
	if len(got) != 2 {
		t.Fatalf("expected 2 cases for officer, got %d", len(got))
	}
	if got := Apply(cases, Filter{Clerk: "Ramesh"}, time.UTC); len(got) != 0 {
		t.Errorf("partial officer name must not match, got %d cases", len(got))
	}
}

// TestAadharOrCaseInsensitive covers the secondary identifier predicate:
// case-insensitive on both aadharNo and caseNo.
func TestAadharOrCaseInsensitive(t *testing.T) {
	cases := sampleCases()
	if got := Apply(cases, Filter{AadharOrCase: "cr-2023"}, time.UTC); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("expected only case 3 for term cr-2023, got %d matches", len(got))
	}
	if got := Apply(cases, Filter{AadharOrCase: "34567891234"}, time.UTC); len(got) != 2 {
		t.Errorf("expected 2 matches on aadhar fragment, got %d", len(got))
	}
}

// TestPinCodeCaseSensitive covers the address predicate.
func TestPinCodeCaseSensitive(t *testing.T) {
	cases := sampleCases()
	if got := Apply(cases, Filter{PinCode: "560001"}, time.UTC); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only case 1 for pin 560001")
	}
	if got := Apply(cases, Filter{PinCode: "mg road"}, time.UTC); len(got) != 0 {
		t.Errorf("address containment is case-sensitive, got %d matches", len(got))
	}
}

// TestPredicatesAndCombined verifies predicates narrow each other.
func TestPredicatesAndCombined(t *testing.T) {
	cases := sampleCases()
	f := Filter{
		SearchTerm: "theft",
		Clerk:      "Inspector Ramesh Yadav",
	}
	got := Apply(cases, f, time.UTC)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only case 3, got %d matches", len(got))
	}
}

// TestCount tallies the dashboard stats, including the end-to-end property
// that a new Open case bumps both totalCases and openCases.
func TestCount(t *testing.T) {
	cases := sampleCases()
	users := []model.User{
		{ID: 1, Role: model.RoleClerk},
		{ID: 2, Role: model.RolePolice},
	}
	s := Count(cases, users)
	if s.TotalCases != 3 || s.OpenCases != 1 || s.InCourt != 1 || s.ClosedCases != 1 || s.UnderInvestigation != 0 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.TotalUsers != 2 {
		t.Errorf("expected 2 users, got %d", s.TotalUsers)
	}

	cases = append(cases, model.Case{ID: 4, CaseNo: "CR-2024-003", Status: model.StatusOpen, CreatedAt: time.Now()})
	s2 := Count(cases, users)
	if s2.TotalCases != s.TotalCases+1 {
		t.Errorf("new case must bump totalCases: %d -> %d", s.TotalCases, s2.TotalCases)
	}
	if s2.OpenCases != s.OpenCases+1 {
		t.Errorf("new Open case must bump openCases: %d -> %d", s.OpenCases, s2.OpenCases)
	}
}
