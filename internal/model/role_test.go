package model

import "testing"

// TestRoleValid pins the closed role set.
func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleClerk, RolePolice, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("role %q must be valid", r)
		}
	}
	for _, r := range []Role{"", "owner", "Clerk", "ADMIN", "superuser"} {
		if r.Valid() {
			t.Errorf("role %q must not be valid", r)
		}
	}
}

// TestParseRole rejects anything outside the set, including case variants:
// roles are stored lowercase and compared exactly.
func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("police"); !ok || r != RolePolice {
		t.Errorf("ParseRole(police) = %q, %v", r, ok)
	}
	if _, ok := ParseRole("Police"); ok {
		t.Error("ParseRole must not accept case variants")
	}
}

// TestValidStatus pins the four case status labels.
func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusOpen, StatusUnderInvestigation, StatusInCourt, StatusClosed} {
		if !ValidStatus(s) {
			t.Errorf("status %q must be valid", s)
		}
	}
	for _, s := range []string{"", "open", "Pending", "Archived"} {
		if ValidStatus(s) {
			t.Errorf("status %q must not be valid", s)
		}
	}
}
