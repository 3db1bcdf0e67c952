package handler

import (
	"testing"

	"github.com/iliyamo/case-record-tracker/internal/model"
)

func sp(s string) *string { return &s }
func ip(i int) *int       { return &i }

func fullPayload() casePayload {
	return casePayload{
		CaseNo:                   sp("CR-2024-001"),
		Name:                     sp("Vikram Singh"),
		Age:                      ip(32),
		Address:                  sp("123 MG Road, Bangalore - 560001"),
		FatherName:               sp("Rajendra Singh"),
		MotherName:               sp("Sunita Singh"),
		AadharNo:                 sp("234567891234"),
		OfficerName:              sp("Inspector Ramesh Yadav"),
		CrimeType:                sp("Cyber Fraud"),
		CrimeDetails:             sp("Phishing attack targeting senior citizens"),
		FingerDemographicDetails: sp("Right thumb print captured"),
		JudgeName:                sp("Justice M.K. Sharma"),
	}
}

// TestValidateCreateValid verifies a complete payload passes and defaults
// are applied for the optional fields.
func TestValidateCreateValid(t *testing.T) {
	f, problem := fullPayload().validateCreate()
	if problem != "" {
		t.Fatalf("expected no problem, got %q", problem)
	}
	if f.CourtJudgement != "" {
		t.Errorf("courtJudgement is optional and defaults at the repository, got %q", f.CourtJudgement)
	}
	if f.Age != 32 || f.AadharNo != "234567891234" {
		t.Errorf("fields not carried over: %+v", f)
	}
}

// TestValidateCreateRequiredFields drops each required field in turn.
func TestValidateCreateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*casePayload)
	}{
		{"caseNo", func(p *casePayload) { p.CaseNo = nil }},
		{"name", func(p *casePayload) { p.Name = sp("  ") }},
		{"age", func(p *casePayload) { p.Age = nil }},
		{"address", func(p *casePayload) { p.Address = nil }},
		{"fatherName", func(p *casePayload) { p.FatherName = sp("") }},
		{"motherName", func(p *casePayload) { p.MotherName = nil }},
		{"aadharNo", func(p *casePayload) { p.AadharNo = nil }},
		{"officerName", func(p *casePayload) { p.OfficerName = nil }},
		{"crimeType", func(p *casePayload) { p.CrimeType = nil }},
		{"crimeDetails", func(p *casePayload) { p.CrimeDetails = nil }},
		{"fingerDemographicDetails", func(p *casePayload) { p.FingerDemographicDetails = nil }},
		{"judgeName", func(p *casePayload) { p.JudgeName = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fullPayload()
			tt.mutate(&p)
			if _, problem := p.validateCreate(); problem == "" {
				t.Errorf("expected a validation problem for missing %s", tt.name)
			}
		})
	}
}

// TestValidateCreateFieldRules covers age and aadhar constraints and the
// status label set.
func TestValidateCreateFieldRules(t *testing.T) {
	p := fullPayload()
	p.Age = ip(-1)
	if _, problem := p.validateCreate(); problem != "age must be non-negative" {
		t.Errorf("negative age: got %q", problem)
	}

	p = fullPayload()
	p.Age = ip(0)
	if _, problem := p.validateCreate(); problem != "" {
		t.Errorf("zero age is valid, got %q", problem)
	}

	for _, bad := range []string{"12345678901", "1234567890123", "23456789123a", ""} {
		p = fullPayload()
		p.AadharNo = sp(bad)
		if _, problem := p.validateCreate(); problem == "" {
			t.Errorf("aadharNo %q must be rejected", bad)
		}
	}

	p = fullPayload()
	p.Status = sp("Archived")
	if _, problem := p.validateCreate(); problem != "invalid status" {
		t.Errorf("unknown status: got %q", problem)
	}

	p = fullPayload()
	p.Status = sp(model.StatusUnderInvestigation)
	f, problem := p.validateCreate()
	if problem != "" || f.Status != model.StatusUnderInvestigation {
		t.Errorf("valid status rejected: %q / %+v", problem, f)
	}
}

// TestValidateUpdatePartial verifies only the sent fields appear in the
// update and that per-field rules still apply.
func TestValidateUpdatePartial(t *testing.T) {
	p := casePayload{Status: sp(model.StatusClosed), JudgeName: sp("Justice A. Rao")}
	u, problem := p.validateUpdate()
	if problem != "" {
		t.Fatalf("expected no problem, got %q", problem)
	}
	if u.Status == nil || *u.Status != model.StatusClosed {
		t.Errorf("status not carried: %+v", u)
	}
	if u.JudgeName == nil || *u.JudgeName != "Justice A. Rao" {
		t.Errorf("judgeName not carried: %+v", u)
	}
	if u.CaseNo != nil || u.Name != nil || u.Age != nil || u.AadharNo != nil {
		t.Errorf("unsent fields must stay nil: %+v", u)
	}

	p = casePayload{Age: ip(-5)}
	if _, problem := p.validateUpdate(); problem == "" {
		t.Error("negative age must be rejected on update too")
	}

	p = casePayload{AadharNo: sp("not-a-number")}
	if _, problem := p.validateUpdate(); problem == "" {
		t.Error("malformed aadharNo must be rejected on update")
	}
}

// TestAadharValid pins the digits-only, length-twelve rule.
func TestAadharValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"234567891234", true},
		{"000000000000", true},
		{"23456789123", false},
		{"2345678912345", false},
		{"23456789123x", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := aadharValid(tt.in); got != tt.want {
			t.Errorf("aadharValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestValidateNewUser covers the local provisioning checks: violations
// must be reported without any credential write.
func TestValidateNewUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		fullName string
		wantErr  bool
	}{
		{"valid", "clerk@court.gov.in", "secret1", "Rajesh Kumar", false},
		{"password exactly six", "a@b.c", "123456", "A B", false},
		{"password five chars", "a@b.c", "12345", "A B", true},
		{"empty email", "", "secret1", "A B", true},
		{"empty password", "a@b.c", "", "A B", true},
		{"empty full name", "a@b.c", "secret1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := validateNewUser(tt.email, tt.password, tt.fullName)
			if (problem != "") != tt.wantErr {
				t.Errorf("validateNewUser(%q,%q,%q) = %q, wantErr=%v",
					tt.email, tt.password, tt.fullName, problem, tt.wantErr)
			}
		})
	}
}
