package handler // handler defines http handlers

import (
	"strings"

	"github.com/iliyamo/case-record-tracker/internal/model"
	"github.com/iliyamo/case-record-tracker/internal/repository"
)

// casePayload is the wire shape for creating or updating a case. On update
// the pointer fields distinguish "not sent" (nil, leave untouched) from
// "sent empty". createdAt/updatedAt are absent by design: timestamps are
// server-assigned and createdAt is never writable.
type casePayload struct {
	CaseNo                   *string `json:"caseNo"`
	Name                     *string `json:"name"`
	Age                      *int    `json:"age"`
	Address                  *string `json:"address"`
	FatherName               *string `json:"fatherName"`
	MotherName               *string `json:"motherName"`
	AadharNo                 *string `json:"aadharNo"`
	OfficerName              *string `json:"officerName"`
	CrimeType                *string `json:"crimeType"`
	CrimeDetails             *string `json:"crimeDetails"`
	FingerDemographicDetails *string `json:"fingerDemographicDetails"`
	JudgeName                *string `json:"judgeName"`
	CourtJudgement           *string `json:"courtJudgement"`
	PhotoBase64              *string `json:"photoBase64"`
	Status                   *string `json:"status"`
}

// aadharValid reports whether s is exactly twelve ASCII digits. Pattern
// and length only; no checksum validation is attempted.
func aadharValid(s string) bool {
	if len(s) != 12 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// str returns the trimmed value of an optional string field.
func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// validateCreate checks a creation payload: every field is required except
// courtJudgement and photo. Returns the fields ready for the repository
// and a human-readable problem, empty when valid.
func (p casePayload) validateCreate() (repository.CaseFields, string) {
	f := repository.CaseFields{
		CaseNo:                   str(p.CaseNo),
		Name:                     str(p.Name),
		Address:                  str(p.Address),
		FatherName:               str(p.FatherName),
		MotherName:               str(p.MotherName),
		AadharNo:                 str(p.AadharNo),
		OfficerName:              str(p.OfficerName),
		CrimeType:                str(p.CrimeType),
		CrimeDetails:             str(p.CrimeDetails),
		FingerDemographicDetails: str(p.FingerDemographicDetails),
		JudgeName:                str(p.JudgeName),
		CourtJudgement:           str(p.CourtJudgement),
	}
	if p.PhotoBase64 != nil {
		f.PhotoBase64 = *p.PhotoBase64
	}
	required := []struct{ name, val string }{
		{"caseNo", f.CaseNo},
		{"name", f.Name},
		{"address", f.Address},
		{"fatherName", f.FatherName},
		{"motherName", f.MotherName},
		{"aadharNo", f.AadharNo},
		{"officerName", f.OfficerName},
		{"crimeType", f.CrimeType},
		{"crimeDetails", f.CrimeDetails},
		{"fingerDemographicDetails", f.FingerDemographicDetails},
		{"judgeName", f.JudgeName},
	}
	for _, r := range required {
		if r.val == "" {
			return repository.CaseFields{}, r.name + " is required"
		}
	}
	if p.Age == nil {
		return repository.CaseFields{}, "age is required"
	}
	if *p.Age < 0 {
		return repository.CaseFields{}, "age must be non-negative"
	}
	f.Age = *p.Age
	if !aadharValid(f.AadharNo) {
		return repository.CaseFields{}, "aadharNo must be 12 digits"
	}
	if p.Status != nil && str(p.Status) != "" {
		s := str(p.Status)
		if !model.ValidStatus(s) {
			return repository.CaseFields{}, "invalid status"
		}
		f.Status = s
	}
	return f, ""
}

// validateUpdate checks a partial payload: only the fields that were sent
// are validated and forwarded. Returns the update and a problem string,
// empty when valid.
func (p casePayload) validateUpdate() (repository.CaseUpdate, string) {
	var u repository.CaseUpdate
	set := func(dst **string, src *string) {
		if src != nil {
			v := strings.TrimSpace(*src)
			*dst = &v
		}
	}
	set(&u.CaseNo, p.CaseNo)
	set(&u.Name, p.Name)
	set(&u.Address, p.Address)
	set(&u.FatherName, p.FatherName)
	set(&u.MotherName, p.MotherName)
	set(&u.OfficerName, p.OfficerName)
	set(&u.CrimeType, p.CrimeType)
	set(&u.CrimeDetails, p.CrimeDetails)
	set(&u.FingerDemographicDetails, p.FingerDemographicDetails)
	set(&u.JudgeName, p.JudgeName)
	set(&u.CourtJudgement, p.CourtJudgement)
	if p.PhotoBase64 != nil {
		u.PhotoBase64 = p.PhotoBase64
	}
	if p.Age != nil {
		if *p.Age < 0 {
			return repository.CaseUpdate{}, "age must be non-negative"
		}
		u.Age = p.Age
	}
	if p.AadharNo != nil {
		v := strings.TrimSpace(*p.AadharNo)
		if !aadharValid(v) {
			return repository.CaseUpdate{}, "aadharNo must be 12 digits"
		}
		u.AadharNo = &v
	}
	if p.Status != nil {
		s := strings.TrimSpace(*p.Status)
		if !model.ValidStatus(s) {
			return repository.CaseUpdate{}, "invalid status"
		}
		u.Status = &s
	}
	return u, ""
}
