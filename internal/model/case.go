package model

import "time"

// Case status labels. The set is closed but unordered: any authorized
// writer may move a case to any status, no transition order is enforced.
const (
    StatusOpen               = "Open"
    StatusUnderInvestigation = "Under Investigation"
    StatusInCourt            = "In Court"
    StatusClosed             = "Closed"
)

// ValidStatus reports whether s is one of the four known case statuses.
func ValidStatus(s string) bool {
    switch s {
    case StatusOpen, StatusUnderInvestigation, StatusInCourt, StatusClosed:
        return true
    }
    return false
}

// DefaultJudgement is the court judgement value assigned to a case until a
// verdict is recorded.
const DefaultJudgement = "Pending"

// Case represents a tracked legal/investigative record as stored in the
// `cases` table. OfficerName and JudgeName are descriptive free text, not
// references to user accounts: a case is not owned by whoever entered it
// and any clerk may edit any case.
//
// Fields:
//  ID                       – primary key assigned by the store at creation.
//  CaseNo                   – human-assigned case number; free text, not
//                             guaranteed unique by this system.
//  Name                     – subject's name.
//  Age                      – subject's age, non-negative.
//  Address                  – free text, expected to contain a pin code.
//  FatherName               – subject's father's name.
//  MotherName               – subject's mother's name.
//  AadharNo                 – 12-digit identity number stored as text;
//                             pattern-checked only, no checksum validation.
//  OfficerName              – investigating officer, descriptive only.
//  CrimeType                – crime category, free text.
//  CrimeDetails             – free-text description of the offence.
//  FingerDemographicDetails – free-text biometric notes.
//  JudgeName                – presiding judge, descriptive only.
//  CourtJudgement           – verdict text, "Pending" until recorded.
//  PhotoBase64              – optional inline data-URI photo (≤150 KB raw).
//  Status                   – one of the four status labels.
//  CreatedAt                – server-assigned at creation, never changed.
//  UpdatedAt                – server-refreshed on every successful write.
type Case struct {
    ID                       uint64    `json:"id"`
    CaseNo                   string    `json:"caseNo"`
    Name                     string    `json:"name"`
    Age                      int       `json:"age"`
    Address                  string    `json:"address"`
    FatherName               string    `json:"fatherName"`
    MotherName               string    `json:"motherName"`
    AadharNo                 string    `json:"aadharNo"`
    OfficerName              string    `json:"officerName"`
    CrimeType                string    `json:"crimeType"`
    CrimeDetails             string    `json:"crimeDetails"`
    FingerDemographicDetails string    `json:"fingerDemographicDetails"`
    JudgeName                string    `json:"judgeName"`
    CourtJudgement           string    `json:"courtJudgement"`
    PhotoBase64              string    `json:"photoBase64,omitempty"`
    Status                   string    `json:"status"`
    CreatedAt                time.Time `json:"createdAt"`
    UpdatedAt                time.Time `json:"updatedAt"`
}
