package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/case-record-tracker/internal/model"
)

// CaseRepo persists case records in the 'cases' table. Timestamps are
// assigned by the database server (NOW() at commit), never by the client,
// so created_at/updated_at are immune to client clock skew. created_at is
// written exactly once and is never part of an update statement.
type CaseRepo struct{ DB *sql.DB }

func NewCaseRepo(db *sql.DB) *CaseRepo { return &CaseRepo{DB: db} }

const caseColumns = `id, case_no, name, age, address, father_name, mother_name,
	aadhar_no, officer_name, crime_type, crime_details, finger_demographic_details,
	judge_name, court_judgement, photo_base64, status, created_at, updated_at`

// CaseFields carries the writable fields of a case for creation.
type CaseFields struct {
	CaseNo                   string
	Name                     string
	Age                      int
	Address                  string
	FatherName               string
	MotherName               string
	AadharNo                 string
	OfficerName              string
	CrimeType                string
	CrimeDetails             string
	FingerDemographicDetails string
	JudgeName                string
	CourtJudgement           string
	PhotoBase64              string
	Status                   string
}

// CaseUpdate carries a partial update: nil pointers mean "leave untouched".
// createdAt has no field here on purpose.
type CaseUpdate struct {
	CaseNo                   *string
	Name                     *string
	Age                      *int
	Address                  *string
	FatherName               *string
	MotherName               *string
	AadharNo                 *string
	OfficerName              *string
	CrimeType                *string
	CrimeDetails             *string
	FingerDemographicDetails *string
	JudgeName                *string
	CourtJudgement           *string
	PhotoBase64              *string
	Status                   *string
}

// List returns the whole collection ordered by creation time, newest first.
func (r *CaseRepo) List(ctx context.Context) ([]model.Case, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+caseColumns+" FROM cases ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Case, 0, 64)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a single case.
func (r *CaseRepo) GetByID(ctx context.Context, id uint64) (model.Case, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+caseColumns+" FROM cases WHERE id=? LIMIT 1", id)
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Case{}, ErrCaseNotFound
	}
	return c, err
}

// Create inserts a new case and returns its id. Both timestamps are set to
// the database server's current time at the moment of commit.
func (r *CaseRepo) Create(ctx context.Context, f CaseFields) (uint64, error) {
	if f.CourtJudgement == "" {
		f.CourtJudgement = model.DefaultJudgement
	}
	if f.Status == "" {
		f.Status = model.StatusOpen
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO cases (case_no, name, age, address, father_name, mother_name,
			aadhar_no, officer_name, crime_type, crime_details, finger_demographic_details,
			judge_name, court_judgement, photo_base64, status, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,NOW(),NOW())`,
		f.CaseNo, f.Name, f.Age, f.Address, f.FatherName, f.MotherName,
		f.AadharNo, f.OfficerName, f.CrimeType, f.CrimeDetails, f.FingerDemographicDetails,
		f.JudgeName, f.CourtJudgement, f.PhotoBase64, f.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update applies a partial update. Only the provided fields appear in the
// SET clause; updated_at is refreshed server-side on every write and
// created_at is never touched.
func (r *CaseRepo) Update(ctx context.Context, id uint64, u CaseUpdate) error {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+"=?")
		args = append(args, v)
	}
	if u.CaseNo != nil {
		add("case_no", *u.CaseNo)
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Age != nil {
		add("age", *u.Age)
	}
	if u.Address != nil {
		add("address", *u.Address)
	}
	if u.FatherName != nil {
		add("father_name", *u.FatherName)
	}
	if u.MotherName != nil {
		add("mother_name", *u.MotherName)
	}
	if u.AadharNo != nil {
		add("aadhar_no", *u.AadharNo)
	}
	if u.OfficerName != nil {
		add("officer_name", *u.OfficerName)
	}
	if u.CrimeType != nil {
		add("crime_type", *u.CrimeType)
	}
	if u.CrimeDetails != nil {
		add("crime_details", *u.CrimeDetails)
	}
	if u.FingerDemographicDetails != nil {
		add("finger_demographic_details", *u.FingerDemographicDetails)
	}
	if u.JudgeName != nil {
		add("judge_name", *u.JudgeName)
	}
	if u.CourtJudgement != nil {
		add("court_judgement", *u.CourtJudgement)
	}
	if u.PhotoBase64 != nil {
		add("photo_base64", *u.PhotoBase64)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at=NOW()")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE cases SET "+strings.Join(set, ", ")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var count int
		if e := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM cases WHERE id=?", id).Scan(&count); e == nil && count == 0 {
			return ErrCaseNotFound
		}
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

// scanCase maps a raw row into a Case, applying the defined fallback for
// every nullable column so a partially written or legacy row never yields
// an undefined field. This is a deliberate tolerance for schema drift.
func scanCase(s rowScanner) (model.Case, error) {
	var (
		c        model.Case
		caseNo   sql.NullString
		name     sql.NullString
		age      sql.NullInt64
		address  sql.NullString
		father   sql.NullString
		mother   sql.NullString
		aadhar   sql.NullString
		officer  sql.NullString
		crimeTy  sql.NullString
		crimeDet sql.NullString
		finger   sql.NullString
		judge    sql.NullString
		verdict  sql.NullString
		photo    sql.NullString
		status   sql.NullString
	)
	if err := s.Scan(&c.ID, &caseNo, &name, &age, &address, &father, &mother,
		&aadhar, &officer, &crimeTy, &crimeDet, &finger,
		&judge, &verdict, &photo, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return model.Case{}, err
	}
	c.CaseNo = caseNo.String
	c.Name = name.String
	c.Age = int(age.Int64)
	c.Address = address.String
	c.FatherName = father.String
	c.MotherName = mother.String
	c.AadharNo = aadhar.String
	c.OfficerName = officer.String
	c.CrimeType = crimeTy.String
	c.CrimeDetails = crimeDet.String
	c.FingerDemographicDetails = finger.String
	c.JudgeName = judge.String
	c.CourtJudgement = verdict.String
	if c.CourtJudgement == "" {
		c.CourtJudgement = model.DefaultJudgement
	}
	c.PhotoBase64 = photo.String
	c.Status = status.String
	if c.Status == "" {
		c.Status = model.StatusOpen
	}
	return c, nil
}
