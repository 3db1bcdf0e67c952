package repository

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/iliyamo/case-record-tracker/internal/model"
)

// ProfileRepo persists the profile rows paired with credentials. A profile
// is keyed by the credential's user_id; the pair of tables mirrors the
// auth-provider/profile-document split of the original deployment, which is
// why a credential can exist without a profile (recovered at sign-in) but
// never the other way around.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// Create writes the profile row for a freshly created credential. This is
// step (b) of provisioning.
func (r *ProfileRepo) Create(ctx context.Context, userID uint64, username, fullName string, role model.Role) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO profiles (user_id, username, full_name, role) VALUES (?,?,?,?)",
		userID, username, fullName, string(role))
	return err
}

// GetByUserID resolves the full identity for a credential id. Missing
// profile fields fall back to defined values so a partially written row
// never yields an empty identity: full_name -> "No Name", username ->
// the credential's email.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uint64) (model.User, error) {
	var (
		u        model.User
		username sql.NullString
		fullName sql.NullString
		role     sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT u.id, u.email, p.username, p.full_name, p.role, u.created_at, u.updated_at
		 FROM users u JOIN profiles p ON p.user_id = u.id
		 WHERE u.id=? LIMIT 1`,
		userID).Scan(&u.ID, &u.Email, &username, &fullName, &role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a missing credential from a missing profile so the
		// identity middleware can pick the right recovery.
		var n int
		if e := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE id=?", userID).Scan(&n); e == nil && n > 0 {
			return model.User{}, ErrProfileNotFound
		}
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Username = username.String
	if u.Username == "" {
		u.Username = u.Email
	}
	u.FullName = fullName.String
	if u.FullName == "" {
		u.FullName = "No Name"
	}
	u.Role = model.Role(role.String)
	return u, nil
}

// List returns all users joined with their profiles, ordered by id. Rows
// with a missing profile are skipped: they are inconsistent accounts, not
// listable users.
func (r *ProfileRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT u.id, u.email, p.username, p.full_name, p.role, u.created_at, u.updated_at
		 FROM users u JOIN profiles p ON p.user_id = u.id
		 ORDER BY u.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0, 16)
	for rows.Next() {
		var (
			u        model.User
			username sql.NullString
			fullName sql.NullString
			role     sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Email, &username, &fullName, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.Username = username.String
		if u.Username == "" {
			u.Username = u.Email
		}
		u.FullName = fullName.String
		if u.FullName == "" {
			u.FullName = "No Name"
		}
		u.Role = model.Role(role.String)
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateRole reassigns a user's role. It is the only mutating path for an
// existing account and is idempotent: setting the current role again
// succeeds without changing anything observable.
func (r *ProfileRepo) UpdateRole(ctx context.Context, userID uint64, role model.Role) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE profiles SET role=? WHERE user_id=?",
		string(role), userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports zero affected rows both for a missing row and for
		// a no-op write of the same value; only the former is an error.
		var count int
		if e := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE user_id=?", userID).Scan(&count); e == nil && count == 0 {
			return ErrProfileNotFound
		}
	}
	return nil
}

// ClerkNames returns the deduplicated, lexicographically sorted display
// names of all clerk-role users: full_name, or username when the full name
// is absent. The list is derived from user accounts, independent of which
// officer names actually appear on case records.
func (r *ProfileRepo) ClerkNames(ctx context.Context) ([]string, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(users))
	names := make([]string, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleClerk {
			continue
		}
		name := strings.TrimSpace(u.FullName)
		if name == "" || name == "No Name" {
			name = u.Username
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
