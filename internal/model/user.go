package model

import "time"

// User is the resolved application identity: the credential row from the
// `users` table joined with its profile row from the `profiles` table.
// The json tags match the shape the dashboards consume.
//
// Fields:
//  ID        – primary key identifier assigned at credential creation.
//  Email     – unique login email.
//  Username  – display/login handle; defaults to the email when the
//              profile row carries none.
//  FullName  – display name; defaults to "No Name" when absent.
//  Role      – clerk, police or admin.
//  CreatedAt – timestamp of credential creation.
//  UpdatedAt – timestamp of last update.
type User struct {
    ID        uint64    `json:"id"`
    Email     string    `json:"email"`
    Username  string    `json:"username"`
    FullName  string    `json:"fullName"`
    Role      Role      `json:"role"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the token value is stored.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    uint64     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
