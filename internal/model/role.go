package model

// Role is the closed set of account roles. Every dispatch on Role must
// switch over exactly these three values and reject anything else, so a
// new role forces each site to be revisited.
type Role string

const (
    RoleClerk  Role = "clerk"  // creates and edits case records
    RolePolice Role = "police" // read-only search and detail
    RoleAdmin  Role = "admin"  // full case access plus user administration
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
    switch r {
    case RoleClerk, RolePolice, RoleAdmin:
        return true
    }
    return false
}

// ParseRole normalizes and validates a raw role string.
func ParseRole(s string) (Role, bool) {
    r := Role(s)
    return r, r.Valid()
}
