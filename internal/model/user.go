package model

import "time"

// Role values accepted on user records and embedded into access tokens.
// Any other value is rejected at the handler boundary before a write
// reaches the store.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the two accepted role values.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an account record as stored in the `users` table.
// Each field corresponds to a column. JSON tags are omitted on purpose:
// these structs are used internally by the repository layer, and the
// handlers define separate response types so that PasswordHash can never
// leak into an API response.
//
// Fields:
//  ID           – immutable identifier assigned at creation (UUID string).
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password, never the plaintext.
//  Role         – "admin" or "user".
//  FullName     – optional display name.
//  Phone        – optional contact phone.
//  Email        – optional contact email.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	FullName     string    // users.full_name
	Phone        string    // users.phone
	Email        string    // users.email
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
