package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a registered customer or administrator. The user collection is
// keyed by email address, matched case-sensitively exactly as stored, so the
// address itself does not appear on the record.
//
// PasswordHash is a bcrypt digest. It is serialized for persistence (the store
// writes whole-collection documents) but must never be exposed through the API;
// handlers map User to a sanitized view before responding.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
