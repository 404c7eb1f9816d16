package ports

import (
	"context"
	"time"
)

// RegisterInput carries the fields needed to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserView is the sanitized user representation returned to callers.
// It never carries the password hash.
type UserView struct {
	Email     string
	Username  string
	Role      string
	CreatedAt time.Time
}

// AuthService implements registration and credential verification.
type AuthService interface {
	// Register creates a user with role "user" and persists the collection.
	Register(ctx context.Context, in RegisterInput) (*UserView, error)

	// Authenticate verifies email and password. It never mutates stored state.
	Authenticate(ctx context.Context, email, password string) (*UserView, error)

	// ListUsers returns every account, sorted by email.
	ListUsers(ctx context.Context) ([]UserView, error)

	// EnsureAdmin creates an administrator account with the given credentials
	// if the email is not yet registered. Called once at startup.
	EnsureAdmin(ctx context.Context, email, password string) error
}
