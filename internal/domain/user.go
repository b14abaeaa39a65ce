package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the acting user's identity, passed explicitly into every
// core entry point instead of being read from ambient session state.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AccountInfo composes the auth account with its person profile.
// Profile may be nil for accounts that never completed signup.
type AccountInfo struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile,omitempty"`
}

// UserRepository is read-only: user rows are owned by the auth system.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id string) (*AccountInfo, error)
}
