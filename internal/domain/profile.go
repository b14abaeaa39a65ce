package domain

import (
	"context"
	"strings"
)

// Profile roles
const (
	RoleAdmin     = "admin"
	RoleHR        = "hr"
	RoleJobSeeker = "job_seeker"
)

// Profile is the person metadata kept one-to-one with the auth user
// (profiles.id == users.id).
type Profile struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      string  `json:"role"`
	Approved  bool    `json:"approved"`
}

// FullName joins first and last name, trimmed. Empty when both are blank.
func (p *Profile) FullName() string {
	var first, last string
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// InterviewerOption is a profile formatted for interviewer selection.
type InterviewerOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]Profile, error)
	FetchByRole(ctx context.Context, role string) ([]Profile, error)
	// FetchApprovedByRoles matches any of the given roles (disjunctive
	// filter) and only approved profiles.
	FetchApprovedByRoles(ctx context.Context, roles []string) ([]Profile, error)
}
