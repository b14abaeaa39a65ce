package domain

import (
	"context"
	"strings"
	"time"
)

// UnknownCandidateName is the terminal display-name fallback for
// candidate rows that carry no usable name anywhere.
const UnknownCandidateName = "Unknown Candidate"

// Candidate is a person being interviewed. UserID back-references the
// auth account and is NOT guaranteed to be populated; the resolver
// works around that and the link repairer fills it in lazily.
type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserID    *string   `json:"user_id,omitempty"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName derives a single human-readable name from the candidate's
// optional fields, in fixed priority: explicit name, first/last name,
// email local-part, literal fallback. Total, never empty. Every call
// site that shows or selects a candidate must go through this.
func (c *Candidate) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}

	var first, last string
	if c.FirstName != nil {
		first = strings.TrimSpace(*c.FirstName)
	}
	if c.LastName != nil {
		last = strings.TrimSpace(*c.LastName)
	}
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}

	if local := emailLocalPart(c.Email); local != "" {
		return local
	}

	return UnknownCandidateName
}

func emailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return ""
}

// CandidateOption is a candidate entry formatted for selection lists
// (e.g. the scheduling form), with the display name already resolved.
type CandidateOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	UserID    *string `json:"user_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
}

// Valid reports whether the option is worth presenting at all. Entries
// whose resolved name collapsed to the literal fallback are obviously
// broken rows and are hidden from list views.
func (o CandidateOption) Valid() bool {
	name := strings.TrimSpace(o.Name)
	return name != "" && name != UnknownCandidateName
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByUserID(ctx context.Context, userID string) (*Candidate, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	GetByIDs(ctx context.Context, ids []string) ([]Candidate, error)
	Fetch(ctx context.Context) ([]Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	// LinkUser sets user_id only where it is currently null.
	LinkUser(ctx context.Context, id string, userID string) error
}

type CandidateUsecase interface {
	ListDirectory(ctx context.Context) ([]CandidateOption, error)
	ListFormOptions(ctx context.Context) ([]CandidateOption, error)
	ListInterviewers(ctx context.Context) ([]InterviewerOption, error)
}
