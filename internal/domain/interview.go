package domain

import (
	"context"
	"time"
)

// Interview status values
const (
	InterviewStatusScheduled = "Scheduled"
	InterviewStatusCompleted = "Completed"
	InterviewStatusCancelled = "Cancelled"
)

// Interview is a scheduled interview session. CandidateName is a
// free-text snapshot stamped at creation time and may diverge from the
// candidate row's current name; on legacy rows it can be an email
// address, a display name, or blank. UserID is the direct link to the
// auth account and is repaired lazily when missing.
type Interview struct {
	ID            string         `json:"id"`
	Date          time.Time      `json:"date"`
	CandidateID   *string        `json:"candidate_id,omitempty"`
	CandidateName string         `json:"candidate_name"`
	InterviewerID *string        `json:"interviewer_id,omitempty"`
	Position      string         `json:"position"`
	Status        string         `json:"status"`
	UserID        *string        `json:"user_id,omitempty"`
	Settings      map[string]any `json:"settings"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Joined data for management list responses
	InterviewerName *string `json:"interviewer_name,omitempty"`
}

func ValidInterviewStatus(status string) bool {
	switch status {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

type InterviewRepository interface {
	GetByID(ctx context.Context, id string) (*Interview, error)
	GetByUserID(ctx context.Context, userID string) ([]Interview, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]Interview, error)
	GetByCandidateIDs(ctx context.Context, candidateIDs []string) ([]Interview, error)
	// FetchWindow returns a bounded, deterministically ordered window of
	// interviews across all candidates (date ascending, at most limit).
	FetchWindow(ctx context.Context, limit int) ([]Interview, error)
	Fetch(ctx context.Context) ([]Interview, error)
	Create(ctx context.Context, interview *Interview) error
	UpdateStatus(ctx context.Context, id string, status string) error
	// LinkUser sets user_id only where it is currently null.
	LinkUser(ctx context.Context, id string, userID string) error
}

// LinkRepairer opportunistically writes back missing linkage fields so
// future resolutions short-circuit to the fast path. Repairs are an
// optimization, not required for correctness of the current pass:
// failures are logged and swallowed, and redundant or concurrent calls
// are harmless because a repair only ever fills a null with the same
// value.
type LinkRepairer interface {
	RepairCandidateLink(ctx context.Context, candidateID string, userID string)
	RepairInterviewLink(ctx context.Context, interviewID string, userID string)
}

// InterviewResolver determines which interviews belong to the given
// authenticated user when the user/candidate/interview foreign keys are
// inconsistent or only partially populated.
type InterviewResolver interface {
	// Resolve returns the user's interviews, deduplicated by id. An empty
	// result with a nil error is a valid terminal state (a new user with
	// no interviews); an error wrapping ErrBackendUnavailable means the
	// record store could not be consulted at all.
	Resolve(ctx context.Context, identity Identity) ([]Interview, error)
}

type ScheduleInterviewInput struct {
	Date          time.Time      `json:"date" validate:"required"`
	CandidateID   string         `json:"candidate_id" validate:"required"`
	InterviewerID *string        `json:"interviewer_id,omitempty"`
	Position      string         `json:"position" validate:"required,min=2,max=100"`
	Status        string         `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
	Settings      map[string]any `json:"settings,omitempty"`
}

type InterviewUsecase interface {
	Schedule(ctx context.Context, input ScheduleInterviewInput) (*Interview, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	GetDetails(ctx context.Context, id string) (*Interview, error)
	ListAll(ctx context.Context) ([]Interview, error)
	ListForUser(ctx context.Context, identity Identity) ([]Interview, error)
}
