package domain

import (
	"context"
	"time"
)

// JobApplication is reserved for a future applications feature; the
// dashboard always carries an empty list today.
type JobApplication struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardData is the unified job-seeker read-model: recommended jobs
// plus the user's resolved interviews. InterviewsUnavailable is set
// when interview resolution failed outright, so the UI can offer a
// retry instead of a bare empty state.
type DashboardData struct {
	Jobs                  []Job            `json:"jobs"`
	Applications          []JobApplication `json:"applications"`
	Interviews            []Interview      `json:"interviews"`
	InterviewsUnavailable bool             `json:"interviews_unavailable"`
}

type DashboardUsecase interface {
	// LoadDashboard re-runs in full; refreshToken is a caller-supplied
	// monotonic counter that busts any cached read-model when it changes.
	LoadDashboard(ctx context.Context, identity Identity, refreshToken int64) (*DashboardData, error)
}
