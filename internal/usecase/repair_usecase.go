package usecase

import (
	"context"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/logger"
)

type linkRepairer struct {
	candidateRepo domain.CandidateRepository
	interviewRepo domain.InterviewRepository
}

// NewLinkRepairer creates the repair capability used by the resolver.
// Repairs only ever fill a null user_id (the guard lives in the
// repository SQL), so calling one twice, or from two clients at once,
// leaves the same stored state as calling it once.
func NewLinkRepairer(candidateRepo domain.CandidateRepository, interviewRepo domain.InterviewRepository) domain.LinkRepairer {
	return &linkRepairer{
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
	}
}

// RepairCandidateLink backfills candidates.user_id. A failed repair is
// logged and swallowed: the caller already holds the record it needed,
// the write only speeds up future resolutions.
func (r *linkRepairer) RepairCandidateLink(ctx context.Context, candidateID string, userID string) {
	if candidateID == "" || userID == "" {
		return
	}
	if err := r.candidateRepo.LinkUser(ctx, candidateID, userID); err != nil {
		logger.Log.Warn("candidate link repair failed",
			"candidate_id", candidateID, "user_id", userID, "error", err)
	}
}

// RepairInterviewLink backfills interviews.user_id, same contract as
// RepairCandidateLink.
func (r *linkRepairer) RepairInterviewLink(ctx context.Context, interviewID string, userID string) {
	if interviewID == "" || userID == "" {
		return
	}
	if err := r.interviewRepo.LinkUser(ctx, interviewID, userID); err != nil {
		logger.Log.Warn("interview link repair failed",
			"interview_id", interviewID, "user_id", userID, "error", err)
	}
}
