package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/logger"
)

// defaultScanLimit bounds the free-text fallback window. Matches older
// than the window are missed; the scan is a last resort for legacy rows
// and an unbounded version would be a full-table read on every miss.
const defaultScanLimit = 100

type resolverUsecase struct {
	interviewRepo domain.InterviewRepository
	candidateRepo domain.CandidateRepository
	repairer      domain.LinkRepairer
	scanLimit     int
}

// NewInterviewResolver builds the identity resolution engine. The
// strategy chain is ordered by decreasing trustworthiness of the match:
// exact id link, id-mediated bridge, email-mediated bridge, fuzzy text.
// Once modern data (a direct user_id link) exists it is never
// second-guessed by the noisier legacy heuristics, which also bounds
// cost since the text fallback is an unindexed scan.
func NewInterviewResolver(
	interviewRepo domain.InterviewRepository,
	candidateRepo domain.CandidateRepository,
	repairer domain.LinkRepairer,
	scanLimit int,
) domain.InterviewResolver {
	if scanLimit <= 0 {
		scanLimit = defaultScanLimit
	}
	return &resolverUsecase{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		repairer:      repairer,
		scanLimit:     scanLimit,
	}
}

type resolutionStrategy struct {
	name string
	run  func(ctx context.Context, identity domain.Identity) ([]domain.Interview, error)
}

// Resolve walks the strategy chain in order and stops at the first
// strategy that returns at least one interview. A failing strategy is
// treated as "found nothing" and logged; only when every strategy fails
// outright is the whole resolution reported as unavailable. An empty
// result with a nil error is valid: a new user with no interviews yet.
func (u *resolverUsecase) Resolve(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	strategies := []resolutionStrategy{
		{name: "direct_link", run: u.byDirectLink},
		{name: "candidate_by_user_id", run: u.byCandidateUserID},
		{name: "candidate_by_email", run: u.byCandidateEmail},
		{name: "candidate_name_text", run: u.byCandidateNameText},
	}

	failed := 0
	for _, strategy := range strategies {
		matches, err := strategy.run(ctx, identity)
		if err != nil {
			failed++
			logger.Log.Warn("resolution strategy failed",
				"strategy", strategy.name, "user_id", identity.ID, "error", err)
			continue
		}
		if len(matches) > 0 {
			logger.Log.Debug("resolution strategy matched",
				"strategy", strategy.name, "user_id", identity.ID, "count", len(matches))
			return dedupeByID(matches), nil
		}
	}

	if failed == len(strategies) {
		return nil, fmt.Errorf("resolving interviews for user %s: %w", identity.ID, domain.ErrBackendUnavailable)
	}

	// All strategies exhausted with zero matches: legitimately empty.
	return []domain.Interview{}, nil
}

// byDirectLink fetches interviews already carrying the user's id. This
// is the fast path the link repairer works toward.
func (u *resolverUsecase) byDirectLink(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	return u.interviewRepo.GetByUserID(ctx, identity.ID)
}

// byCandidateUserID bridges through the candidate row whose user_id
// points back at the user.
func (u *resolverUsecase) byCandidateUserID(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}

	interviews, err := u.interviewRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}

	u.repairInterviews(ctx, interviews, identity.ID)
	return interviews, nil
}

// byCandidateEmail bridges through the candidate row sharing the user's
// email. The candidate link itself is repaired here when missing; a
// candidate already linked to a different account is left untouched so
// a shared email can never steal someone else's link.
func (u *resolverUsecase) byCandidateEmail(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	if identity.Email == "" {
		return nil, nil
	}

	candidate, err := u.candidateRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}

	if candidate.UserID == nil {
		u.repairer.RepairCandidateLink(ctx, candidate.ID, identity.ID)
	}

	interviews, err := u.interviewRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}

	u.repairInterviews(ctx, interviews, identity.ID)
	return interviews, nil
}

// byCandidateNameText is the legacy-data fallback: a bounded window of
// interviews across all candidates, filtered client-side on the
// free-text candidate_name containing the user's email or its
// local-part. Order is preserved from the fetched window.
func (u *resolverUsecase) byCandidateNameText(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	if identity.Email == "" {
		return nil, nil
	}

	window, err := u.interviewRepo.FetchWindow(ctx, u.scanLimit)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))
	localPart := ""
	if at := strings.Index(email, "@"); at > 0 {
		localPart = email[:at]
	}

	matches := []domain.Interview{}
	for _, interview := range window {
		name := strings.ToLower(interview.CandidateName)
		if name == "" {
			continue
		}
		if strings.Contains(name, email) || (localPart != "" && strings.Contains(name, localPart)) {
			matches = append(matches, interview)
		}
	}

	u.repairInterviews(ctx, matches, identity.ID)
	return matches, nil
}

func (u *resolverUsecase) repairInterviews(ctx context.Context, interviews []domain.Interview, userID string) {
	for i := range interviews {
		if interviews[i].UserID == nil {
			u.repairer.RepairInterviewLink(ctx, interviews[i].ID, userID)
		}
	}
}

func dedupeByID(interviews []domain.Interview) []domain.Interview {
	seen := make(map[string]bool, len(interviews))
	out := interviews[:0]
	for _, interview := range interviews {
		if seen[interview.ID] {
			continue
		}
		seen[interview.ID] = true
		out = append(out, interview)
	}
	return out
}
