package usecase

import (
	"context"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	candidateRepo domain.CandidateRepository
	profileRepo   domain.ProfileRepository
	resolver      domain.InterviewResolver
	validate      *validator.Validate
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	candidateRepo domain.CandidateRepository,
	profileRepo domain.ProfileRepository,
	resolver domain.InterviewResolver,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		profileRepo:   profileRepo,
		resolver:      resolver,
		validate:      validate,
	}
}

// Schedule creates a new interview. The selected candidate id may point
// at a job_seeker profile that has no candidates row yet (the directory
// lists those synthetically); in that case a candidates row is created
// under the selected id before the interview references it. The stamped
// candidate_name always comes from the display name normalizer so the
// snapshot matches what every list view shows.
func (u *interviewUsecase) Schedule(ctx context.Context, input domain.ScheduleInterviewInput) (*domain.Interview, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	status := input.Status
	if status == "" {
		status = domain.InterviewStatusScheduled
	}
	if !domain.ValidInterviewStatus(status) {
		return nil, apperror.BadRequest("Invalid interview status")
	}

	candidate, err := u.candidateRepo.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		candidate, err = u.materializeCandidate(ctx, input.CandidateID)
		if err != nil {
			return nil, err
		}
	}

	candidateID := candidate.ID
	interview := &domain.Interview{
		ID:            uuid.NewString(),
		Date:          input.Date,
		CandidateID:   &candidateID,
		CandidateName: candidate.DisplayName(),
		InterviewerID: input.InterviewerID,
		Position:      input.Position,
		Status:        status,
		UserID:        candidate.UserID,
		Settings:      input.Settings,
	}

	if err := u.interviewRepo.Create(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

// materializeCandidate turns a profile-only directory entry into a real
// candidates row, keyed by the selected id so the entry stays stable.
func (u *interviewUsecase) materializeCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.BadRequest("Selected candidate does not exist")
	}

	userID := profile.ID
	candidate := &domain.Candidate{
		ID:        id,
		Name:      profile.FullName(),
		UserID:    &userID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}
	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("auto-created candidate record for job seeker",
		"candidate_id", candidate.ID, "user_id", userID)
	return candidate, nil
}

// UpdateStatus performs the HR status edit (Scheduled to Completed or
// Cancelled).
func (u *interviewUsecase) UpdateStatus(ctx context.Context, id string, status string) error {
	if !domain.ValidInterviewStatus(status) {
		return apperror.BadRequest("Invalid interview status")
	}

	if err := u.interviewRepo.UpdateStatus(ctx, id, status); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *interviewUsecase) GetDetails(ctx context.Context, id string) (*domain.Interview, error) {
	interview, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if interview == nil {
		return nil, apperror.NotFound("Interview not found")
	}
	return interview, nil
}

// ListAll is the HR management view: every interview, decorated with
// candidate and interviewer names fetched in bulk. Decoration is best
// effort; an undecorated list beats no list.
func (u *interviewUsecase) ListAll(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidateIDs := []string{}
	interviewerIDs := []string{}
	seenCandidates := map[string]bool{}
	seenInterviewers := map[string]bool{}
	for i := range interviews {
		if id := interviews[i].CandidateID; id != nil && !seenCandidates[*id] {
			seenCandidates[*id] = true
			candidateIDs = append(candidateIDs, *id)
		}
		if id := interviews[i].InterviewerID; id != nil && !seenInterviewers[*id] {
			seenInterviewers[*id] = true
			interviewerIDs = append(interviewerIDs, *id)
		}
	}

	candidatesByID := map[string]*domain.Candidate{}
	if candidates, err := u.candidateRepo.GetByIDs(ctx, candidateIDs); err != nil {
		logger.Log.Warn("failed to fetch candidates for interview list", "error", err)
	} else {
		for i := range candidates {
			candidatesByID[candidates[i].ID] = &candidates[i]
		}
	}

	profilesByID := map[string]*domain.Profile{}
	if profiles, err := u.profileRepo.GetByIDs(ctx, interviewerIDs); err != nil {
		logger.Log.Warn("failed to fetch interviewer profiles for interview list", "error", err)
	} else {
		for i := range profiles {
			profilesByID[profiles[i].ID] = &profiles[i]
		}
	}

	for i := range interviews {
		interview := &interviews[i]
		if interview.CandidateName == "" && interview.CandidateID != nil {
			if candidate, ok := candidatesByID[*interview.CandidateID]; ok {
				interview.CandidateName = candidate.DisplayName()
			} else {
				interview.CandidateName = domain.UnknownCandidateName
			}
		}
		if interview.InterviewerID != nil {
			if profile, ok := profilesByID[*interview.InterviewerID]; ok {
				name := profile.FullName()
				if name == "" {
					name = "Unnamed Interviewer"
				}
				interview.InterviewerName = &name
			}
		}
	}

	return interviews, nil
}

// ListForUser resolves the interviews belonging to the acting user.
func (u *interviewUsecase) ListForUser(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	return u.resolver.Resolve(ctx, identity)
}
