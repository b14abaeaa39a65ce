package usecase

import (
	"context"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/logger"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	profileRepo   domain.ProfileRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, profileRepo domain.ProfileRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		profileRepo:   profileRepo,
	}
}

// ListDirectory merges two sources of "people who can be interviewed":
// rows from the candidates table and job_seeker profiles that never got
// a candidates row. Candidate rows are decorated with profile names
// through user_id; profile-only people become synthetic entries keyed
// by the profile id, which the scheduling flow later materializes into
// a real candidates row. Every entry's name goes through the display
// name normalizer, never through ad-hoc formatting.
func (u *candidateUsecase) ListDirectory(ctx context.Context) ([]domain.CandidateOption, error) {
	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Profile decoration is best effort: the directory is still usable
	// from the candidates table alone.
	profiles, err := u.profileRepo.FetchByRole(ctx, domain.RoleJobSeeker)
	if err != nil {
		logger.Log.Warn("failed to fetch job seeker profiles for directory", "error", err)
		profiles = nil
	}

	profilesByUser := make(map[string]*domain.Profile, len(profiles))
	for i := range profiles {
		profilesByUser[profiles[i].ID] = &profiles[i]
	}

	options := []domain.CandidateOption{}
	seenUsers := make(map[string]bool)

	for i := range candidates {
		candidate := candidates[i]
		if candidate.UserID != nil {
			seenUsers[*candidate.UserID] = true
			if profile, ok := profilesByUser[*candidate.UserID]; ok {
				if candidate.FirstName == nil {
					candidate.FirstName = profile.FirstName
				}
				if candidate.LastName == nil {
					candidate.LastName = profile.LastName
				}
			}
		}
		options = append(options, formatOption(&candidate))
	}

	for i := range profiles {
		profile := &profiles[i]
		if seenUsers[profile.ID] {
			continue
		}
		// No candidates row yet: key the entry by the profile id so the
		// scheduling flow can auto-create the row under that id.
		userID := profile.ID
		synthetic := domain.Candidate{
			ID:        profile.ID,
			UserID:    &userID,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
		}
		options = append(options, formatOption(&synthetic))
	}

	return options, nil
}

// ListFormOptions is the directory filtered down to entries worth
// offering in the scheduling form; rows whose name collapsed to the
// literal fallback are hidden rather than shown as a useless
// placeholder.
func (u *candidateUsecase) ListFormOptions(ctx context.Context) ([]domain.CandidateOption, error) {
	options, err := u.ListDirectory(ctx)
	if err != nil {
		return nil, err
	}

	valid := []domain.CandidateOption{}
	for _, option := range options {
		if option.Valid() {
			valid = append(valid, option)
		}
	}
	return valid, nil
}

// ListInterviewers returns approved hr and admin profiles.
func (u *candidateUsecase) ListInterviewers(ctx context.Context) ([]domain.InterviewerOption, error) {
	profiles, err := u.profileRepo.FetchApprovedByRoles(ctx, []string{domain.RoleHR, domain.RoleAdmin})
	if err != nil {
		return nil, err
	}

	options := []domain.InterviewerOption{}
	for i := range profiles {
		profile := &profiles[i]
		name := profile.FullName()
		if name == "" {
			name = "Unnamed Interviewer"
		}
		option := domain.InterviewerOption{
			ID:   profile.ID,
			Name: name,
		}
		if profile.FirstName != nil {
			option.FirstName = *profile.FirstName
		}
		if profile.LastName != nil {
			option.LastName = *profile.LastName
		}
		options = append(options, option)
	}
	return options, nil
}

func formatOption(candidate *domain.Candidate) domain.CandidateOption {
	option := domain.CandidateOption{
		ID:     candidate.ID,
		Name:   candidate.DisplayName(),
		Email:  candidate.Email,
		UserID: candidate.UserID,
	}
	if candidate.FirstName != nil {
		option.FirstName = *candidate.FirstName
	}
	if candidate.LastName != nil {
		option.LastName = *candidate.LastName
	}
	return option
}
