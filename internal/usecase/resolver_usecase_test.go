package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Stateful in-memory fakes. The resolver's interesting behavior is the
// writes it leaves behind, so the fakes track stored state instead of
// just canned returns.

type fakeCandidateRepo struct {
	candidates []*domain.Candidate
	err        error
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) GetByUserID(_ context.Context, userID string) (*domain.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.candidates {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.candidates {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Candidate{}
	for _, c := range f.candidates {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, *c)
			}
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) Fetch(_ context.Context) ([]domain.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Candidate{}
	for _, c := range f.candidates {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCandidateRepo) Create(_ context.Context, candidate *domain.Candidate) error {
	if f.err != nil {
		return f.err
	}
	stored := *candidate
	f.candidates = append(f.candidates, &stored)
	return nil
}

func (f *fakeCandidateRepo) LinkUser(_ context.Context, id string, userID string) error {
	if f.err != nil {
		return f.err
	}
	for _, c := range f.candidates {
		if c.ID == id && c.UserID == nil {
			uid := userID
			c.UserID = &uid
		}
	}
	return nil
}

type fakeInterviewRepo struct {
	interviews []*domain.Interview
	err        error
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id string) (*domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, iv := range f.interviews {
		if iv.ID == id {
			return iv, nil
		}
	}
	return nil, nil
}

func (f *fakeInterviewRepo) GetByUserID(_ context.Context, userID string) ([]domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Interview{}
	for _, iv := range f.interviews {
		if iv.UserID != nil && *iv.UserID == userID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) GetByCandidateID(_ context.Context, candidateID string) ([]domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Interview{}
	for _, iv := range f.interviews {
		if iv.CandidateID != nil && *iv.CandidateID == candidateID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) GetByCandidateIDs(_ context.Context, candidateIDs []string) ([]domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Interview{}
	for _, iv := range f.interviews {
		for _, id := range candidateIDs {
			if iv.CandidateID != nil && *iv.CandidateID == id {
				out = append(out, *iv)
			}
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) FetchWindow(_ context.Context, limit int) ([]domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Interview{}
	for _, iv := range f.interviews {
		if len(out) >= limit {
			break
		}
		out = append(out, *iv)
	}
	return out, nil
}

func (f *fakeInterviewRepo) Fetch(_ context.Context) ([]domain.Interview, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Interview{}
	for _, iv := range f.interviews {
		out = append(out, *iv)
	}
	return out, nil
}

func (f *fakeInterviewRepo) Create(_ context.Context, interview *domain.Interview) error {
	if f.err != nil {
		return f.err
	}
	stored := *interview
	f.interviews = append(f.interviews, &stored)
	return nil
}

func (f *fakeInterviewRepo) UpdateStatus(_ context.Context, id string, status string) error {
	if f.err != nil {
		return f.err
	}
	for _, iv := range f.interviews {
		if iv.ID == id {
			iv.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInterviewRepo) LinkUser(_ context.Context, id string, userID string) error {
	if f.err != nil {
		return f.err
	}
	for _, iv := range f.interviews {
		if iv.ID == id && iv.UserID == nil {
			uid := userID
			iv.UserID = &uid
		}
	}
	return nil
}

func newResolver(candidates *fakeCandidateRepo, interviews *fakeInterviewRepo) domain.InterviewResolver {
	repairer := usecase.NewLinkRepairer(candidates, interviews)
	return usecase.NewInterviewResolver(interviews, candidates, repairer, 100)
}

func ptr(s string) *string { return &s }

func TestResolvePriorityOrder(t *testing.T) {
	// The user has a modern direct link AND an unrelated legacy interview
	// whose candidate_name happens to contain the user's email. Only the
	// direct match may be returned: the fuzzy fallback never runs once a
	// higher strategy succeeds.
	identity := domain.Identity{ID: "u1", Email: "jane@co.com"}

	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", UserID: ptr("u1"), Position: "Engineer", Date: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "i2", CandidateName: "jane@co.com", Position: "Designer", Date: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)},
	}}
	resolver := newResolver(&fakeCandidateRepo{}, interviews)

	result, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "i1", result[0].ID)

	// The unrelated interview was never touched by a repair
	assert.Nil(t, interviews.interviews[1].UserID)
}

func TestResolveCandidateBridgeByUserID(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "jane@co.com"}

	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Email: "jane@co.com", UserID: ptr("u1")},
	}}
	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", CandidateID: ptr("c1"), Position: "Engineer"},
	}}
	resolver := newResolver(candidates, interviews)

	result, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "i1", result[0].ID)

	// Missing interview link was repaired for the next resolution
	require.NotNil(t, interviews.interviews[0].UserID)
	assert.Equal(t, "u1", *interviews.interviews[0].UserID)
}

func TestResolveBridgeRepairPropagation(t *testing.T) {
	// End-to-end legacy scenario: no direct link, candidate matched by
	// email with a null user_id, one interview hanging off it.
	identity := domain.Identity{ID: "u1", Email: "jane@co.com"}

	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Email: "jane@co.com"},
	}}
	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", CandidateID: ptr("c1"), CandidateName: "jane@co.com", Position: "Engineer", Status: domain.InterviewStatusScheduled},
	}}
	resolver := newResolver(candidates, interviews)

	result, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "i1", result[0].ID)

	require.NotNil(t, candidates.candidates[0].UserID)
	assert.Equal(t, "u1", *candidates.candidates[0].UserID)
	require.NotNil(t, interviews.interviews[0].UserID)
	assert.Equal(t, "u1", *interviews.interviews[0].UserID)
}

func TestResolveEmailMatchIsCaseInsensitive(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "Jane@CO.com"}

	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Email: "jane@co.com"},
	}}
	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", CandidateID: ptr("c1")},
	}}
	resolver := newResolver(candidates, interviews)

	result, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestResolveFreeTextFallback(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "jon.smith@x.com"}

	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", CandidateName: "Jon.Smith", Position: "Engineer"},
		{ID: "i2", CandidateName: "Somebody Else", Position: "Designer"},
		{ID: "i3", CandidateName: "jon.smith@x.com", Position: "Manager"},
	}}
	resolver := newResolver(&fakeCandidateRepo{}, interviews)

	result, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "i1", result[0].ID)
	assert.Equal(t, "i3", result[1].ID)

	// Every match got its link repaired
	require.NotNil(t, interviews.interviews[0].UserID)
	assert.Equal(t, "u1", *interviews.interviews[0].UserID)
	assert.Nil(t, interviews.interviews[1].UserID)
	require.NotNil(t, interviews.interviews[2].UserID)
}

func TestResolveNeverOverwritesExistingLink(t *testing.T) {
	// A different user shares the candidate's email. The candidate's
	// existing link must survive, otherwise a shared mailbox could steal
	// another account's interviews on the next fast-path lookup.
	identity := domain.Identity{ID: "u2", Email: "shared@co.com"}

	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Email: "shared@co.com", UserID: ptr("u1")},
	}}
	interviews := &fakeInterviewRepo{}
	resolver := newResolver(candidates, interviews)

	_, err := resolver.Resolve(context.Background(), identity)
	require.NoError(t, err)

	require.NotNil(t, candidates.candidates[0].UserID)
	assert.Equal(t, "u1", *candidates.candidates[0].UserID)
}

func TestResolveEmptyVersusError(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "jane@co.com"}

	t.Run("all strategies empty is a valid outcome", func(t *testing.T) {
		resolver := newResolver(&fakeCandidateRepo{}, &fakeInterviewRepo{})

		result, err := resolver.Resolve(context.Background(), identity)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("every backend call failing is unavailable", func(t *testing.T) {
		backendErr := errors.New("connection refused")
		resolver := newResolver(
			&fakeCandidateRepo{err: backendErr},
			&fakeInterviewRepo{err: backendErr},
		)

		_, err := resolver.Resolve(context.Background(), identity)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})

	t.Run("a single failing strategy degrades to empty", func(t *testing.T) {
		// Interview reads work, candidate reads fail: the chain should
		// still complete and report empty rather than unavailable.
		backendErr := errors.New("connection refused")
		resolver := newResolver(
			&fakeCandidateRepo{err: backendErr},
			&fakeInterviewRepo{},
		)

		result, err := resolver.Resolve(context.Background(), identity)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestRepairIdempotence(t *testing.T) {
	interviews := &fakeInterviewRepo{interviews: []*domain.Interview{
		{ID: "i1", CandidateName: "jane"},
	}}
	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Email: "jane@co.com"},
	}}
	repairer := usecase.NewLinkRepairer(candidates, interviews)
	ctx := context.Background()

	repairer.RepairInterviewLink(ctx, "i1", "u1")
	repairer.RepairInterviewLink(ctx, "i1", "u1")
	require.NotNil(t, interviews.interviews[0].UserID)
	assert.Equal(t, "u1", *interviews.interviews[0].UserID)

	// A later repair for a different user is a no-op, not an overwrite
	repairer.RepairInterviewLink(ctx, "i1", "u2")
	assert.Equal(t, "u1", *interviews.interviews[0].UserID)

	repairer.RepairCandidateLink(ctx, "c1", "u1")
	repairer.RepairCandidateLink(ctx, "c1", "u1")
	require.NotNil(t, candidates.candidates[0].UserID)
	assert.Equal(t, "u1", *candidates.candidates[0].UserID)
}
