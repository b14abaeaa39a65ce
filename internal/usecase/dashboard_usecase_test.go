package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type stubResolver struct {
	interviews []domain.Interview
	err        error
}

func (s *stubResolver) Resolve(ctx context.Context, identity domain.Identity) ([]domain.Interview, error) {
	return s.interviews, s.err
}

func TestLoadDashboard(t *testing.T) {
	identity := domain.Identity{ID: "u1", Email: "jane@co.com"}

	t.Run("merges jobs and resolved interviews", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 5).Return([]domain.Job{{ID: "j1", Title: "Engineer"}}, nil)
		resolver := &stubResolver{interviews: []domain.Interview{{ID: "i1"}}}

		uc := usecase.NewDashboardUsecase(jobRepo, resolver, nil, 0, 5)
		data, err := uc.LoadDashboard(context.Background(), identity, 0)
		require.NoError(t, err)

		assert.Len(t, data.Jobs, 1)
		assert.Len(t, data.Interviews, 1)
		assert.NotNil(t, data.Applications)
		assert.Empty(t, data.Applications)
		assert.False(t, data.InterviewsUnavailable)
	})

	t.Run("job fetch failure is a hard error", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 5).Return(nil, errors.New("connection refused"))
		resolver := &stubResolver{interviews: []domain.Interview{{ID: "i1"}}}

		uc := usecase.NewDashboardUsecase(jobRepo, resolver, nil, 0, 5)
		_, err := uc.LoadDashboard(context.Background(), identity, 0)
		assert.Error(t, err)
	})

	t.Run("resolver failure degrades to empty with flag", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 5).Return([]domain.Job{{ID: "j1"}}, nil)
		resolver := &stubResolver{err: fmt.Errorf("resolving: %w", domain.ErrBackendUnavailable)}

		uc := usecase.NewDashboardUsecase(jobRepo, resolver, nil, 0, 5)
		data, err := uc.LoadDashboard(context.Background(), identity, 0)
		require.NoError(t, err)

		assert.Len(t, data.Jobs, 1)
		assert.Empty(t, data.Interviews)
		assert.True(t, data.InterviewsUnavailable)
	})

	t.Run("cancelled context discards the result", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 5).Return([]domain.Job{}, nil)
		resolver := &stubResolver{}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		uc := usecase.NewDashboardUsecase(jobRepo, resolver, nil, 0, 5)
		_, err := uc.LoadDashboard(ctx, identity, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
