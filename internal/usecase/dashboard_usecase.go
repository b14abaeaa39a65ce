package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type dashboardUsecase struct {
	jobRepo  domain.JobRepository
	resolver domain.InterviewResolver
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
	jobLimit int
}

// NewDashboardUsecase composes the job-seeker dashboard read-model.
// cache may be nil; caching is an optimization and never required.
func NewDashboardUsecase(
	jobRepo domain.JobRepository,
	resolver domain.InterviewResolver,
	cache *redis.Client,
	cacheTTL time.Duration,
	jobLimit int,
) domain.DashboardUsecase {
	if jobLimit <= 0 {
		jobLimit = 5
	}
	return &dashboardUsecase{
		jobRepo:  jobRepo,
		resolver: resolver,
		cache:    cache,
		cacheTTL: cacheTTL,
		jobLimit: jobLimit,
	}
}

// LoadDashboard fetches job listings and resolved interviews
// concurrently (the two are independent) and merges them. A job-fetch
// failure is the only hard error since jobs have no fallback chain;
// interview resolution failing degrades to an empty list plus the
// InterviewsUnavailable flag. The refresh token is part of the cache
// key, so bumping it always forces a full re-run.
func (u *dashboardUsecase) LoadDashboard(ctx context.Context, identity domain.Identity, refreshToken int64) (*domain.DashboardData, error) {
	cacheKey := fmt.Sprintf("dashboard:%s:%d", identity.ID, refreshToken)
	if data := u.fromCache(ctx, cacheKey); data != nil {
		return data, nil
	}

	var (
		wg         sync.WaitGroup
		jobs       []domain.Job
		jobsErr    error
		interviews []domain.Interview
		resolveErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		jobs, jobsErr = u.jobRepo.Fetch(ctx, u.jobLimit)
	}()
	go func() {
		defer wg.Done()
		interviews, resolveErr = u.resolver.Resolve(ctx, identity)
	}()
	wg.Wait()

	// Caller's session changed mid-flight (logout, user switch): the
	// result must be discarded, not cached under the old identity.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if jobsErr != nil {
		return nil, fmt.Errorf("fetching job listings: %w", jobsErr)
	}

	data := &domain.DashboardData{
		Jobs:         jobs,
		Applications: []domain.JobApplication{}, // reserved for future use
		Interviews:   interviews,
	}
	if resolveErr != nil {
		logger.Log.Warn("interview resolution unavailable, degrading dashboard",
			"user_id", identity.ID, "error", resolveErr)
		data.Interviews = []domain.Interview{}
		data.InterviewsUnavailable = true
	}

	// Do not cache degraded results: the next load should retry.
	if !data.InterviewsUnavailable {
		u.toCache(ctx, cacheKey, data)
	}
	return data, nil
}

func (u *dashboardUsecase) fromCache(ctx context.Context, key string) *domain.DashboardData {
	if u.cache == nil || u.cacheTTL <= 0 {
		return nil
	}

	payload, err := u.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Debug("dashboard cache read failed", "key", key, "error", err)
		}
		return nil
	}

	var data domain.DashboardData
	if err := json.Unmarshal(payload, &data); err != nil {
		logger.Log.Debug("dashboard cache decode failed", "key", key, "error", err)
		return nil
	}
	return &data
}

func (u *dashboardUsecase) toCache(ctx context.Context, key string, data *domain.DashboardData) {
	if u.cache == nil || u.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, payload, u.cacheTTL).Err(); err != nil {
		logger.Log.Debug("dashboard cache write failed", "key", key, "error", err)
	}
}
