package domain

import (
	"context"
	"time"
)

type Job struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type JobRepository interface {
	Fetch(ctx context.Context, limit int) ([]Job, error)
}
