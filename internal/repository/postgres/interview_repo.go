package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type interviewRepository struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepository{db: db}
}

const interviewColumns = `id, date, candidate_id, COALESCE(candidate_name, ''), interviewer_id, position, status, user_id, settings, created_at, updated_at`

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	var settingsRaw []byte

	err := row.Scan(
		&iv.ID, &iv.Date, &iv.CandidateID, &iv.CandidateName,
		&iv.InterviewerID, &iv.Position, &iv.Status, &iv.UserID,
		&settingsRaw, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	iv.Settings = map[string]any{}
	if len(settingsRaw) > 0 {
		if err := json.Unmarshal(settingsRaw, &iv.Settings); err != nil {
			return nil, fmt.Errorf("failed to decode interview settings: %w", err)
		}
	}
	return &iv, nil
}

func collectInterviews(rows pgx.Rows) ([]domain.Interview, error) {
	interviews := []domain.Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return iv, nil
}

func (r *interviewRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE user_id = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *interviewRepository) GetByCandidateID(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *interviewRepository) GetByCandidateIDs(ctx context.Context, candidateIDs []string) ([]domain.Interview, error) {
	if len(candidateIDs) == 0 {
		return []domain.Interview{}, nil
	}

	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE candidate_id = ANY($1) ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, pq.Array(candidateIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

// FetchWindow returns a bounded window across all candidates for the
// free-text fallback. The order just needs to be deterministic; date
// ascending matches what every other read uses.
func (r *interviewRepository) FetchWindow(ctx context.Context, limit int) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY date ASC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *interviewRepository) Fetch(ctx context.Context) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *interviewRepository) Create(ctx context.Context, interview *domain.Interview) error {
	settings := interview.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode interview settings: %w", err)
	}

	query := `
		INSERT INTO interviews (id, date, candidate_id, candidate_name, interviewer_id, position, status, user_id, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

	_, err = r.db.Exec(ctx, query,
		interview.ID, interview.Date, interview.CandidateID, interview.CandidateName,
		interview.InterviewerID, interview.Position, interview.Status, interview.UserID,
		string(settingsJSON),
	)
	return err
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE interviews SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LinkUser fills user_id only where it is currently null, same contract
// as the candidate repository.
func (r *interviewRepository) LinkUser(ctx context.Context, id string, userID string) error {
	query := `UPDATE interviews SET user_id = $1, updated_at = NOW() WHERE id = $2 AND user_id IS NULL`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}
