package postgres

import (
	"context"
	"errors"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, COALESCE(name, ''), COALESCE(email, ''), user_id, first_name, last_name, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.UserID,
		&c.FirstName, &c.LastName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// GetByEmail matches case-insensitively. Historical rows can duplicate
// an email; the oldest row wins so repeated lookups stay deterministic.
func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE LOWER(email) = LOWER($1) ORDER BY created_at ASC LIMIT 1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Candidate, error) {
	if len(ids) == 0 {
		return []domain.Candidate{}, nil
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func (r *candidateRepository) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, email, user_id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Email,
		candidate.UserID, candidate.FirstName, candidate.LastName,
	)
	return err
}

// LinkUser fills user_id only where it is currently null. The guard is
// in the SQL itself so concurrent repairs cannot overwrite an existing
// link, and redundant calls are no-ops.
func (r *candidateRepository) LinkUser(ctx context.Context, id string, userID string) error {
	query := `UPDATE candidates SET user_id = $1, updated_at = NOW() WHERE id = $2 AND user_id IS NULL`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}
