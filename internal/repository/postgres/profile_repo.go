package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, first_name, last_name, COALESCE(role, 'job_seeker'), COALESCE(approved, FALSE)`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Role, &p.Approved)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProfiles(rows pgx.Rows) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *profileRepository) FetchByRole(ctx context.Context, role string) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY first_name, last_name`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

// FetchApprovedByRoles builds an explicit disjunction over the given
// roles rather than a set-membership match, mirroring the or-filter the
// callers express ("hr or admin").
func (r *profileRepository) FetchApprovedByRoles(ctx context.Context, roles []string) ([]domain.Profile, error) {
	if len(roles) == 0 {
		return []domain.Profile{}, nil
	}

	conditions := make([]string, 0, len(roles))
	args := make([]any, 0, len(roles))
	for i, role := range roles {
		conditions = append(conditions, fmt.Sprintf("role = $%d", i+1))
		args = append(args, role)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM profiles WHERE (%s) AND approved = TRUE ORDER BY first_name, last_name`,
		profileColumns, strings.Join(conditions, " OR "),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}
