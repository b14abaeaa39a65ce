package postgres

import (
	"context"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type examRepository struct {
	db *pgxpool.Pool
}

func NewExamRepository(db *pgxpool.Pool) domain.ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Fetch(ctx context.Context) ([]domain.Exam, error) {
	query := `SELECT id, title, COALESCE(difficulty, ''), COALESCE(category, '') FROM exam_bank ORDER BY category, title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []domain.Exam{}
	for rows.Next() {
		var e domain.Exam
		if err := rows.Scan(&e.ID, &e.Title, &e.Difficulty, &e.Category); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
