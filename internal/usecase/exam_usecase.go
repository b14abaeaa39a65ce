package usecase

import (
	"context"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
)

type examUsecase struct {
	examRepo domain.ExamRepository
}

func NewExamUsecase(examRepo domain.ExamRepository) domain.ExamUsecase {
	return &examUsecase{examRepo: examRepo}
}

func (u *examUsecase) ListExams(ctx context.Context) ([]domain.Exam, error) {
	exams, err := u.examRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return exams, nil
}
