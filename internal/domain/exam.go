package domain

import "context"

// Exam is a preparation exercise from the exam bank. Interviews
// reference selected exams through their settings metadata.
type Exam struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

type ExamRepository interface {
	Fetch(ctx context.Context) ([]Exam, error)
}

type ExamUsecase interface {
	ListExams(ctx context.Context) ([]Exam, error)
}
