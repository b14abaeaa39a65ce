package usecase_test

import (
	"context"
	"testing"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectoryMergesCandidatesAndProfiles(t *testing.T) {
	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Name: "Jane Cooper", Email: "jane@co.com", UserID: ptr("u1")},
		{ID: "c2", Email: "jon.smith@x.com"},
	}}
	profiles := &fakeProfileRepo{profiles: []*domain.Profile{
		{ID: "u1", FirstName: ptr("Jane"), LastName: ptr("Cooper"), Role: domain.RoleJobSeeker},
		{ID: "u2", FirstName: ptr("Nora"), LastName: ptr("Khan"), Role: domain.RoleJobSeeker},
	}}
	uc := usecase.NewCandidateUsecase(candidates, profiles)

	options, err := uc.ListDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 3)

	byID := map[string]domain.CandidateOption{}
	for _, o := range options {
		byID[o.ID] = o
	}

	assert.Equal(t, "Jane Cooper", byID["c1"].Name)
	// No explicit name anywhere: falls back to the email local part
	assert.Equal(t, "jon.smith", byID["c2"].Name)

	// Profile without a candidates row becomes a synthetic entry keyed
	// by the profile id
	synthetic, ok := byID["u2"]
	require.True(t, ok)
	assert.Equal(t, "Nora Khan", synthetic.Name)
	require.NotNil(t, synthetic.UserID)
	assert.Equal(t, "u2", *synthetic.UserID)
}

func TestListFormOptionsHidesBrokenRows(t *testing.T) {
	candidates := &fakeCandidateRepo{candidates: []*domain.Candidate{
		{ID: "c1", Name: "Jane Cooper", Email: "jane@co.com"},
		{ID: "c2"}, // no name, no email: resolves to the literal fallback
	}}
	uc := usecase.NewCandidateUsecase(candidates, &fakeProfileRepo{})

	options, err := uc.ListFormOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "c1", options[0].ID)
}

func TestListInterviewers(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*domain.Profile{
		{ID: "p1", FirstName: ptr("Mark"), LastName: ptr("Lee"), Role: domain.RoleHR, Approved: true},
		{ID: "p2", Role: domain.RoleAdmin, Approved: true},
		{ID: "p3", FirstName: ptr("Eve"), Role: domain.RoleHR, Approved: false},
		{ID: "p4", FirstName: ptr("Sam"), Role: domain.RoleJobSeeker, Approved: true},
	}}
	uc := usecase.NewCandidateUsecase(&fakeCandidateRepo{}, profiles)

	interviewers, err := uc.ListInterviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, interviewers, 2)

	assert.Equal(t, "Mark Lee", interviewers[0].Name)
	// Nameless staff still get a readable placeholder
	assert.Equal(t, "Unnamed Interviewer", interviewers[1].Name)
}
