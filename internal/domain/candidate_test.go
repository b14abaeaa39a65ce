package domain_test

import (
	"testing"

	"go-interview-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCandidateDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.Candidate
		want      string
	}{
		{
			name:      "explicit name wins",
			candidate: domain.Candidate{Name: "Jane Cooper", FirstName: strPtr("Ana"), Email: "jane@co.com"},
			want:      "Jane Cooper",
		},
		{
			name:      "blank name falls through to profile names",
			candidate: domain.Candidate{Name: "  ", FirstName: strPtr("Ana"), Email: "a@x.com"},
			want:      "Ana",
		},
		{
			name:      "first and last joined",
			candidate: domain.Candidate{FirstName: strPtr("Ana"), LastName: strPtr("Gomez")},
			want:      "Ana Gomez",
		},
		{
			name:      "last name only",
			candidate: domain.Candidate{LastName: strPtr("Gomez"), Email: "g@x.com"},
			want:      "Gomez",
		},
		{
			name:      "email local part",
			candidate: domain.Candidate{Name: "", Email: "jon.smith@x.com"},
			want:      "jon.smith",
		},
		{
			name:      "all blank input",
			candidate: domain.Candidate{},
			want:      domain.UnknownCandidateName,
		},
		{
			name:      "email without local part",
			candidate: domain.Candidate{Email: "@x.com"},
			want:      domain.UnknownCandidateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.DisplayName())
		})
	}
}

func TestCandidateOptionValid(t *testing.T) {
	assert.True(t, domain.CandidateOption{Name: "Jane Cooper"}.Valid())
	assert.False(t, domain.CandidateOption{Name: domain.UnknownCandidateName}.Valid())
	assert.False(t, domain.CandidateOption{Name: "   "}.Valid())
	assert.False(t, domain.CandidateOption{}.Valid())
}

func TestProfileFullName(t *testing.T) {
	p := domain.Profile{FirstName: strPtr("Jon"), LastName: strPtr("Smith")}
	assert.Equal(t, "Jon Smith", p.FullName())

	p = domain.Profile{FirstName: strPtr("Jon")}
	assert.Equal(t, "Jon", p.FullName())

	p = domain.Profile{}
	assert.Equal(t, "", p.FullName())
}
