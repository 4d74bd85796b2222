package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-registry/internal/domain"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func sampleCandidates() []domain.Candidate {
	return []domain.Candidate{
		{ID: 1, Skills: []string{"python", "SQL"}, YearsOfExperience: 0, GraduationYear: 2025},
		{ID: 2, Skills: []string{"Java"}, YearsOfExperience: 3, GraduationYear: 2025},
		{ID: 3, Skills: []string{"Python", "FastAPI"}, YearsOfExperience: 2, GraduationYear: 2020},
	}
}

func ids(candidates []domain.Candidate) []int64 {
	out := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	candidates := sampleCandidates()

	t.Run("Empty filter returns the full list unchanged", func(t *testing.T) {
		got := domain.CandidateFilter{}.Apply(candidates)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))
	})

	t.Run("A blank skill imposes no constraint, same as an absent one", func(t *testing.T) {
		got := domain.CandidateFilter{Skill: strPtr("")}.Apply(candidates)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))

		got = domain.CandidateFilter{Skill: strPtr("   ")}.Apply(candidates)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))

		// Blank skill combined with a real predicate: only the latter applies
		got = domain.CandidateFilter{Skill: strPtr(""), GraduationYear: intPtr(2020)}.Apply(candidates)
		assert.Equal(t, []int64{3}, ids(got))
	})

	t.Run("Skill matches tokens case-insensitively, never substrings", func(t *testing.T) {
		got := domain.CandidateFilter{Skill: strPtr("Python")}.Apply(candidates)
		assert.Equal(t, []int64{1, 3}, ids(got))

		// a prefix of a token must not match
		got = domain.CandidateFilter{Skill: strPtr("Py")}.Apply(candidates)
		assert.Empty(t, got)
	})

	t.Run("MinExperience is an inclusive lower bound", func(t *testing.T) {
		got := domain.CandidateFilter{MinExperience: f64Ptr(2)}.Apply(candidates)
		assert.Equal(t, []int64{2, 3}, ids(got))
	})

	t.Run("GraduationYear matches exactly", func(t *testing.T) {
		got := domain.CandidateFilter{GraduationYear: intPtr(2025)}.Apply(candidates)
		assert.Equal(t, []int64{1, 2}, ids(got))
	})

	t.Run("Supplied predicates combine as a conjunction", func(t *testing.T) {
		got := domain.CandidateFilter{
			Skill:          strPtr("python"),
			MinExperience:  f64Ptr(1),
			GraduationYear: intPtr(2020),
		}.Apply(candidates)
		assert.Equal(t, []int64{3}, ids(got))
	})

	t.Run("Input ordering is preserved, never re-sorted", func(t *testing.T) {
		got := domain.CandidateFilter{MinExperience: f64Ptr(0)}.Apply(candidates)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))
	})
}
