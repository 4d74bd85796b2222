package domain

import "strings"

// CandidateFilter is a conjunction of optional predicates over candidates.
// A nil field imposes no constraint.
type CandidateFilter struct {
	Skill          *string
	MinExperience  *float64
	GraduationYear *int
}

func (f CandidateFilter) isEmpty() bool {
	return f.skill() == "" && f.MinExperience == nil && f.GraduationYear == nil
}

// skill returns the trimmed skill predicate, or "" when none was supplied.
// A present-but-blank skill imposes no constraint, same as an absent one.
func (f CandidateFilter) skill() string {
	if f.Skill == nil {
		return ""
	}
	return strings.TrimSpace(*f.Skill)
}

// Matches reports whether the candidate passes every supplied predicate.
// The skill predicate is an exact case-insensitive token match against the
// candidate's skills, not a substring search.
func (f CandidateFilter) Matches(c *Candidate) bool {
	if want := f.skill(); want != "" {
		found := false
		for _, skill := range c.Skills {
			if strings.EqualFold(skill, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinExperience != nil && c.YearsOfExperience < *f.MinExperience {
		return false
	}
	if f.GraduationYear != nil && c.GraduationYear != *f.GraduationYear {
		return false
	}
	return true
}

// Apply filters candidates preserving their input order. The record store
// lists in ascending id order and the filter never re-sorts.
func (f CandidateFilter) Apply(candidates []Candidate) []Candidate {
	if f.isEmpty() {
		return candidates
	}
	matched := make([]Candidate, 0, len(candidates))
	for i := range candidates {
		if f.Matches(&candidates[i]) {
			matched = append(matched, candidates[i])
		}
	}
	return matched
}
