package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Candidate is a registered candidate profile together with the reference
// to its stored resume document. JSON keys follow the public API contract.
type Candidate struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"Full_Name" validate:"required,min=2,max=100"`
	DOB               Date      `json:"DOB" validate:"required,not_future"`
	ContactNumber     string    `json:"Contact_Number" validate:"required"`
	Address           string    `json:"Address" validate:"required,min=5,max=300"`
	Qualification     string    `json:"Qualification" validate:"required,min=2,max=120"`
	GraduationYear    int       `json:"Graduation_Year" validate:"required,gte=1950,lte=2100"`
	YearsOfExperience float64   `json:"Years_of_Experience" validate:"gte=0,lte=60"`
	Skills            []string  `json:"Skills" validate:"required,min=1"`
	ResumeFilename    string    `json:"resume_filename"`
	ResumePath        string    `json:"resume_path"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateCandidateInput carries the raw form fields of a create request.
// Parsing and validation happen in the usecase, before any side effect.
type CreateCandidateInput struct {
	FullName          string
	DOB               string
	ContactNumber     string
	Address           string
	Qualification     string
	GraduationYear    string
	YearsOfExperience string
	Skills            string
}

// CandidateRepository owns the record collection and identifier assignment.
// Ids are strictly increasing and never reused, even after deletion.
type CandidateRepository interface {
	// Create assigns the next id, stamps CreatedAt and stores the record.
	Create(ctx context.Context, candidate *Candidate) error
	// GetByID returns (nil, nil) when the id is not present.
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	// List returns all records in ascending id order.
	List(ctx context.Context) ([]Candidate, error)
	// Delete removes the record and returns it so the caller can release
	// the associated resume file. Returns (nil, nil) when absent.
	Delete(ctx context.Context, id int64) (*Candidate, error)
}

// ContentStore is the durable byte storage holding uploaded resumes.
type ContentStore interface {
	// Put stores data under a name derived from suggestedName and returns
	// the opaque path used to delete the bytes later.
	Put(ctx context.Context, data []byte, suggestedName string) (string, error)
	Delete(ctx context.Context, storedPath string) error
}

type CandidateUsecase interface {
	Create(ctx context.Context, in CreateCandidateInput, resume []byte, resumeName string) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Delete(ctx context.Context, id int64) error
}

const dateLayout = "2006-01-02"

// Date is a calendar date (no time component) serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseSkills splits a comma-separated skills string into tokens: trimmed,
// empty tokens discarded, case-insensitive duplicates dropped keeping the
// first spelling.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}

// NormalizeContactNumber strips everything except digits.
func NormalizeContactNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
