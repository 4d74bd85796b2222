package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-resume-registry/internal/domain"
)

// candidateRepository persists records in postgres. The candidates table
// (scripts/schema.sql) uses a BIGSERIAL primary key, which gives the same id
// contract as the in-memory store: strictly increasing, never reused after
// deletion.
type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
	id, full_name, dob, contact_number, address, qualification,
	graduation_year, years_of_experience, skills,
	resume_filename, resume_path, created_at`

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `
		INSERT INTO candidates (
			full_name, dob, contact_number, address, qualification,
			graduation_year, years_of_experience, skills,
			resume_filename, resume_path, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		c.FullName, c.DOB.Time, c.ContactNumber, c.Address, c.Qualification,
		c.GraduationYear, c.YearsOfExperience, pq.Array(c.Skills),
		c.ResumeFilename, c.ResumePath,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
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

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

func (r *candidateRepository) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `DELETE FROM candidates WHERE id = $1 RETURNING ` + candidateColumns

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills []string

	err := row.Scan(
		&c.ID, &c.FullName, &c.DOB.Time, &c.ContactNumber, &c.Address,
		&c.Qualification, &c.GraduationYear, &c.YearsOfExperience,
		pq.Array(&skills), &c.ResumeFilename, &c.ResumePath, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}
