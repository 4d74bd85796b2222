package usecase

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-resume-registry/internal/domain"
	"go-resume-registry/pkg/apperror"
	"go-resume-registry/pkg/logger"
	"go-resume-registry/pkg/security"
	"go-resume-registry/pkg/validation"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	files    domain.ContentStore
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, files domain.ContentStore, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		files:    files,
		validate: validate,
	}
}

// Create validates the submission, stores the resume bytes, then creates the
// record. The record and its file are created as a unit: a content-store
// failure aborts before any record exists, and a record-store failure
// triggers a best-effort delete of the just-stored file.
func (u *candidateUsecase) Create(ctx context.Context, in domain.CreateCandidateInput, resume []byte, resumeName string) (*domain.Candidate, error) {
	if result := security.ValidateResume(resumeName, resume); !result.Valid {
		return nil, apperror.UnsupportedMedia(result.Error)
	}

	candidate, err := u.buildCandidate(in)
	if err != nil {
		return nil, err
	}

	storedPath, err := u.files.Put(ctx, resume, resumeName)
	if err != nil {
		return nil, apperror.Storage("Failed to store resume file", err)
	}
	candidate.ResumeFilename = filepath.Base(storedPath)
	candidate.ResumePath = storedPath

	if err := u.repo.Create(ctx, candidate); err != nil {
		// Compensate: don't leave an orphaned file behind. A cleanup
		// failure is logged but never masks the original error.
		if delErr := u.files.Delete(ctx, storedPath); delErr != nil {
			logger.Log.Warn("Failed to clean up orphaned resume file",
				"path", storedPath, "error", delErr)
		}
		return nil, apperror.Storage("Failed to save candidate record", err)
	}

	return candidate, nil
}

// buildCandidate parses the raw form fields into a validated Candidate.
// Nothing here has side effects; every error names the offending field.
func (u *candidateUsecase) buildCandidate(in domain.CreateCandidateInput) (*domain.Candidate, error) {
	dob, err := domain.ParseDate(in.DOB)
	if err != nil {
		return nil, apperror.Validation("DOB", "must be a date in YYYY-MM-DD format")
	}

	gradYear, err := strconv.Atoi(strings.TrimSpace(in.GraduationYear))
	if err != nil {
		return nil, apperror.Validation("Graduation_Year", "must be an integer")
	}

	years, err := strconv.ParseFloat(strings.TrimSpace(in.YearsOfExperience), 64)
	if err != nil {
		return nil, apperror.Validation("Years_of_Experience", "must be a number")
	}

	candidate := &domain.Candidate{
		FullName:          strings.TrimSpace(in.FullName),
		DOB:               dob,
		ContactNumber:     domain.NormalizeContactNumber(in.ContactNumber),
		Address:           strings.TrimSpace(in.Address),
		Qualification:     strings.TrimSpace(in.Qualification),
		GraduationYear:    gradYear,
		YearsOfExperience: years,
		Skills:            domain.ParseSkills(in.Skills),
	}

	if err := u.validate.Struct(candidate); err != nil {
		field, message := validation.Describe(err)
		return nil, apperror.Validation(field, message)
	}
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Storage("Failed to list candidates", err)
	}
	return filter.Apply(candidates), nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage("Failed to load candidate", err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

// Delete removes the record first; only then is the resume file released.
// A file-store failure after record removal is degraded to a warning since
// reintroducing a deleted record is not supported.
func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Storage("Failed to delete candidate", err)
	}
	if removed == nil {
		return apperror.NotFound("Candidate not found")
	}

	if err := u.files.Delete(ctx, removed.ResumePath); err != nil {
		logger.Log.Warn("Candidate deleted but resume file removal failed",
			"id", id, "path", removed.ResumePath, "error", err)
	}
	return nil
}
