package memory

import (
	"context"
	"sync"
	"time"

	"go-resume-registry/internal/domain"
)

// candidateRepository is the in-process record store: a lock-guarded map plus
// a monotonic id counter. Ids are never reused, even after deletion.
type candidateRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]domain.Candidate
	order   []int64 // insertion order == ascending id
}

func NewCandidateRepository() domain.CandidateRepository {
	return &candidateRepository{
		nextID:  1,
		records: make(map[int64]domain.Candidate),
	}
}

func (r *candidateRepository) Create(_ context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Id allocation and insertion are one critical section so concurrent
	// creates can never race to the same id.
	candidate.ID = r.nextID
	r.nextID++
	candidate.CreatedAt = time.Now().UTC()

	stored := *candidate
	stored.Skills = append([]string(nil), candidate.Skills...)
	r.records[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *candidateRepository) GetByID(_ context.Context, id int64) (*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return copyOut(stored), nil
}

func (r *candidateRepository) List(_ context.Context) ([]domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]domain.Candidate, 0, len(r.order))
	for _, id := range r.order {
		candidates = append(candidates, *copyOut(r.records[id]))
	}
	return candidates, nil
}

func (r *candidateRepository) Delete(_ context.Context, id int64) (*domain.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	delete(r.records, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return copyOut(stored), nil
}

// copyOut returns a copy so callers can never mutate the stored record.
func copyOut(stored domain.Candidate) *domain.Candidate {
	out := stored
	out.Skills = append([]string(nil), stored.Skills...)
	return &out
}
