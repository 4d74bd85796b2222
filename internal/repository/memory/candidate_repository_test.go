package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-registry/internal/domain"
	"go-resume-registry/internal/repository/memory"
)

func newCandidate(name string) *domain.Candidate {
	return &domain.Candidate{
		FullName:   name,
		Skills:     []string{"Go"},
		ResumePath: "uploads/" + name + ".pdf",
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := memory.NewCandidateRepository()
	ctx := context.Background()

	a := newCandidate("A")
	b := newCandidate("B")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	t.Run("Ids are never reused after deletion", func(t *testing.T) {
		_, err := repo.Delete(ctx, b.ID)
		require.NoError(t, err)

		c := newCandidate("C")
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, int64(3), c.ID)
	})
}

func TestConcurrentCreatesNeverShareAnID(t *testing.T) {
	repo := memory.NewCandidateRepository()
	ctx := context.Background()

	const workers = 50
	created := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newCandidate("worker")
			if err := repo.Create(ctx, c); err == nil {
				created <- c.ID
			}
		}()
	}
	wg.Wait()
	close(created)

	seen := make(map[int64]bool, workers)
	for id := range created {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, workers)
}

func TestListReturnsAscendingIDOrder(t *testing.T) {
	repo := memory.NewCandidateRepository()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, newCandidate(name)))
	}
	_, err := repo.Delete(ctx, 2)
	require.NoError(t, err)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, int64(3), listed[1].ID)
}

func TestGetByID(t *testing.T) {
	repo := memory.NewCandidateRepository()
	ctx := context.Background()

	created := newCandidate("A")
	require.NoError(t, repo.Create(ctx, created))

	t.Run("Returns the stored record", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "A", got.FullName)
	})

	t.Run("Returns nil for a missing id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Callers cannot mutate stored state through the copy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		got.Skills[0] = "mutated"
		got.FullName = "mutated"

		again, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", again.FullName)
		assert.Equal(t, []string{"Go"}, again.Skills)
	})
}

func TestDelete(t *testing.T) {
	repo := memory.NewCandidateRepository()
	ctx := context.Background()

	created := newCandidate("A")
	require.NoError(t, repo.Create(ctx, created))

	t.Run("Returns the removed record with its resume path", func(t *testing.T) {
		removed, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, removed)
		assert.Equal(t, "uploads/A.pdf", removed.ResumePath)

		got, err := repo.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Returns nil for a missing id", func(t *testing.T) {
		removed, err := repo.Delete(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, removed)
	})
}
