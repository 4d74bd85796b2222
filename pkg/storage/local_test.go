package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-registry/pkg/storage"
)

func TestLocalStorePut(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Should write bytes under a sanitized name", func(t *testing.T) {
		path, err := store.Put(ctx, []byte("%PDF data"), "my resume (final).pdf")
		require.NoError(t, err)
		assert.Equal(t, "my_resume_final_.pdf", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF data"), data)
	})

	t.Run("Should never overwrite an existing file", func(t *testing.T) {
		first, err := store.Put(ctx, []byte("first"), "resume.pdf")
		require.NoError(t, err)
		second, err := store.Put(ctx, []byte("second"), "resume.pdf")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		data, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), data)
	})
}

func TestLocalStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Put(ctx, []byte("data"), "resume.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	t.Run("Deleting a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, path))
	})
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "John_Doe_CV.pdf", storage.SafeFilename("John Doe CV.pdf"))
	assert.Equal(t, "resume", storage.SafeFilename("???"))
}
