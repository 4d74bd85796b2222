package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-registry/internal/domain"
)

func TestParseSkills(t *testing.T) {
	t.Run("Should split on commas and trim whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"Python", "FastAPI", "SQL"}, domain.ParseSkills("Python, FastAPI, SQL"))
	})

	t.Run("Should discard empty tokens", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "SQL"}, domain.ParseSkills(" Go ,, SQL , "))
	})

	t.Run("Should drop case-insensitive duplicates keeping the first spelling", func(t *testing.T) {
		assert.Equal(t, []string{"Python", "SQL"}, domain.ParseSkills("Python, python, SQL, sql"))
	})

	t.Run("Should return empty slice for blank input", func(t *testing.T) {
		assert.Empty(t, domain.ParseSkills("  ,  , "))
	})
}

func TestNormalizeContactNumber(t *testing.T) {
	assert.Equal(t, "6281234567890", domain.NormalizeContactNumber("+62 812-3456-7890"))
	assert.Equal(t, "", domain.NormalizeContactNumber("no digits here"))
}

func TestDate(t *testing.T) {
	t.Run("Should parse and serialize as YYYY-MM-DD", func(t *testing.T) {
		d, err := domain.ParseDate("1999-04-23")
		assert.NoError(t, err)

		out, err := json.Marshal(d)
		assert.NoError(t, err)
		assert.Equal(t, `"1999-04-23"`, string(out))
	})

	t.Run("Should reject other formats", func(t *testing.T) {
		_, err := domain.ParseDate("23/04/1999")
		assert.Error(t, err)
	})

	t.Run("Should round-trip through JSON", func(t *testing.T) {
		var d domain.Date
		assert.NoError(t, json.Unmarshal([]byte(`"2001-12-31"`), &d))
		assert.Equal(t, "2001-12-31", d.Format("2006-01-02"))
	})
}
