package httpapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

func TestProgressView_NilSetsSerializeAsEmptyArrays(t *testing.T) {
	p := &store.Progress{
		StudentID: "s1",
		SubjectID: uuid.New(),
		Status:    store.StatusNotStarted,
		StartedAt: time.Now(),
	}

	raw, err := json.Marshal(toProgressView(p))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Clients iterate these; a JSON null would break them.
	for _, field := range []string{"completedChapterIds", "notesViewedChapterIds", "videosViewedChapterIds"} {
		v, ok := decoded[field]
		require.True(t, ok, "missing %s", field)
		assert.IsType(t, []any{}, v, "%s should be an array", field)
	}
	assert.Equal(t, "not-started", decoded["status"])
}

func TestChapterView_OmitsUngeneratedContent(t *testing.T) {
	c := &store.Chapter{
		ID:        uuid.New(),
		SubjectID: uuid.New(),
		Order:     2,
		Title:     "State with Hooks",
	}

	raw, err := json.Marshal(toChapterView(c))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "overview")
	assert.NotContains(t, decoded, "concepts")
	assert.NotContains(t, decoded, "contentGeneratedAt")
	assert.Equal(t, float64(2), decoded["order"])
}
