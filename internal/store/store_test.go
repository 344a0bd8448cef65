package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/mastery"
	"github.com/hydrolearn/backend/internal/domain/note"
	"github.com/hydrolearn/backend/internal/store"
)

func sampleState() store.State {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return store.State{
		DarkMode: true,
		WeakConcepts: []mastery.WeakConcept{
			{Concept: "Hardness", Strength: 60, Attempts: 5, WrongAttempts: 1, LastPracticed: ts},
		},
		ProblemAttempts: []attempt.ProblemAttempt{
			{ProblemID: "p1", Concept: "Hardness", HintsUsed: 2, Correct: true, TimeSpent: 90, Timestamp: ts},
			{ProblemID: "p2", Concept: "pH", HintsUsed: 0, Correct: false, TimeSpent: 30, Timestamp: ts},
		},
		LabAttempts: []attempt.LabAttempt{
			{LabID: "water_hardness_edta", Mode: attempt.LabModeGuided, Score: 80, Mistakes: 1, Timestamp: ts},
		},
		Notes: []note.Note{
			{ID: "n1", Title: "Hardness", Content: "notes", QualityScore: 78, Concepts: []string{"Water Hardness"}, Timestamp: ts},
		},
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := store.NewJSONStore(path)

	want := sampleState()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONStore_MissingFileIsEmptyState(t *testing.T) {
	s := store.NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, store.EmptyState(), got)
}

func TestJSONStore_CorruptFileIsEmptyStatePlusError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := store.NewJSONStore(path)
	got, err := s.Load()

	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.Equal(t, store.EmptyState(), got)
}

func TestJSONStore_OlderFileWithoutNotesNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	older := `{"darkMode": false, "weakConcepts": [], "problemAttempts": [], "labAttempts": []}`
	require.NoError(t, os.WriteFile(path, []byte(older), 0o644))

	s := store.NewJSONStore(path)
	got, err := s.Load()

	require.NoError(t, err)
	assert.NotNil(t, got.Notes)
	assert.Empty(t, got.Notes)
}

func TestJSONStore_SaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := store.NewJSONStore(path)

	require.NoError(t, s.Save(sampleState()))
	require.NoError(t, s.Save(store.EmptyState()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, store.EmptyState(), got)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	want := sampleState()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteStore_FreshDatabaseIsEmptyState(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, store.EmptyState(), got)
}

func TestSQLiteStore_SaveReplacesPreviousState(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(sampleState()))

	replacement := store.EmptyState()
	replacement.DarkMode = false
	replacement.ProblemAttempts = []attempt.ProblemAttempt{
		{ProblemID: "p9", Concept: "pH", Correct: true, Timestamp: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, s.Save(replacement))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got.ProblemAttempts, 1)
	assert.Equal(t, "p9", got.ProblemAttempts[0].ProblemID)
	assert.Empty(t, got.LabAttempts)
	assert.False(t, got.DarkMode)
}

func TestSQLiteStore_PreservesAttemptOrder(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(sampleState()))
	got, err := s.Load()
	require.NoError(t, err)

	require.Len(t, got.ProblemAttempts, 2)
	assert.Equal(t, "p1", got.ProblemAttempts[0].ProblemID)
	assert.Equal(t, "p2", got.ProblemAttempts[1].ProblemID)
}

func TestNewByEngine_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	jsonStore, err := store.NewByEngine(store.EngineJSON, filepath.Join(dir, "s.json"))
	require.NoError(t, err)
	assert.IsType(t, &store.JSONStore{}, jsonStore)
	jsonStore.Close()

	sqliteStore, err := store.NewByEngine(store.EngineSQLite, filepath.Join(dir, "s.db"))
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, sqliteStore)
	sqliteStore.Close()
}

func TestNewByEngine_EmptyDefaultsToJSON(t *testing.T) {
	s, err := store.NewByEngine("", filepath.Join(t.TempDir(), "s.json"))
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &store.JSONStore{}, s)
}

func TestNewByEngine_UnknownEngine(t *testing.T) {
	_, err := store.NewByEngine("something-else", filepath.Join(t.TempDir(), "s.json"))
	assert.Error(t, err)
}
