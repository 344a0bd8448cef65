package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/mastery"
	"github.com/hydrolearn/backend/internal/domain/note"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS problem_attempts (
    rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
    problem_id TEXT NOT NULL,
    concept TEXT NOT NULL,
    hints_used INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    time_spent REAL NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lab_attempts (
    rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
    lab_id TEXT NOT NULL,
    mode TEXT NOT NULL,
    score INTEGER NOT NULL,
    mistakes INTEGER NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS weak_concepts (
    rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
    concept TEXT NOT NULL,
    strength REAL NOT NULL,
    attempts INTEGER NOT NULL,
    wrong_attempts INTEGER NOT NULL,
    last_practiced TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    quality_score INTEGER NOT NULL,
    concepts TEXT NOT NULL,
    timestamp TEXT NOT NULL
);
`

// SQLiteStore persists the learner state in an embedded SQLite database.
// Save still replaces the whole state: the persistence contract is
// wholesale, only the encoding differs from the JSON engine.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() (State, error) {
	state := EmptyState()

	var darkMode string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = 'dark_mode'").Scan(&darkMode)
	if err != nil && err != sql.ErrNoRows {
		return EmptyState(), err
	}
	state.DarkMode = darkMode == "true"

	rows, err := s.db.Query("SELECT problem_id, concept, hints_used, correct, time_spent, timestamp FROM problem_attempts ORDER BY rowid_order")
	if err != nil {
		return EmptyState(), err
	}
	defer rows.Close()
	for rows.Next() {
		var a attempt.ProblemAttempt
		var correct int
		var ts string
		if err := rows.Scan(&a.ProblemID, &a.Concept, &a.HintsUsed, &correct, &a.TimeSpent, &ts); err != nil {
			return EmptyState(), err
		}
		a.Correct = correct != 0
		a.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		state.ProblemAttempts = append(state.ProblemAttempts, a)
	}
	if err := rows.Err(); err != nil {
		return EmptyState(), err
	}

	labRows, err := s.db.Query("SELECT lab_id, mode, score, mistakes, timestamp FROM lab_attempts ORDER BY rowid_order")
	if err != nil {
		return EmptyState(), err
	}
	defer labRows.Close()
	for labRows.Next() {
		var a attempt.LabAttempt
		var ts string
		if err := labRows.Scan(&a.LabID, &a.Mode, &a.Score, &a.Mistakes, &ts); err != nil {
			return EmptyState(), err
		}
		a.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		state.LabAttempts = append(state.LabAttempts, a)
	}
	if err := labRows.Err(); err != nil {
		return EmptyState(), err
	}

	wcRows, err := s.db.Query("SELECT concept, strength, attempts, wrong_attempts, last_practiced FROM weak_concepts ORDER BY rowid_order")
	if err != nil {
		return EmptyState(), err
	}
	defer wcRows.Close()
	for wcRows.Next() {
		var wc mastery.WeakConcept
		var ts string
		if err := wcRows.Scan(&wc.Concept, &wc.Strength, &wc.Attempts, &wc.WrongAttempts, &ts); err != nil {
			return EmptyState(), err
		}
		wc.LastPracticed, _ = time.Parse(time.RFC3339Nano, ts)
		state.WeakConcepts = append(state.WeakConcepts, wc)
	}
	if err := wcRows.Err(); err != nil {
		return EmptyState(), err
	}

	noteRows, err := s.db.Query("SELECT id, title, content, quality_score, concepts, timestamp FROM notes ORDER BY rowid_order")
	if err != nil {
		return EmptyState(), err
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n note.Note
		var concepts, ts string
		if err := noteRows.Scan(&n.ID, &n.Title, &n.Content, &n.QualityScore, &concepts, &ts); err != nil {
			return EmptyState(), err
		}
		if err := json.Unmarshal([]byte(concepts), &n.Concepts); err != nil {
			n.Concepts = []string{}
		}
		n.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		state.Notes = append(state.Notes, n)
	}
	if err := noteRows.Err(); err != nil {
		return EmptyState(), err
	}

	return state, nil
}

func (s *SQLiteStore) Save(state State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"problem_attempts", "lab_attempts", "weak_concepts", "notes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	darkMode := "false"
	if state.DarkMode {
		darkMode = "true"
	}
	if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES ('dark_mode', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", darkMode); err != nil {
		return err
	}

	for _, a := range state.ProblemAttempts {
		correct := 0
		if a.Correct {
			correct = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO problem_attempts (problem_id, concept, hints_used, correct, time_spent, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
			a.ProblemID, a.Concept, a.HintsUsed, correct, a.TimeSpent, a.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	for _, a := range state.LabAttempts {
		if _, err := tx.Exec(
			"INSERT INTO lab_attempts (lab_id, mode, score, mistakes, timestamp) VALUES (?, ?, ?, ?, ?)",
			a.LabID, string(a.Mode), a.Score, a.Mistakes, a.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	for _, wc := range state.WeakConcepts {
		if _, err := tx.Exec(
			"INSERT INTO weak_concepts (concept, strength, attempts, wrong_attempts, last_practiced) VALUES (?, ?, ?, ?, ?)",
			wc.Concept, wc.Strength, wc.Attempts, wc.WrongAttempts, wc.LastPracticed.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	for _, n := range state.Notes {
		concepts, err := json.Marshal(n.Concepts)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT INTO notes (id, title, content, quality_score, concepts, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
			n.ID, n.Title, n.Content, n.QualityScore, string(concepts), n.Timestamp.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
