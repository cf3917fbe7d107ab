package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/ayusman/kalari/internal/content"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no cached level exists.
var ErrNotFound = errors.New("not found")

// Word kinds stored in level_words.
const (
	kindTarget     = "target"
	kindDistractor = "distractor"
)

// CachedLevel pairs a level definition with its cache metadata.
type CachedLevel struct {
	ID        string
	Level     content.Level
	CreatedAt time.Time
}

// LevelRepository provides persistence for fetched levels.
type LevelRepository struct {
	db *sql.DB
}

// Levels returns the level repository for this store.
func (s *Store) Levels() *LevelRepository {
	return &LevelRepository{db: s.db}
}

// Save stores a fetched level and returns its cache ID.
func (r *LevelRepository) Save(level *content.Level) (string, error) {
	if err := level.Validate(); err != nil {
		return "", err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO levels (id, theme, instruction, created_at) VALUES (?, ?, ?, ?)`,
		id, level.Theme, level.Instruction, time.Now(),
	); err != nil {
		return "", err
	}

	insert := func(kind string, words []string) error {
		for i, w := range words {
			if _, err := tx.Exec(
				`INSERT INTO level_words (level_id, kind, position, word) VALUES (?, ?, ?, ?)`,
				id, kind, i, w,
			); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(kindTarget, level.Targets); err != nil {
		return "", err
	}
	if err := insert(kindDistractor, level.Distractors); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Latest returns the most recently cached level.
func (r *LevelRepository) Latest() (*CachedLevel, error) {
	c := &CachedLevel{}
	err := r.db.QueryRow(
		`SELECT id, theme, instruction, created_at
		 FROM levels ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&c.ID, &c.Level.Theme, &c.Level.Instruction, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		`SELECT kind, word FROM level_words WHERE level_id = ? ORDER BY kind, position`,
		c.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind, word string
		if err := rows.Scan(&kind, &word); err != nil {
			return nil, err
		}
		switch kind {
		case kindTarget:
			c.Level.Targets = append(c.Level.Targets, word)
		case kindDistractor:
			c.Level.Distractors = append(c.Level.Distractors, word)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Count returns the number of cached levels.
func (r *LevelRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM levels`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
