package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Levels table - one row per fetched level definition
		`CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			theme TEXT NOT NULL,
			instruction TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Level words table - ordered vocabulary entries per level
		`CREATE TABLE IF NOT EXISTS level_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL REFERENCES levels(id) ON DELETE CASCADE,
			kind TEXT NOT NULL CHECK(kind IN ('target', 'distractor')),
			position INTEGER NOT NULL,
			word TEXT NOT NULL
		)`,

		// Index for vocabulary lookups
		`CREATE INDEX IF NOT EXISTS idx_level_words_level_id ON level_words(level_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
