package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ayusman/kalari/internal/content"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "kalari.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLevelRepository_SaveAndLatest(t *testing.T) {
	s := testStore(t)
	level := content.DefaultStatic().Level

	id, err := s.Levels().Save(&level)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if id == "" {
		t.Fatal("Save() returned empty id")
	}

	got, err := s.Levels().Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.Level.Theme != level.Theme {
		t.Errorf("theme = %q, want %q", got.Level.Theme, level.Theme)
	}
	if len(got.Level.Targets) != len(level.Targets) {
		t.Fatalf("targets = %d, want %d", len(got.Level.Targets), len(level.Targets))
	}
	for i, w := range level.Targets {
		if got.Level.Targets[i] != w {
			t.Errorf("targets[%d] = %q, want %q (order must survive)", i, got.Level.Targets[i], w)
		}
	}
	if err := got.Level.Validate(); err != nil {
		t.Errorf("round-tripped level should validate: %v", err)
	}
}

func TestLevelRepository_LatestEmpty(t *testing.T) {
	s := testStore(t)

	if _, err := s.Levels().Latest(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest() on empty cache error = %v, want ErrNotFound", err)
	}
}

func TestLevelRepository_SaveRejectsInvalid(t *testing.T) {
	s := testStore(t)

	bad := content.Level{Theme: "x", Instruction: "y",
		Targets: []string{"only-one"}, Distractors: []string{"b"}}
	if _, err := s.Levels().Save(&bad); err == nil {
		t.Error("Save() should reject a level violating the schema")
	}

	if n, _ := s.Levels().Count(); n != 0 {
		t.Errorf("count = %d after rejected save, want 0", n)
	}
}

func TestLevelRepository_LatestPicksNewest(t *testing.T) {
	s := testStore(t)

	first := content.DefaultStatic().Level
	if _, err := s.Levels().Save(&first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := content.DefaultStatic().Level
	second.Theme = "Space Junk"
	if _, err := s.Levels().Save(&second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Levels().Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.Level.Theme != "Space Junk" {
		t.Errorf("theme = %q, want the most recent level", got.Level.Theme)
	}

	if n, _ := s.Levels().Count(); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
