package storage

import (
	"path/filepath"
	"testing"
)

func TestHighScoreSlotRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	slot := NewHighScoreSlot(store, DefaultSlot, nil)

	if got := slot.ReadHighScore(); got != 0 {
		t.Errorf("untouched slot ReadHighScore() = %d, expected 0", got)
	}

	slot.WriteHighScore(10)
	slot.WriteHighScore(250)
	slot.WriteHighScore(90)
	if got := slot.ReadHighScore(); got != 250 {
		t.Errorf("ReadHighScore() before flush = %d, expected 250", got)
	}

	slot.Close()
	slot.Close()
	store.Close()

	// A fresh session sees the flushed value.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	fresh := NewHighScoreSlot(store, DefaultSlot, nil)
	defer fresh.Close()

	if got := fresh.ReadHighScore(); got != 250 {
		t.Errorf("fresh slot ReadHighScore() = %d, expected 250", got)
	}
}

func TestHighScoreSlotInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"negative", -5},
		{"text", "not a number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.db.Exec(
				"INSERT INTO high_scores (slot, score) VALUES (?, ?)", DefaultSlot, tc.value,
			); err != nil {
				t.Fatalf("seeding slot failed: %v", err)
			}

			slot := NewHighScoreSlot(store, DefaultSlot, nil)
			defer slot.Close()

			if got := slot.ReadHighScore(); got != 0 {
				t.Errorf("ReadHighScore() = %d, expected 0", got)
			}
		})
	}
}

func TestHighScoreSlotClosedStore(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store, DefaultSlot, nil)
	store.Close()

	// Failures are swallowed: reads give 0, writes and Close return normally.
	if got := slot.ReadHighScore(); got != 0 {
		t.Errorf("ReadHighScore() on closed store = %d, expected 0", got)
	}
	slot.WriteHighScore(10)
	slot.Close()
}

func TestHighScoreSlotWriteAfterClose(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store, DefaultSlot, nil)
	slot.Close()

	slot.WriteHighScore(99)

	if score, ok, _ := store.ReadSlot(DefaultSlot); ok || score != 0 {
		t.Errorf("write after Close should be dropped, slot = %d", score)
	}
}
