package trex

import "sync"

// HighScoreStore persists the single best score.
// ReadHighScore returns 0 when nothing valid is stored. WriteHighScore is
// best-effort and must return without waiting on slow storage.
//
// Writes keep the maximum of the stored and written values: a lower score
// never replaces a higher one, so ReadHighScore after WriteHighScore(n)
// returns n only when n is at least the stored score.
type HighScoreStore interface {
	ReadHighScore() int
	WriteHighScore(score int)
}

// MemoryStore keeps the high score for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	score  int
	writes int
}

// NewMemoryStore creates an in-memory store holding the given score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: max(initial, 0)}
}

func (m *MemoryStore) ReadHighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

func (m *MemoryStore) WriteHighScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if score > m.score {
		m.score = score
	}
}

// Writes returns how many writes the store has received.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
