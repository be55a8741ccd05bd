package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/games/trex"
)

var _ trex.HighScoreStore = (*HighScoreSlot)(nil)

// HighScoreSlot exposes one named slot of a Store as a trex.HighScoreStore.
// Writes are coalesced and flushed by a background goroutine so the game
// loop never waits on disk. Storage errors are logged, never returned.
type HighScoreSlot struct {
	store  *Store
	name   string
	logger *log.Logger

	mu      sync.Mutex
	pending int // Highest score queued by this slot
	dirty   bool
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewHighScoreSlot starts the writer for the named slot. A nil logger discards output.
func NewHighScoreSlot(store *Store, name string, logger *log.Logger) *HighScoreSlot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &HighScoreSlot{
		store:  store,
		name:   name,
		logger: logger,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go h.run()
	return h
}

// ReadHighScore returns the stored score, including a not yet flushed write.
// Missing, negative or unreadable values read as 0.
func (h *HighScoreSlot) ReadHighScore() int {
	score, _, err := h.store.ReadSlot(h.name)
	if err != nil {
		h.logger.Warn("high score unreadable", "slot", h.name, "err", err)
		score = 0
	}

	h.mu.Lock()
	score = max(score, h.pending)
	h.mu.Unlock()

	return max(score, 0)
}

// WriteHighScore queues score for persistence and returns immediately.
func (h *HighScoreSlot) WriteHighScore(score int) {
	h.mu.Lock()
	if h.closed || score <= h.pending {
		h.mu.Unlock()
		return
	}
	h.pending = score
	h.dirty = true
	h.mu.Unlock()

	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// Close flushes the pending write and stops the writer. It is safe to call more than once.
func (h *HighScoreSlot) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		<-h.done
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

func (h *HighScoreSlot) run() {
	defer close(h.done)
	for {
		select {
		case <-h.wake:
			h.flush()
		case <-h.stop:
			h.flush()
			return
		}
	}
}

// flush writes the latest pending value, if any.
func (h *HighScoreSlot) flush() {
	h.mu.Lock()
	if !h.dirty {
		h.mu.Unlock()
		return
	}
	score := h.pending
	h.dirty = false
	h.mu.Unlock()

	if err := h.store.WriteSlot(h.name, score); err != nil {
		h.logger.Warn("high score not saved", "slot", h.name, "score", score, "err", err)
		return
	}
	h.logger.Debug("high score saved", "slot", h.name, "score", score)
}
