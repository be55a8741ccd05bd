package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/trex"
)

type fakeRecorder struct {
	mu   sync.Mutex
	runs []int
	err  error
}

func (f *fakeRecorder) SaveRun(score int, _ float64, duration time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if duration <= 0 {
		return 0, errors.New("empty duration")
	}
	f.runs = append(f.runs, score)
	return int64(len(f.runs)), nil
}

func newTestModel(t *testing.T, runs RunRecorder) Model {
	t.Helper()
	return NewModel(Options{
		Game:          config.DefaultTrexConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 1000, Seed: 42},
		HighScores:    trex.NewMemoryStore(0),
		Runs:          runs,
		ScreenshotDir: t.TempDir(),
	})
}

func press(m Model, k string) (Model, tea.Cmd) {
	next, cmd := m.Update(keyMsg(k))
	return next.(Model), cmd
}

// playUntilOver ticks one frame at a time until the run ends.
func playUntilOver(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		now = now.Add(trex.FrameDuration)
		next, cmd := m.Update(TickMsg(now))
		m = next.(Model)
		if m.Simulation().Phase() == trex.PhaseGameOver {
			return m, cmd
		}
	}
	t.Fatal("run never ended")
	return m, nil
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Simulation().Phase() != trex.PhaseIdle {
		t.Errorf("phase = %v, expected Idle", m.Simulation().Phase())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
	if !strings.Contains(m.View(), "T-Rex Runner") {
		t.Error("idle view should show the title")
	}
}

func TestModelKeysDriveIntents(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, " ")
	if m.Simulation().Phase() != trex.PhasePlaying {
		t.Fatalf("space should start a run, phase = %v", m.Simulation().Phase())
	}

	m, _ = press(m, "p")
	if m.Simulation().Phase() != trex.PhasePaused {
		t.Fatalf("p should pause, phase = %v", m.Simulation().Phase())
	}

	m, _ = press(m, "esc")
	if m.Simulation().Phase() != trex.PhasePlaying {
		t.Fatalf("esc should resume, phase = %v", m.Simulation().Phase())
	}

	m, _ = press(m, "x")
	if m.Simulation().Phase() != trex.PhasePlaying {
		t.Error("unbound keys must not change the phase")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelTickUsesClampedDelta(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(m, " ")

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	next, _ := m.Update(TickMsg(now))
	m = next.(Model)
	first := m.Simulation().Distance()

	// A ten second stall advances at most MaxDelta frames.
	next, _ = m.Update(TickMsg(now.Add(10 * time.Second)))
	m = next.(Model)
	advanced := m.Simulation().Distance() - first

	maxFrames := config.DefaultTrexConfig().Timing.MaxDelta
	if advanced > m.Simulation().Speed()*maxFrames+1e-9 {
		t.Errorf("stall advanced %v units, more than %v frames allow", advanced, maxFrames)
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, rec)
	m, _ = press(m, " ")

	m, cmd := playUntilOver(t, m)
	if cmd == nil {
		t.Fatal("game over tick should return commands")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("game over tick should batch the next tick with the run save")
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(runSavedMsg); ok {
			if msg.err != nil {
				t.Errorf("run save failed: %v", msg.err)
			}
			next, _ := m.Update(msg)
			m = next.(Model)
		}
	}

	if len(rec.runs) != 1 || rec.runs[0] != m.Simulation().Score() {
		t.Errorf("recorded runs = %v, expected [%d]", rec.runs, m.Simulation().Score())
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("game over view should show the panel")
	}
}

func TestModelRunSaveFailureIsNotFatal(t *testing.T) {
	m := newTestModel(t, &fakeRecorder{err: errors.New("disk full")})

	next, cmd := m.Update(runSavedMsg{err: errors.New("disk full")})
	if cmd != nil {
		t.Error("a failed save should not schedule anything")
	}
	if next.(Model).Simulation() != m.Simulation() {
		t.Error("model should keep its simulation")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.Simulation().Phase() != trex.PhaseIdle {
		t.Error("resizing must not touch the simulation")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "ctrl+s")

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "trex_") {
		t.Fatalf("expected one screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "HI 00000") {
		t.Error("screenshot should contain the HUD")
	}
}
