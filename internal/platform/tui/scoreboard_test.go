package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trex-runner/internal/storage"
)

type fakeHistory struct {
	runs []storage.Run
	err  error
}

func (f fakeHistory) TopRuns(limit int) ([]storage.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[:min(limit, len(f.runs))], nil
}

func (f fakeHistory) GetStats() (*storage.Stats, error) {
	stats := &storage.Stats{Runs: len(f.runs)}
	for _, r := range f.runs {
		stats.Best = max(stats.Best, r.Score)
	}
	return stats, nil
}

func TestRunRows(t *testing.T) {
	created := time.Date(2026, 3, 4, 15, 6, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Score: 412, Distance: 4123.7, Duration: 41*time.Second + 260*time.Millisecond, CreatedAt: created},
		{Score: 7, Distance: 70, Duration: time.Second, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"#1", "00412", "4124", "41.3s", "Mar 04 15:06"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name    string
		history RunHistory
		want    string
	}{
		{"empty", fakeHistory{}, "No runs recorded yet."},
		{"error", fakeHistory{err: errors.New("locked")}, "Could not load scores"},
		{"no store", nil, "No runs recorded yet."},
		{"runs", fakeHistory{runs: []storage.Run{{Score: 250}, {Score: 90}}}, "2 runs  best 00250"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.history, 80, 24)
			if view := m.View(); !strings.Contains(view, tc.want) {
				t.Errorf("view missing %q:\n%s", tc.want, view)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeHistory{}, 80, 24)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the scoreboard")
	}
	if view := next.View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() should not pad wide text, got %q", got)
	}
}
