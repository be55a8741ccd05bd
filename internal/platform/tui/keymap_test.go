package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trex-runner/internal/games/trex"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapIntent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want trex.Intent
	}{
		{" ", trex.IntentJump},
		{"up", trex.IntentJump},
		{"w", trex.IntentJump},
		{"enter", trex.IntentJump},
		{"p", trex.IntentTogglePause},
		{"esc", trex.IntentTogglePause},
		{"r", trex.IntentRestart},
		{"x", trex.IntentNone},
		{"q", trex.IntentNone},
		{"ctrl+s", trex.IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.Intent(keyMsg(tc.key)); got != tc.want {
				t.Errorf("Intent(%q) = %v, expected %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestKeyMapQuitAndScreenshot(t *testing.T) {
	km := DefaultKeyMap()

	for _, k := range []string{"q", "ctrl+c"} {
		if !key.Matches(keyMsg(k), km.Quit) {
			t.Errorf("%q should quit", k)
		}
	}
	if !key.Matches(keyMsg("ctrl+s"), km.Screenshot) {
		t.Error("ctrl+s should take a screenshot")
	}
}
