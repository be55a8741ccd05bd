package trex

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/trex-runner/internal/core"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "00000"},
		{7, "00007"},
		{42, "00042"},
		{99999, "99999"},
		{123456, "23456"},
		{-5, "00000"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestSceneHUD(t *testing.T) {
	sc := Scene{Score: 42, HighScore: 107}
	if got := sc.HUD(); got != "00042  HI 00107" {
		t.Errorf("HUD() = %q", got)
	}
}

func TestSceneOverlay(t *testing.T) {
	tests := []struct {
		phase Phase
		want  Overlay
	}{
		{PhaseIdle, Overlay{Lines: []string{"T-Rex Runner", "", "Press Space / Tap to start"}}},
		{PhasePlaying, Overlay{}},
		{PhasePaused, Overlay{Lines: []string{"Paused (press P)"}}},
		{PhaseGameOver, Overlay{Lines: []string{"Game Over", "Score: 42", "Press R to restart"}, Panel: true}},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			sc := Scene{Phase: tc.phase, Score: 42}
			if got := sc.Overlay(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Overlay() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestSimulationScene(t *testing.T) {
	s := simInPhase(t, PhasePlaying)
	forceObstacle(s, 400)

	sc := s.Scene()
	if sc.Phase != PhasePlaying || sc.WorldWidth != 800 || sc.GroundY != 258 {
		t.Errorf("unexpected scene header: %+v", sc)
	}
	if sc.Runner.Box != s.runner.Box() || !sc.Runner.Grounded {
		t.Errorf("runner view = %+v", sc.Runner)
	}
	if len(sc.Obstacles) != 1 || sc.Obstacles[0].Box != core.NewBox(400, 222, 18, 36) {
		t.Errorf("obstacle views = %+v", sc.Obstacles)
	}
	if len(sc.Clouds) != len(s.clouds) {
		t.Errorf("expected %d clouds, got %d", len(s.clouds), len(sc.Clouds))
	}
}

func testScene(phase Phase) Scene {
	return Scene{
		Phase:        phase,
		WorldWidth:   800,
		WorldHeight:  300,
		GroundY:      258,
		SegmentWidth: 16,
		Runner: RunnerView{
			Box:      core.NewBox(50, 211, 44, 47),
			Grounded: true,
		},
		Obstacles: []ObstacleView{{Box: core.NewBox(400, 222, 18, 36)}},
		Score:     42,
		HighScore: 107,
	}
}

func TestRenderPlaying(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(testScene(PhasePlaying), screen)

	if !strings.Contains(screenRow(screen, 0), "00042  HI 00107") {
		t.Errorf("HUD missing from top row: %q", screenRow(screen, 0))
	}

	// 80x24 cells over an 800x300 world: 0.1 columns and 0.08 rows per unit.
	if c := screen.GetCell(40, 18); c.Rune != ObstacleChar || c.Color != core.ColorGreen {
		t.Errorf("obstacle cell = %+v", c)
	}
	if c := screen.GetCell(6, 17); c.Rune != RunnerBody {
		t.Errorf("runner body cell = %q", c.Rune)
	}
	if screen.GetCell(5, 19).Rune != RunnerLeg1 || screen.GetCell(8, 19).Rune != RunnerLeg2 {
		t.Errorf("runner legs row = %q", screenRow(screen, 19))
	}
	if screen.GetCell(0, 20).Rune != GroundChar || screen.GetCell(79, 20).Rune != GroundChar {
		t.Errorf("ground row = %q", screenRow(screen, 20))
	}
	if strings.Contains(screen.String(), "Game Over") {
		t.Error("no overlay expected while playing")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		phase Phase
		want  []string
	}{
		{PhaseIdle, []string{"T-Rex Runner", "Press Space / Tap to start"}},
		{PhasePaused, []string{"Paused (press P)"}},
		{PhaseGameOver, []string{"Game Over", "Score: 42", "Press R to restart"}},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			Render(testScene(tc.phase), screen)

			out := screen.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("rendered frame missing %q", w)
				}
			}
		})
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	screen := core.NewScreen(0, 0)
	Render(testScene(PhasePlaying), screen)

	screen = core.NewScreen(10, 5)
	Render(Scene{}, screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("a scene without a world size should draw nothing")
	}
}

func screenRow(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
