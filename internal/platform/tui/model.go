package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/trex"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(score int, distance float64, duration time.Duration) (int64, error)
}

// Options configures a game model.
type Options struct {
	Game    config.TrexConfig
	Runtime core.RuntimeConfig

	// HighScores persists the best score. Nil keeps it in memory.
	HighScores trex.HighScoreStore

	// Runs records each finished run. Nil disables run history.
	Runs RunRecorder

	// ScreenshotDir receives ctrl+s captures. Empty means ~/.trex/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// runSavedMsg reports the outcome of a background run save.
type runSavedMsg struct {
	id  int64
	err error
}

// Model is the Bubble Tea model for playing the runner in a terminal.
type Model struct {
	sim      *trex.Simulation
	screen   *core.Screen
	runs     RunRecorder
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	lastTick time.Time
	frames   float64 // Frames played in the current run, pauses excluded
	quitting bool
}

// NewModel creates a new Bubble Tea model around a fresh simulation.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:     trex.New(opts.Game, cfg.Seed, opts.HighScores),
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		runs:    opts.Runs,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}
}

// playHeight leaves the last row for the help bar.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case runSavedMsg:
		if msg.err != nil {
			m.logger.Warn("run not recorded", "err", msg.err)
		} else {
			m.logger.Debug("run recorded", "id", msg.id)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	before := m.sim.Phase()
	m.sim.HandleIntent(m.keys.Intent(msg))
	if before != trex.PhasePlaying && before != trex.PhasePaused && m.sim.Phase() == trex.PhasePlaying {
		m.frames = 0
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0
	if !m.lastTick.IsZero() {
		dt = trex.ClampDelta(now.Sub(m.lastTick), m.sim.Config().Timing.MaxDelta)
	}
	m.lastTick = now

	before := m.sim.Phase()
	m.sim.Update(dt)
	if before != trex.PhasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	m.frames += dt
	if m.sim.Phase() == trex.PhaseGameOver {
		m.logger.Info("run over", "score", m.sim.Score(), "high", m.sim.HighScore())
		return m, tea.Batch(tickCmd(m.config.TickRate), m.recordRun())
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run off the tick loop.
func (m Model) recordRun() tea.Cmd {
	if m.runs == nil {
		return nil
	}
	runs := m.runs
	score, distance := m.sim.Score(), m.sim.Distance()
	duration := time.Duration(m.frames * float64(trex.FrameDuration))

	return func() tea.Msg {
		id, err := runs.SaveRun(score, distance, duration)
		return runSavedMsg{id: id, err: err}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	trex.Render(m.sim.Scene(), m.screen)

	dir := m.shotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".trex", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	filename := fmt.Sprintf("trex_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	trex.Render(m.sim.Scene(), m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Simulation exposes the running simulation.
func (m Model) Simulation() *trex.Simulation {
	return m.sim
}

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
