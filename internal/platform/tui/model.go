package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
	"github.com/vovakirdan/ink-runner/internal/sim"
	"github.com/vovakirdan/ink-runner/internal/storage"
)

// Model is the Bubble Tea model for playing a run.
type Model struct {
	engine     *sim.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	tutorial   bool
	best       int
	drawing    bool // A mouse drag is currently feeding the active line
	runSaved   bool // Whether the current run's outcome has been persisted
	quitting   bool
	backToMenu bool // Hosted sessions return to their menu instead of quitting
}

// NewModel creates a new Bubble Tea model around a fresh engine.
// With tutorial set, the first run uses the scripted intro schedule.
func NewModel(rcfg config.RunnerConfig, store *storage.Store, cfg core.RuntimeConfig, tutorial bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	engine := sim.New(rcfg)
	engine.Reset(cfg)
	if tutorial {
		engine.SetIntroSequence(sim.DefaultIntroSequence())
	}

	m := Model{
		engine:   engine,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		tutorial: tutorial,
	}
	m.refreshBest()
	return m
}

func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(); err == nil {
		m.best = best
	}
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case " ", "up", "w":
		switch m.engine.Phase() {
		case sim.PhaseReady:
			m.engine.Start()
		case sim.PhaseRunning:
			m.engine.Jump()
		}

	case "p", "esc":
		if m.engine.Phase() == sim.PhaseRunning {
			m.engine.SetPaused(!m.engine.Paused())
		}

	case "e":
		if m.engine.Phase() == sim.PhaseDead && m.engine.Revive() {
			m.runSaved = false
		}

	case "enter":
		switch m.engine.Phase() {
		case sim.PhaseReady:
			m.engine.Start()
		case sim.PhaseDead:
			m.engine.Finish()
		}

	case "r":
		if m.engine.Phase() == sim.PhaseDead || m.engine.Phase() == sim.PhaseResult {
			m.restart()
		}

	case "b":
		if m.engine.Phase() == sim.PhaseDead || m.engine.Phase() == sim.PhaseResult {
			m.backToMenu = true
		}
	}

	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to a hosting menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// restart reseeds and begins a fresh run immediately.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.engine.Reset(m.config)
	// The scripted intro is a first-run aid only
	m.tutorial = false
	m.drawing = false
	m.runSaved = false
	m.engine.Start()
}

// handleMouse feeds mouse drags into the drawn-platform operations.
// Cell coordinates are scaled up to world pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.engine.Phase() != sim.PhaseRunning || m.engine.Paused() {
		return m, nil
	}

	p := core.Vec2{
		X: (float64(msg.X) + 0.5) * core.CellPxX,
		Y: (float64(msg.Y) + 0.5) * core.CellPxY,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drawing = m.engine.StartLine(p)
		}
	case tea.MouseActionMotion:
		if m.drawing {
			m.engine.AddPoint(p)
		}
	case tea.MouseActionRelease:
		if m.drawing {
			m.engine.EndLine()
			m.drawing = false
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config.WorldW = 0 // Re-derive from the new screen size
	m.config.WorldH = 0
	m.screen.Resize(msg.Width, msg.Height)

	// A resize rebuilds the world, so a run in progress starts over
	phase := m.engine.Phase()
	if phase != sim.PhaseDead && phase != sim.PhaseResult {
		m.engine.Reset(m.config)
		if m.tutorial {
			m.engine.SetIntroSequence(sim.DefaultIntroSequence())
		}
		m.drawing = false
	}

	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick(1000.0 / float64(m.config.TickRate))

	if m.engine.Phase() == sim.PhaseDead && !m.runSaved {
		m.saveOutcome()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveOutcome persists the finished run. Best-effort: a storage failure
// never interrupts play.
func (m *Model) saveOutcome() {
	if m.store == nil {
		return
	}
	out := m.engine.Outcome()
	if out.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the death screen shows regardless
	m.store.SaveRun(storage.RunRecord{
		Score:      out.Score,
		Coins:      out.CoinsCollected,
		DurationMs: int64(out.RunDurationMs),
		Jumps:      out.JumpsPerformed,
		DrawTimeMs: int64(out.DrawTimeMs),
	})
	m.refreshBest()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawRun(m.screen, m.engine.View(), m.best)

	dir := filepath.Join(os.Getenv("HOME"), ".inkrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("run_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawRun(m.screen, m.engine.View(), m.best)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a play session. It returns true
// when the player asked to go back to the menu rather than quit outright.
func Run(rcfg config.RunnerConfig, store *storage.Store, cfg core.RuntimeConfig, tutorial bool) (bool, error) {
	model := NewModel(rcfg, store, cfg, tutorial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Line drawing rides on mouse drags
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
