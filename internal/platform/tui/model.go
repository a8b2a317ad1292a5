package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/game"
	"github.com/nybblesio/ckong/internal/video"
)

// footerRows is the space reserved below the frame for the help line.
const footerRows = 1

// Options configures the Bubble Tea model.
type Options struct {
	Runtime        core.RuntimeConfig
	HoldMs         uint32 // how long a key press keeps its button down
	ScreenshotDir  string
	AutoScale      bool // pick the scale from the terminal size
	Logger         *log.Logger
	TerminalWidth  int
	TerminalHeight int
}

// Model is the Bubble Tea model that drives the engine.
type Model struct {
	engine  *game.Engine
	opts    Options
	keys    KeyMap
	help    help.Model
	log     *log.Logger
	layout  Layout
	now     uint32
	overlay []video.TextCommand
	status  string
	err     error

	quitting bool
}

// NewModel creates a model around a started engine.
func NewModel(engine *game.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = engine.Context().Log
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		engine: engine,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		log:    logger,
		layout: Layout{
			Scale:   opts.Runtime.Scale,
			OffsetX: opts.Runtime.OffsetX,
			OffsetY: opts.Runtime.OffsetY,
		},
	}
	if opts.AutoScale && opts.TerminalWidth > 0 {
		m.layout.Scale = FitScale(core.ScreenWidth, core.ScreenHeight, opts.TerminalWidth, opts.TerminalHeight-footerRows)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.opts.AutoScale {
			m.layout.Scale = FitScale(core.ScreenWidth, core.ScreenHeight, msg.Width-m.layout.OffsetX, msg.Height-m.layout.OffsetY-footerRows)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
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
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Terminals report presses only; hold the button for a short window,
	// extended by key repeat.
	ctrl := m.engine.Context().Controller
	if b, ok := m.keys.Button(msg); ok {
		ctrl.Hold(b, m.now+m.opts.HoldMs)
	}
	ctrl.HoldKey(msg.String(), m.now+m.opts.HoldMs)
	return m, nil
}

// handleTick runs one engine frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.now += m.opts.Runtime.MsPerFrame()
	if err := m.engine.Frame(m.now); err != nil {
		m.log.Error("frame failed", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.overlay = m.overlay[:0]
	m.engine.Context().Video.DrainPost(func(cmd video.TextCommand) {
		m.overlay = append(m.overlay, cmd)
	})

	if m.engine.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current frame as a PNG file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ckong_%s.png", timestamp))
	f, err := os.Create(path)
	if err != nil {
		m.log.Warn("cannot create screenshot", "path", path, "err", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, m.engine.Context().Video.Surface().Image()); err != nil {
		m.log.Warn("cannot encode screenshot", "path", path, "err", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.log.Info("screenshot saved", "path", path)
}

// Err returns the frame error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := RenderSurface(m.engine.Context().Video.Surface(), m.layout, m.overlay)
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	footer += fmt.Sprintf("  %d fps", m.engine.FPS())
	return frame + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given engine.
func Run(engine *game.Engine, opts Options) error {
	model := NewModel(engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
