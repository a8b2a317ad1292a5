package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nybblesio/ckong/internal/machine"
	"github.com/nybblesio/ckong/internal/storage"
)

// historyLimit caps how many finished games the history view loads.
const historyLimit = 100

// scoresView selects what the score screen lists.
type scoresView int

const (
	viewHistory scoresView = iota // every finished game, best first
	viewMachine                   // the cabinet's five-entry table
)

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoresTabStyle   = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	scoresActiveTab  = scoresTabStyle.Foreground(lipgloss.Color("196")).Bold(true).Underline(true)
	scoresFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoresDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoresKeyMap holds the score screen bindings.
type ScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Tab}, {k.Back, k.Quit}}
}

func defaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down", "scroll down")),
		Tab:  key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "history/machine")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoresModel lists the score history and the machine high-score table.
type ScoresModel struct {
	history []storage.ScoreEntry
	stats   *storage.Stats
	machine *machine.Machine

	view   scoresView
	table  table.Model
	help   help.Model
	keys   ScoresKeyMap
	width  int
	height int

	done, back bool
}

// NewScoresModel loads the history from store. Either source may be nil.
func NewScoresModel(store *storage.Store, m *machine.Machine, width, height int) ScoresModel {
	sm := ScoresModel{
		machine: m,
		help:    help.New(),
		keys:    defaultScoresKeyMap(),
		width:   width,
		height:  height,
	}
	if store != nil {
		if entries, err := store.TopScores(historyLimit); err == nil {
			sm.history = entries
		}
		if stats, err := store.GetStats(); err == nil {
			sm.stats = stats
		}
	}
	sm.rebuild()
	return sm
}

// rebuild recreates the table for the current view and size.
func (m *ScoresModel) rebuild() {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case viewMachine:
		columns = []table.Column{{Title: "Rank", Width: 6}, {Title: "Name", Width: 6}, {Title: "Score", Width: 8}}
		if m.machine != nil {
			for i, s := range m.machine.Table {
				rows = append(rows, table.Row{rankLabel(i + 1), s.Initials(), fmt.Sprintf("%06d", s.Score)})
			}
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Stage", Width: 6},
			{Title: "Played", Width: 14},
		}
		for i, e := range m.history {
			rows = append(rows, table.Row{
				rankLabel(i + 1),
				e.Initials,
				fmt.Sprintf("%06d", e.Score),
				fmt.Sprint(e.Level),
				fmt.Sprint(e.Stage),
				e.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("88")).Bold(false)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // title, tabs, stats and help
		table.WithStyles(styles),
	)
	m.help.Width = m.width
}

// rankLabel formats a table position like the cabinet does: 1ST, 2ND...
func rankLabel(n int) string {
	suffix := "TH"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "ST"
	case n%10 == 2:
		suffix = "ND"
	case n%10 == 3:
		suffix = "RD"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Init initializes the model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the score screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.done, m.back = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.view = 1 - m.view
			m.rebuild()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the score screen.
func (m ScoresModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(scoresTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := []string{"History", "Machine"}
	for i, name := range tabs {
		if scoresView(i) == m.view {
			tabs[i] = scoresActiveTab.Render(name)
		} else {
			tabs[i] = scoresTabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	switch {
	case m.view == viewHistory && len(m.history) == 0:
		b.WriteString(scoresFrameStyle.Render(scoresDimStyle.Italic(true).Padding(2, 4).
			Render("No games recorded yet.\nInsert a coin to set a high score!")))
	default:
		b.WriteString(scoresFrameStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.view == viewHistory && m.stats != nil && m.stats.GamesCount > 0 {
		b.WriteString(scoresDimStyle.Render(fmt.Sprintf("%d games  average %.0f  best level %d",
			m.stats.GamesCount, m.stats.AvgScore, m.stats.BestLevel)))
		b.WriteString("\n")
	}
	b.WriteString(scoresDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Back reports whether the screen was left with the back key.
func (m ScoresModel) Back() bool {
	return m.back
}

// RunScoreboard shows the score screen. It returns true when the player
// went back instead of quitting.
func RunScoreboard(store *storage.Store, mach *machine.Machine, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoresModel(store, mach, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoresModel)
	return ok && m.Back(), nil
}
