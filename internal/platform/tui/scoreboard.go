package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-cruncher/internal/registry"
	"github.com/vovakirdan/term-cruncher/internal/storage"
)

const (
	statsPanelWidth  = 28
	minWidthForStats = 88
	scoreboardRows   = 100
)

// outcomeFilter narrows the table to one kind of result.
type outcomeFilter int

const (
	filterAll outcomeFilter = iota
	filterWins
	filterCaught
)

func (f outcomeFilter) String() string {
	switch f {
	case filterWins:
		return "wins"
	case filterCaught:
		return "caught"
	default:
		return "all"
	}
}

func (f outcomeFilter) keep(o storage.Outcome) bool {
	switch f {
	case filterWins:
		return o == storage.OutcomeWin
	case filterCaught:
		return o == storage.OutcomeCaught
	default:
		return true
	}
}

// ScoreboardKeyMap defines the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Filter, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "category"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev category"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best results of each category with an
// outcome filter and a stats panel.
type ScoreboardModel struct {
	categories []registry.GameInfo
	current    int
	filter     outcomeFilter
	store      *storage.Store // may be nil
	entries    []storage.ScoreEntry
	stats      map[string]*storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard sized for a width x height terminal.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		categories: registry.List(),
		store:      store,
		keys:       DefaultScoreboardKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbWinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sbCaughtStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if avail := m.width - 8 - 34; m.wide() {
		avail -= statsPanelWidth + 4
		dateWidth = max(dateWidth, min(avail, 20))
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Streak", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the current category's results and every category's stats.
func (m *ScoreboardModel) reload() {
	m.entries = nil
	m.stats = nil
	if m.store != nil && len(m.categories) > 0 {
		if entries, err := m.store.TopScores(m.categories[m.current].ID, scoreboardRows); err == nil {
			m.entries = entries
		}
		if stats, err := m.store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

// visible returns the entries passing the filter, keeping their overall rank.
func (m ScoreboardModel) visible() []table.Row {
	var rows []table.Row
	for i, e := range m.entries {
		if !m.filter.keep(e.Outcome) {
			continue
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Streak),
			string(e.Outcome),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ScoreboardModel) fillTable() {
	m.table.SetRows(m.visible())
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveCategory(delta int) {
	if len(m.categories) == 0 {
		return
	}
	n := len(m.categories)
	m.current = (m.current + delta + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveCategory(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveCategory(-1)
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % 3
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(sbDimStyle.Render("showing: "+m.filter.String()), m.width))
	b.WriteString("\n\n")

	body := sbPanelStyle.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", sbPanelStyle.Render(m.statsPanel()))
	} else if line := m.statsLine(); line != "" {
		body = line + "\n" + body
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the category switcher, collapsing to "< title >" when the
// short names do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.categories) == 0 {
		return sbDimStyle.Render("no categories")
	}
	parts := make([]string, len(m.categories))
	for i, c := range m.categories {
		name := shortCategoryName(c.ID)
		if i == m.current {
			parts[i] = sbActiveStyle.Render(name)
		} else {
			parts[i] = sbDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.categories[m.current].Title)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		msg := "No results yet.\nCrunch some terms to set a high score!"
		if len(m.entries) > 0 {
			msg = fmt.Sprintf("No %s results.", m.filter)
		}
		return sbDimStyle.Italic(true).Padding(1, 2).Render(msg)
	}
	return m.table.View()
}

func (m ScoreboardModel) currentStats() *storage.GameStats {
	if len(m.categories) == 0 {
		return nil
	}
	st := m.stats[m.categories[m.current].ID]
	if st == nil || st.GamesCount == 0 {
		return nil
	}
	return st
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	st := m.currentStats()
	if st == nil {
		return ""
	}
	return fmt.Sprintf("played %d  won %d  best %d  best streak %d  avg %.1f",
		st.GamesCount, st.Wins, st.HighScore, st.BestStreak, st.AvgScore)
}

// statsPanel lists the selected category's stats and every category's best.
func (m ScoreboardModel) statsPanel() string {
	var b strings.Builder
	b.WriteString(sbTitleStyle.Render("Stats"))
	b.WriteString("\n")

	if st := m.currentStats(); st != nil {
		fmt.Fprintf(&b, "played       %d\n", st.GamesCount)
		fmt.Fprintf(&b, "won          %s\n", sbWinStyle.Render(strconv.Itoa(st.Wins)))
		fmt.Fprintf(&b, "caught       %s\n", sbCaughtStyle.Render(strconv.Itoa(st.GamesCount-st.Wins)))
		fmt.Fprintf(&b, "best streak  %d\n", st.BestStreak)
		fmt.Fprintf(&b, "average      %.1f\n", st.AvgScore)
		fmt.Fprintf(&b, "last played  %s\n", st.LastPlayed.Format("Jan 02"))
	} else {
		b.WriteString(sbDimStyle.Render("not played yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sbTitleStyle.Render("Best per category"))
	for _, c := range m.categories {
		best := 0
		if st := m.stats[c.ID]; st != nil {
			best = st.HighScore
		}
		fmt.Fprintf(&b, "\n%-*s %4d", statsPanelWidth-9, shortCategoryName(c.ID), best)
	}
	return b.String()
}

// shortCategoryName drops the shared prefix from a category ID.
func shortCategoryName(id string) string {
	if short, ok := strings.CutPrefix(id, "cruncher_"); ok {
		return short
	}
	return id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
