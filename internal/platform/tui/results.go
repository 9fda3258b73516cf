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

	"github.com/vovakirdan/gremm-arcade/internal/core"
	"github.com/vovakirdan/gremm-arcade/internal/registry"
	"github.com/vovakirdan/gremm-arcade/internal/storage"
)

const (
	summaryMinWidth = 90 // narrower terminals drop the summary panel
	summaryWidth    = 30
	resultsLimit    = 200
)

var (
	resultsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	filterStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeFilterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	emptyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFilter: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ResultsModel lists the games played since the arcade started.
// Tab cycles between every game and the games that have results.
type ResultsModel struct {
	store     *storage.Store
	titles    map[string]string
	filters   []string // "" shows every game
	filter    int
	results   []storage.Result
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates a results board over store.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	m := ResultsModel{
		store:   store,
		titles:  titles,
		filters: append([]string{""}, store.Games()...),
		help:    help.New(),
		keys:    DefaultResultsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ResultsModel) showSummary() bool {
	return m.width >= summaryMinWidth
}

func (m *ResultsModel) newTable() table.Model {
	outcomeW := 18
	avail := m.width - 8
	if m.showSummary() {
		avail -= summaryWidth + 4
	}
	if avail > 54 {
		outcomeW = min(avail-36, 30)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Game", Width: 14},
			{Title: "Score", Width: 6},
			{Title: "Outcome", Width: outcomeW},
			{Title: "Time", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// reload fetches the results for the current filter.
func (m *ResultsModel) reload() {
	m.results = m.store.Recent(m.filters[m.filter], resultsLimit)

	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			m.title(r.GameID),
			strconv.Itoa(r.Score),
			outcome(r),
			r.CreatedAt.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ResultsModel) title(gameID string) string {
	if t, ok := m.titles[gameID]; ok {
		return t
	}
	return gameID
}

// outcome describes how a game ended.
func outcome(r storage.Result) string {
	switch {
	case !r.Finished:
		return "Quit"
	case r.Status != "":
		return r.Status
	case r.Winner != core.PlayerNone:
		return r.Winner.String() + " wins"
	default:
		return "Game over"
	}
}

// Init initializes the results board.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(resultsTitleStyle.Render(centerText("SESSION RESULTS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.filterLine(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableView())
	if m.showSummary() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Width(summaryWidth).Render(m.summary()), " ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ResultsModel) filterLine() string {
	tabs := make([]string, len(m.filters))
	for i, id := range m.filters {
		name := "All"
		if id != "" {
			name = m.title(id)
		}
		if i == m.filter {
			tabs[i] = activeFilterStyle.Render(name)
		} else {
			tabs[i] = filterStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// summary lists how often each game was played and its best finished score.
func (m ResultsModel) summary() string {
	var b strings.Builder
	b.WriteString("This session\n")
	b.WriteString(strings.Repeat("─", summaryWidth-4))
	for _, id := range m.filters[1:] {
		played := len(m.store.Recent(id, 0))
		line := fmt.Sprintf("\n%s: %d played", m.title(id), played)
		if best, ok := m.store.Best(id); ok {
			line += fmt.Sprintf(", best %d", best.Score)
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m ResultsModel) tableView() string {
	if len(m.results) == 0 {
		return emptyStyle.Render("No games played this session.\nResults are kept until you quit the arcade.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults shows the results board.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewResultsModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ResultsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
