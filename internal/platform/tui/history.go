package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-grid/internal/storage"
)

// History browser layout constants
const (
	maxHistory = 200 // Max sessions to load per tab
	allRules   = ""  // Tab showing every rule
)

// HistoryColumns are the column titles shared by the browser and plain output.
var HistoryColumns = []string{"Started", "Rule", "Duration", "Ticks", "Gens", "Pop", "Overruns", "End"}

// HistoryRow formats one session for tabular display.
func HistoryRow(r storage.SessionRecord) []string {
	return []string{
		r.StartedAt.Local().Format("Jan 02 15:04"),
		r.Rule,
		r.Duration().Round(100 * time.Millisecond).String(),
		fmt.Sprintf("%d", r.Ticks),
		fmt.Sprintf("%d", r.Generations),
		fmt.Sprintf("%d", r.Population),
		fmt.Sprintf("%d", r.Overruns),
		r.EndReason,
	}
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/l", "next rule"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/h", "prev rule"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded sessions.
type HistoryModel struct {
	store    *storage.Store
	tabs     []string // allRules followed by each recorded rule
	cursor   int
	sessions []storage.SessionRecord
	stats    *storage.RuleStats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		tabs:   []string{allRules},
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if store != nil {
		rules, err := store.Rules()
		if err != nil {
			m.err = err
		}
		m.tabs = append(m.tabs, rules...)
	}

	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	widths := []int{14, 12, 10, 9, 7, 7, 8, 7}
	columns := make([]table.Column, len(HistoryColumns))
	for i, title := range HistoryColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Title, tabs, stats, help and borders
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

// CurrentRule returns the rule of the selected tab, or "" for all rules.
func (m HistoryModel) CurrentRule() string {
	return m.tabs[m.cursor]
}

// Sessions returns the sessions shown in the selected tab.
func (m HistoryModel) Sessions() []storage.SessionRecord {
	return m.sessions
}

// loadSessions reloads the table for the selected tab.
func (m *HistoryModel) loadSessions() {
	m.sessions, m.stats = nil, nil
	if m.store != nil {
		rule := m.CurrentRule()
		var err error
		if rule == allRules {
			m.sessions, err = m.store.RecentSessions(maxHistory)
		} else {
			m.sessions, err = m.store.SessionsByRule(rule, maxHistory)
			if err == nil {
				m.stats, err = m.store.StatsForRule(rule)
			}
		}
		if err != nil {
			m.err = err
		}
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = HistoryRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.loadSessions()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.loadSessions()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadSessions()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SESSION HISTORY"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(
			"%d sessions │ %d ticks total │ best %d generations │ peak population %d",
			m.stats.Sessions, m.stats.TotalTicks, m.stats.MaxGenerations, m.stats.MaxPopulation,
		)))
		b.WriteString("\n")
	}
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the rule tabs, collapsing to the current one when they
// do not fit.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, rule := range m.tabs {
		name := tabTitle(rule)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", tabTitle(m.CurrentRule()))
	}
	return line
}

func tabTitle(rule string) string {
	if rule == allRules {
		return "all"
	}
	return rule
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nRun grid to record one!")
	}
	return m.table.View()
}

// RunHistory runs the history browser until the user quits.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
