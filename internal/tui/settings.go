package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
)

type settingsView int

const (
	viewSettingsMain settingsView = iota
	viewTUIThemeSelect
	viewStyleSelect
)

const (
	menuTUITheme = iota
	menuMarkdownStyle
	menuEmoji
	menuCopyToClipboard
	menuExit
	menuItemCount
)

const feedbackTimeout = 2 * time.Second

type feedbackClearMsg struct{}

func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var settingsKeys = settingsKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// SettingsModel edits the display preferences of the config file.
// Every change is saved immediately.
type SettingsModel struct {
	config config.Config
	save   func(config.Config) error
	path   string

	view        settingsView
	cursor      int
	themeCursor int
	styleCursor int
	feedback    string

	width int
}

// NewSettingsModel creates the settings menu for cfg. save persists each change.
func NewSettingsModel(cfg config.Config, path string, save func(config.Config) error) SettingsModel {
	m := SettingsModel{
		config: cfg,
		save:   save,
		path:   path,
	}
	m.themeCursor = indexOf(render.TUIThemeNames(), cfg.TUITheme)
	m.styleCursor = indexOf(render.StandardStyles(), cfg.Markdown.Style)
	return m
}

func indexOf(items []string, value string) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return 0
}

// Config returns the configuration as edited so far
func (m SettingsModel) Config() config.Config {
	return m.config
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case feedbackClearMsg:
		m.feedback = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, settingsKeys.Quit):
			if msg.String() == "q" && m.view != viewSettingsMain {
				m.view = viewSettingsMain
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, settingsKeys.Back):
			if m.view == viewSettingsMain {
				return m, tea.Quit
			}
			m.view = viewSettingsMain
			return m, nil
		case key.Matches(msg, settingsKeys.Up):
			m.move(-1)
		case key.Matches(msg, settingsKeys.Down):
			m.move(1)
		case key.Matches(msg, settingsKeys.Select):
			return m.handleSelect()
		}
	}

	return m, nil
}

// move shifts the cursor of the active list, wrapping at both ends
func (m *SettingsModel) move(delta int) {
	wrap := func(i, n int) int {
		return ((i+delta)%n + n) % n
	}
	switch m.view {
	case viewSettingsMain:
		m.cursor = wrap(m.cursor, menuItemCount)
	case viewTUIThemeSelect:
		m.themeCursor = wrap(m.themeCursor, len(render.TUIThemeNames()))
	case viewStyleSelect:
		m.styleCursor = wrap(m.styleCursor, len(render.StandardStyles()))
	}
}

func (m SettingsModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewTUIThemeSelect:
		name := render.TUIThemeNames()[m.themeCursor]
		m.config.TUITheme = name
		render.SetTUITheme(name)
		UpdateTheme()
		m.view = viewSettingsMain
		return m.persist(fmt.Sprintf("TUI theme set to %s", name))

	case viewStyleSelect:
		style := render.StandardStyles()[m.styleCursor]
		m.config.Markdown.Style = style
		m.view = viewSettingsMain
		return m.persist(fmt.Sprintf("Markdown style set to %s", style))
	}

	switch m.cursor {
	case menuTUITheme:
		m.view = viewTUIThemeSelect
	case menuMarkdownStyle:
		m.view = viewStyleSelect
	case menuEmoji:
		m.config.Markdown.EnableEmoji = !m.config.Markdown.EnableEmoji
		return m.persist("Emoji " + onOff(m.config.Markdown.EnableEmoji))
	case menuCopyToClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
		return m.persist("Copy to clipboard " + onOff(m.config.CopyToClipboard))
	case menuExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m SettingsModel) persist(done string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("✗ %v", err)
	} else {
		m.feedback = "✓ " + done
	}
	return m, clearFeedback(feedbackTimeout)
}

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// View implements tea.Model
func (m SettingsModel) View() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}

	var body string
	switch m.view {
	case viewTUIThemeSelect:
		body = m.renderList("TUI theme", render.TUIThemeNames(), m.themeCursor, m.config.TUITheme)
	case viewStyleSelect:
		body = m.renderList("Markdown style", render.StandardStyles(), m.styleCursor, m.config.Markdown.Style)
	default:
		body = m.renderMain()
	}

	sections := []string{
		titleStyle.Render("⚙ Configuração"),
		hintStyle.Render(m.path),
		settingsPanelStyle.Width(width).Render(body),
	}
	if m.feedback != "" {
		sections = append(sections, settingsFeedbackStyle.Render(m.feedback))
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SettingsModel) renderMain() string {
	rows := []struct {
		label string
		value string
	}{
		{"TUI Theme", settingsValueStyle.Render(m.config.TUITheme)},
		{"Markdown Style", settingsValueStyle.Render(m.config.Markdown.Style)},
		{"Emoji", renderBool(m.config.Markdown.EnableEmoji)},
		{"Copy to Clipboard", renderBool(m.config.CopyToClipboard)},
		{"Exit", ""},
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		label := fmt.Sprintf("%-20s", row.label)
		lines = append(lines, renderItem(label, i == m.cursor)+row.value)
	}
	return strings.Join(lines, "\n")
}

func (m SettingsModel) renderList(title string, items []string, cursor int, current string) string {
	lines := []string{settingsSelectedStyle.Render(title), ""}
	for i, item := range items {
		line := renderItem(item, i == cursor)
		if item == current {
			line += " " + settingsOnStyle.Render("●")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderItem(label string, selected bool) string {
	if selected {
		return settingsSelectedStyle.Render("▸ " + label)
	}
	return settingsItemStyle.Render("  " + label)
}

func renderBool(v bool) string {
	if v {
		return settingsOnStyle.Render("on")
	}
	return hintStyle.Render("off")
}

func (m SettingsModel) renderStatusBar() string {
	back := "quit"
	if m.view != viewSettingsMain {
		back = "back"
	}
	items := []string{
		statusKeyStyle.Render("↑↓") + " " + statusDescStyle.Render("move"),
		statusKeyStyle.Render("enter") + " " + statusDescStyle.Render("select"),
		statusKeyStyle.Render("esc") + " " + statusDescStyle.Render(back),
	}
	return statusBarStyle.Render(strings.Join(items, "  "))
}

// RunSettings runs the settings menu and returns the edited config
func RunSettings(cfg config.Config, path string, save func(config.Config) error) (config.Config, error) {
	p := tea.NewProgram(NewSettingsModel(cfg, path, save))
	final, err := p.Run()
	if err != nil {
		return cfg, err
	}
	if m, ok := final.(SettingsModel); ok {
		return m.Config(), nil
	}
	return cfg, nil
}
