package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/models"
	"github.com/galanta/cit/internal/render"
)

// Page is the top-level model: the hero screen, or the chat screen when
// chatting is set.
type Page struct {
	ctx        context.Context
	sender     chat.Sender
	renderOpts render.Options
	panelOpts  []chat.Option

	chatting bool
	chat     chatView
	help     help.Model

	width  int
	height int
}

// NewPage creates the page on the hero screen. Every conversation the page
// opens delivers its messages through sender.
func NewPage(ctx context.Context, sender chat.Sender, renderOpts render.Options, panelOpts ...chat.Option) Page {
	h := help.New()
	h.Styles.ShortKey = statusKeyStyle
	h.Styles.ShortDesc = statusDescStyle
	h.Styles.ShortSeparator = statusDescStyle

	return Page{
		ctx:        ctx,
		sender:     sender,
		renderOpts: renderOpts,
		panelOpts:  panelOpts,
		help:       h,
	}
}

// Init initializes the model
func (m Page) Init() tea.Cmd {
	return tea.SetWindowTitle(models.ChatTitle)
}

// Chatting reports whether the chat screen is showing
func (m Page) Chatting() bool {
	return m.chatting
}

// Panel returns the panel of the open chat, or nil on the hero screen
func (m Page) Panel() *chat.Panel {
	if !m.chatting {
		return nil
	}
	return m.chat.panel
}

// Update handles messages and updates the model
func (m Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.chatting {
			m.chat.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.chatting {
			return m.updateHero(msg)
		}
		return m.updateChat(msg)

	case replyMsg:
		if !m.owns(msg.panelID) {
			logger.Debug("dropping reply for a closed chat",
				logger.Scope("tui"),
				"panel", msg.panelID,
			)
			return m, nil
		}
		return m, m.chat.settle(msg)

	case noticeExpiredMsg:
		if m.owns(msg.panelID) {
			m.chat.expire(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if m.chatting {
			return m, m.chat.tick(msg)
		}
		return m, nil
	}

	if m.chatting {
		var cmd tea.Cmd
		m.chat.input, cmd = m.chat.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Page) updateHero(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, heroKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, heroKeys.Start):
		return m.startChat()
	}
	return m, nil
}

func (m Page) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, chatKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, chatKeys.Back):
		return m.goHome()
	}
	return m, m.chat.handleKey(m.ctx, msg)
}

// startChat opens the chat screen on a brand new panel
func (m Page) startChat() (tea.Model, tea.Cmd) {
	m.chat = newChatView(m.sender, m.renderOpts, m.width, m.height, m.panelOpts...)
	m.chatting = true

	logger.Debug("chat opened", logger.Scope("tui"), "panel", m.chat.panel.ID())
	return m, m.chat.input.Focus()
}

// goHome returns to the hero screen. The panel is discarded, so a reply
// still in flight for it is dropped when it lands.
func (m Page) goHome() (tea.Model, tea.Cmd) {
	logger.Debug("chat closed", logger.Scope("tui"), "panel", m.chat.panel.ID())

	m.chatting = false
	m.chat = chatView{}
	return m, nil
}

// owns reports whether panelID is the panel on screen
func (m Page) owns(panelID uint64) bool {
	return m.chatting && m.chat.panel != nil && m.chat.panel.ID() == panelID
}

// View renders the TUI
func (m Page) View() string {
	if !m.chatting {
		return renderHero(m.width, m.height, m.help.View(heroKeys))
	}
	return m.chat.view(m.help.View(chatKeys))
}

// RunPage starts the terminal landing page
func RunPage(ctx context.Context, sender chat.Sender, renderOpts render.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewPage(ctx, sender, renderOpts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
