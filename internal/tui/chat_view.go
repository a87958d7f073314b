package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/models"
	"github.com/galanta/cit/internal/render"
)

// noticeTTL is how long a failure notice stays up before it closes itself
const noticeTTL = 5 * time.Second

// inputCharLimit caps the composer; past it the hint line warns the user
const inputCharLimit = 4000

// Message types for the chat screen
type (
	// replyMsg carries the outcome of one webhook exchange, tagged with the
	// panel that issued it.
	replyMsg struct {
		panelID uint64
		reply   *models.WebhookReply
		err     error
	}

	noticeExpiredMsg struct {
		panelID   uint64
		createdAt time.Time
	}
)

// chatView is the chat screen: one panel plus the widgets that show it.
// A new chatView, with a new panel, is built every time the chat opens.
type chatView struct {
	panel      *chat.Panel
	sender     chat.Sender
	renderOpts render.Options

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	lastRevision uint64
	rendered     map[string]string

	width  int
	height int
}

func newChatView(sender chat.Sender, renderOpts render.Options, width, height int, opts ...chat.Option) chatView {
	ti := textinput.New()
	ti.Placeholder = models.InputPlaceholder
	ti.CharLimit = inputCharLimit
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}

	c := chatView{
		panel:      chat.NewPanel(opts...),
		sender:     sender,
		renderOpts: renderOpts,
		viewport:   vp,
		input:      ti,
		spinner:    s,
		rendered:   make(map[string]string),
	}
	c.setSize(width, height)
	return c
}

// setSize lays the screen out for a terminal of the given size
func (c *chatView) setSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	c.width = width
	c.height = height
	c.input.Width = width - 8
	c.refresh()
}

// layout sizes the viewport from whatever the fixed rows leave over
func (c *chatView) layout(withNotice bool) {
	// header 3, messages border 2, input 3, help text 1, key help 1, footer 1
	fixed := 11
	if withNotice {
		fixed += 4
	}

	c.viewport.Width = c.width - 4
	c.viewport.Height = c.height - fixed
	if c.viewport.Height < 3 {
		c.viewport.Height = 3
	}
}

// refresh rebuilds the message list and scrolls to the latest entry
// whenever the panel changed since the last refresh.
func (c *chatView) refresh() {
	snap := c.panel.Snapshot()
	c.layout(snap.Notice != nil)
	c.viewport.SetContent(c.renderMessages(snap))

	if snap.Revision != c.lastRevision {
		c.viewport.GotoBottom()
		c.lastRevision = snap.Revision
	}
}

// submit starts an exchange with whatever is in the input. Rejected input
// leaves everything untouched.
func (c *chatView) submit(ctx context.Context) tea.Cmd {
	text, err := c.panel.Begin(c.input.Value())
	if err != nil {
		logger.Debug("submission ignored", logger.Scope("tui"), logger.Err(err))
		return nil
	}

	c.input.Reset()
	c.input.Blur()
	c.refresh()

	return tea.Batch(
		sendMessage(ctx, c.sender, c.panel.ID(), text),
		c.spinner.Tick,
	)
}

// settle applies a reply that belongs to this view's panel
func (c *chatView) settle(msg replyMsg) tea.Cmd {
	var cmd tea.Cmd

	if msg.err != nil {
		if err := c.panel.Fail(msg.err); err != nil {
			return nil
		}
		if n, ok := c.panel.Notice(); ok {
			cmd = expireNotice(c.panel.ID(), n.CreatedAt)
		}
	} else if _, err := c.panel.Complete(chat.ReplyText(msg.reply)); err != nil {
		return nil
	}

	c.input.Focus()
	c.refresh()
	return tea.Batch(cmd, textinput.Blink)
}

// expire closes the notice if it is still the one the timer was set for
func (c *chatView) expire(msg noticeExpiredMsg) {
	n, ok := c.panel.Notice()
	if !ok || !n.CreatedAt.Equal(msg.createdAt) {
		return
	}
	c.panel.DismissNotice()
	c.refresh()
}

// handleKey deals with the keys that stay on the chat screen
func (c *chatView) handleKey(ctx context.Context, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, chatKeys.Send):
		return c.submit(ctx)

	case key.Matches(msg, chatKeys.Dismiss):
		c.panel.DismissNotice()
		c.refresh()
		return nil

	case key.Matches(msg, chatKeys.Up), key.Matches(msg, chatKeys.Down):
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return cmd
	}

	// The input takes no keys while a request is in flight
	if c.panel.Pending() {
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// tick advances the pending indicator
func (c *chatView) tick(msg spinner.TickMsg) tea.Cmd {
	if !c.panel.Pending() {
		return nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	c.refresh()
	return cmd
}

// sendMessage creates a command that delivers text to the webhook
func sendMessage(ctx context.Context, sender chat.Sender, panelID uint64, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := sender.Send(ctx, text)
		return replyMsg{panelID: panelID, reply: reply, err: err}
	}
}

func expireNotice(panelID uint64, createdAt time.Time) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{panelID: panelID, createdAt: createdAt}
	})
}

// renderMessages renders the sequence, plus the pending row when a reply
// is awaited.
func (c *chatView) renderMessages(snap chat.Snapshot) string {
	var content strings.Builder
	bubbleWidth := c.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	for i, msg := range snap.Messages {
		if i > 0 {
			content.WriteString("\n")
		}

		stamp := timeStyle.Render(" · " + msg.DisplayTime())
		if msg.IsUser() {
			label := userLabelStyle.Render("● Você") + stamp
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ CIT") + stamp
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(c.markdown(msg, bubbleWidth-4))
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	if snap.Pending {
		content.WriteString("\n")
		content.WriteString(assistantLabelStyle.Render("✦ CIT"))
		content.WriteString("\n")
		content.WriteString(assistantBubbleStyle.Render(c.spinner.View()))
		content.WriteString("\n")
	}

	return content.String()
}

// markdown renders an assistant message once per width
func (c *chatView) markdown(msg models.Message, width int) string {
	k := fmt.Sprintf("%s:%d", msg.ID, width)
	if out, ok := c.rendered[k]; ok {
		return out
	}
	out := render.Reply(msg.Content, c.renderOpts.WithWidth(width))
	c.rendered[k] = out
	return out
}

// view renders the chat screen
func (c chatView) view(helpView string) string {
	var sections []string
	contentWidth := c.width - 2

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		backStyle.Render("← "+models.BackLabel),
		hintStyle.Render("  •  "),
		titleStyle.Render(models.ChatTitle),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	if n, ok := c.panel.Notice(); ok {
		sections = append(sections, renderNotice(n, contentWidth))
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(c.viewport.Height).
		Render(c.viewport.View())
	sections = append(sections, messagesPanel)

	inputStyle := inputPanelStyle
	if c.panel.Pending() {
		inputStyle = inputPanelDisabledStyle
	}
	inputContent := lipgloss.JoinHorizontal(
		lipgloss.Left,
		inputLabelStyle.Render("›"),
		c.input.View(),
	)
	sections = append(sections, inputStyle.Width(contentWidth).Render(inputContent))

	hint := hintStyle.Width(contentWidth).MaxHeight(1).Render(models.ChatHelp)
	if c.atCharLimit() {
		hint = hintStyle.Foreground(colorWarning).Width(contentWidth).MaxHeight(1).
			Render(fmt.Sprintf("Limite de %d caracteres atingido; o restante não foi incluído.", inputCharLimit))
	}
	sections = append(sections,
		hint,
		statusBarStyle.Width(contentWidth).Align(lipgloss.Center).Render(helpView),
		renderFooter(contentWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// atCharLimit reports whether the input is full and further text is dropped
func (c chatView) atCharLimit() bool {
	return utf8.RuneCountInString(c.input.Value()) >= inputCharLimit
}

// renderNotice renders the failure toast
func renderNotice(n chat.Notice, width int) string {
	style := noticeStyle
	if n.Variant == chat.VariantDestructive {
		style = noticeDestructiveStyle
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		noticeTitleStyle.Render("⚠ "+n.Title),
		n.Description,
	)
	return style.Width(width).Render(body)
}
