package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galanta/cit/internal/api"
	apierrors "github.com/galanta/cit/internal/errors"
	"github.com/galanta/cit/internal/models"
	"github.com/galanta/cit/internal/render"
)

func newTestPage(t *testing.T, sender *api.MockWebhookClient) Page {
	t.Helper()
	m := NewPage(context.Background(), sender, render.DefaultOptions().WithStyle("notty"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func update(t *testing.T, m Page, msg tea.Msg) (Page, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	p, ok := next.(Page)
	if !ok {
		t.Fatalf("Update returned %T, want Page", next)
	}
	return p, cmd
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func esc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func typeText(t *testing.T, m Page, s string) Page {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// collect runs cmd and every command batched inside it
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findReply(t *testing.T, cmd tea.Cmd) replyMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if r, ok := msg.(replyMsg); ok {
			return r
		}
	}
	t.Fatal("no reply message produced")
	return replyMsg{}
}

func openChat(t *testing.T, m Page) Page {
	t.Helper()
	m, _ = update(t, m, enter())
	if !m.Chatting() {
		t.Fatal("enter on the hero screen should open the chat")
	}
	return m
}

func TestPage_StartsOnHero(t *testing.T) {
	m := newTestPage(t, &api.MockWebhookClient{})

	if m.Chatting() {
		t.Error("page should start on the hero screen")
	}
	if m.Panel() != nil {
		t.Error("hero screen has no panel")
	}

	view := m.View()
	for _, want := range []string{models.BrandName, models.StartLabel, models.FooterCompany, models.Features[0]} {
		if !strings.Contains(view, want) {
			t.Errorf("hero view missing %q", want)
		}
	}
}

func TestPage_StartOpensChatWithGreeting(t *testing.T) {
	m := openChat(t, newTestPage(t, &api.MockWebhookClient{}))

	msgs := m.Panel().Messages()
	if len(msgs) != 1 || msgs[0].Content != models.Greeting {
		t.Fatalf("messages = %+v, want only the greeting", msgs)
	}

	view := m.View()
	for _, want := range []string{models.ChatTitle, models.BackLabel, models.FooterCompany} {
		if !strings.Contains(view, want) {
			t.Errorf("chat view missing %q", want)
		}
	}
}

func TestPage_EmptyInputSendsNothing(t *testing.T) {
	mock := &api.MockWebhookClient{}
	m := openChat(t, newTestPage(t, mock))

	for _, input := range []string{"", "   "} {
		m = typeText(t, m, input)
		var cmd tea.Cmd
		m, cmd = update(t, m, enter())
		if cmd != nil {
			t.Errorf("input %q produced a command", input)
		}
	}

	if mock.Calls() != 0 {
		t.Errorf("webhook called %d times, want 0", mock.Calls())
	}
	if m.Panel().Len() != 1 {
		t.Errorf("panel has %d messages, want 1", m.Panel().Len())
	}
	if m.Panel().Pending() {
		t.Error("rejected input must not set pending")
	}
}

func TestPage_SendSuccess(t *testing.T) {
	mock := &api.MockWebhookClient{SendVal: &models.WebhookReply{Text: "Oferecemos consultoria digital.", Found: true}}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "Quais serviços?")
	m, cmd := update(t, m, enter())

	panel := m.Panel()
	if !panel.Pending() {
		t.Fatal("panel should be pending after submit")
	}
	if m.chat.input.Focused() {
		t.Error("input should be disabled while pending")
	}
	if m.chat.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.chat.input.Value())
	}
	msgs := panel.Messages()
	if len(msgs) != 2 || msgs[1].Role != models.RoleUser || msgs[1].Content != "Quais serviços?" {
		t.Fatalf("messages = %+v, want greeting then user text", msgs)
	}

	reply := findReply(t, cmd)
	if mock.Calls() != 1 || mock.Prompts[0] != "Quais serviços?" {
		t.Fatalf("webhook calls = %d prompts = %v", mock.Calls(), mock.Prompts)
	}

	m, _ = update(t, m, reply)

	msgs = panel.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[2].Role != models.RoleAssistant || msgs[2].Content != "Oferecemos consultoria digital." {
		t.Errorf("last message = %+v", msgs[2])
	}
	if panel.Pending() {
		t.Error("pending should clear after the reply")
	}
	if !m.chat.input.Focused() {
		t.Error("input should be enabled again after the reply")
	}
}

func TestPage_SubmitWhilePendingIsRejected(t *testing.T) {
	mock := &api.MockWebhookClient{}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "primeira")
	m, cmd := update(t, m, enter())
	_ = findReply(t, cmd)

	// Keys are ignored while pending
	m = typeText(t, m, "ignorada")
	if m.chat.input.Value() != "" {
		t.Errorf("input accepted keys while pending: %q", m.chat.input.Value())
	}

	m.chat.input.SetValue("segunda")
	m, cmd = update(t, m, enter())
	if cmd != nil {
		t.Error("submit while pending should produce no command")
	}
	if mock.Calls() != 1 {
		t.Errorf("webhook calls = %d, want 1", mock.Calls())
	}
	if m.Panel().Len() != 2 {
		t.Errorf("panel has %d messages, want 2", m.Panel().Len())
	}
}

func TestPage_FallbackReply(t *testing.T) {
	mock := &api.MockWebhookClient{SendVal: &models.WebhookReply{}}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "oi")
	m, cmd := update(t, m, enter())
	m, _ = update(t, m, findReply(t, cmd))

	msgs := m.Panel().Messages()
	if got := msgs[len(msgs)-1].Content; got != models.FallbackReply {
		t.Errorf("last message = %q, want fallback", got)
	}
}

func TestPage_SendFailure(t *testing.T) {
	mock := &api.MockWebhookClient{
		SendErr: apierrors.NewAPIError(500, models.EndpointWebhook, "webhook returned status 500"),
	}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "oi")
	m, cmd := update(t, m, enter())
	m, cmd = update(t, m, findReply(t, cmd))

	panel := m.Panel()
	msgs := panel.Messages()
	if len(msgs) != 2 || msgs[1].Content != "oi" {
		t.Fatalf("messages = %+v, want user message kept and no reply", msgs)
	}
	if panel.Pending() {
		t.Error("pending should clear after a failure")
	}
	n, ok := panel.Notice()
	if !ok || n.Title != models.NoticeSendFailedTitle {
		t.Fatalf("notice = %+v, %v", n, ok)
	}
	if cmd == nil {
		t.Error("failure should schedule the notice expiry")
	}
	if !strings.Contains(m.View(), models.NoticeSendFailedTitle) {
		t.Error("view should show the notice")
	}

	// A timer for an older notice leaves the current one alone
	m, _ = update(t, m, noticeExpiredMsg{panelID: panel.ID(), createdAt: n.CreatedAt.Add(-1)})
	if _, ok := panel.Notice(); !ok {
		t.Error("stale expiry closed the notice")
	}

	m, _ = update(t, m, noticeExpiredMsg{panelID: panel.ID(), createdAt: n.CreatedAt})
	if _, ok := panel.Notice(); ok {
		t.Error("notice should expire")
	}
	if !m.chat.input.Focused() {
		t.Error("input should be enabled after a failure")
	}
}

func TestPage_DismissNotice(t *testing.T) {
	mock := &api.MockWebhookClient{SendErr: apierrors.NewNetworkError("send", models.EndpointWebhook, fmt.Errorf("connection refused"))}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "oi")
	m, cmd := update(t, m, enter())
	m, _ = update(t, m, findReply(t, cmd))

	if _, ok := m.Panel().Notice(); !ok {
		t.Fatal("expected a notice")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if _, ok := m.Panel().Notice(); ok {
		t.Error("ctrl+x should dismiss the notice")
	}
}

func TestPage_ReturningHomeDiscardsPanel(t *testing.T) {
	mock := &api.MockWebhookClient{SendVal: &models.WebhookReply{Text: "resposta"}}
	m := openChat(t, newTestPage(t, mock))
	first := m.Panel()

	m = typeText(t, m, "oi")
	m, cmd := update(t, m, enter())
	m, _ = update(t, m, findReply(t, cmd))
	if first.Len() != 3 {
		t.Fatalf("first panel has %d messages, want 3", first.Len())
	}

	m, _ = update(t, m, esc())
	if m.Chatting() {
		t.Fatal("esc should return to the hero screen")
	}
	if m.Panel() != nil {
		t.Error("hero screen should hold no panel")
	}

	m = openChat(t, m)
	second := m.Panel()
	if second == first || second.ID() == first.ID() {
		t.Fatal("reopening the chat must build a new panel")
	}
	if second.Len() != 1 {
		t.Errorf("new panel has %d messages, want only the greeting", second.Len())
	}
}

func TestPage_ReplyForClosedChatIsDropped(t *testing.T) {
	mock := &api.MockWebhookClient{SendVal: &models.WebhookReply{Text: "tarde demais"}}
	m := openChat(t, newTestPage(t, mock))

	m = typeText(t, m, "oi")
	m, cmd := update(t, m, enter())
	stale := findReply(t, cmd)

	m, _ = update(t, m, esc())
	m, _ = update(t, m, stale)
	if m.Chatting() {
		t.Error("a late reply must not reopen the chat")
	}

	m = openChat(t, m)
	m, _ = update(t, m, stale)

	panel := m.Panel()
	if panel.Len() != 1 {
		t.Errorf("stale reply landed in the new panel: %+v", panel.Messages())
	}
	if panel.Pending() {
		t.Error("new panel should not be pending")
	}
}

func TestPage_ScrollsToLatest(t *testing.T) {
	mock := &api.MockWebhookClient{SendVal: &models.WebhookReply{Text: "Uma resposta com\nvárias\nlinhas\npara\nrolar"}}
	m := NewPage(context.Background(), mock, render.DefaultOptions().WithStyle("notty"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m = openChat(t, m)

	for i := 0; i < 4; i++ {
		m = typeText(t, m, fmt.Sprintf("pergunta %d", i))
		var cmd tea.Cmd
		m, cmd = update(t, m, enter())
		if !m.chat.viewport.AtBottom() {
			t.Errorf("round %d: view not at bottom after submit", i)
		}
		m, _ = update(t, m, findReply(t, cmd))
		if !m.chat.viewport.AtBottom() {
			t.Errorf("round %d: view not at bottom after reply", i)
		}
	}
}

func TestPage_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		chat bool
		key  tea.KeyMsg
	}{
		{"hero q", false, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"hero ctrl+c", false, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"chat ctrl+c", true, tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPage(t, &api.MockWebhookClient{})
			if tt.chat {
				m = openChat(t, m)
			}
			_, cmd := update(t, m, tt.key)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestPage_TypingQInChatDoesNotQuit(t *testing.T) {
	m := openChat(t, newTestPage(t, &api.MockWebhookClient{}))
	m = typeText(t, m, "q")

	if !m.Chatting() {
		t.Error("q is text on the chat screen")
	}
	if m.chat.input.Value() != "q" {
		t.Errorf("input = %q, want q", m.chat.input.Value())
	}
}

func TestPage_LongInputKeepsUpToLimit(t *testing.T) {
	m := openChat(t, newTestPage(t, &api.MockWebhookClient{}))

	m = typeText(t, m, strings.Repeat("a", 3000))
	if got := len(m.chat.input.Value()); got != 3000 {
		t.Fatalf("input length = %d, want 3000", got)
	}
	if strings.Contains(m.View(), "Limite de") {
		t.Error("no limit warning expected below the cap")
	}

	m = typeText(t, m, strings.Repeat("b", 2000))
	if got := len(m.chat.input.Value()); got != inputCharLimit {
		t.Fatalf("input length = %d, want %d", got, inputCharLimit)
	}
	if !strings.Contains(m.View(), fmt.Sprintf("Limite de %d caracteres", inputCharLimit)) {
		t.Error("view should warn that the input is full")
	}
}
