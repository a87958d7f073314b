// Package chat holds the state of one chat panel: the ordered message
// sequence, the pending-request flag and the last failure notice.
//
// A Panel is the single place where the "at most one request in flight"
// rule is enforced. Surfaces call Begin when the user submits, run the
// webhook exchange however suits them (a tea.Cmd, an HTTP handler), and
// settle with Complete or Fail. Send does all three synchronously.
package chat

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/models"
)

var (
	// ErrEmptyInput is returned by Begin for empty or whitespace-only input.
	ErrEmptyInput = errors.New("chat: input is empty")
	// ErrRequestPending is returned by Begin while a request is in flight.
	ErrRequestPending = errors.New("chat: a request is already pending")
	// ErrNotPending is returned when settling a panel with nothing in flight.
	ErrNotPending = errors.New("chat: no request is pending")
)

// Sender delivers one message and returns the reply
type Sender interface {
	Send(ctx context.Context, text string) (*models.WebhookReply, error)
}

var panelSeq atomic.Uint64

// Panel is safe for concurrent use.
type Panel struct {
	id       uint64
	now      func() time.Time
	greeting string

	mu       sync.Mutex
	messages []models.Message
	pending  bool
	notice   *Notice
	nextID   uint64
	revision uint64
}

// Option configures a Panel
type Option func(*Panel)

// WithClock replaces time.Now for message timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Panel) {
		p.now = now
	}
}

// WithGreeting replaces the initial assistant message. An empty greeting
// starts the panel with no messages.
func WithGreeting(text string) Option {
	return func(p *Panel) {
		p.greeting = text
	}
}

// NewPanel returns a panel holding only the greeting.
func NewPanel(opts ...Option) *Panel {
	p := &Panel{
		id:       panelSeq.Add(1),
		now:      time.Now,
		greeting: models.Greeting,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.greeting != "" {
		p.appendLocked(models.RoleAssistant, p.greeting)
	}
	return p
}

// ID distinguishes panel instances. A reply tagged with another panel's ID
// belongs to a panel that no longer exists and must be dropped.
func (p *Panel) ID() uint64 {
	return p.id
}

// Begin accepts a submission. It appends the user message, marks the panel
// pending and returns the text to deliver. Empty input and input submitted
// while pending are rejected with no side effects.
func (p *Panel) Begin(input string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	if p.pending {
		return "", ErrRequestPending
	}

	p.appendLocked(models.RoleUser, input)
	p.pending = true
	p.revision++
	return input, nil
}

// Complete settles the pending request with a reply.
func (p *Panel) Complete(reply string) (models.Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.pending {
		return models.Message{}, ErrNotPending
	}

	msg := p.appendLocked(models.RoleAssistant, reply)
	p.pending = false
	p.revision++
	return msg, nil
}

// Fail settles the pending request without a reply. The user message stays
// in the sequence and a send-failure notice replaces any previous one.
func (p *Panel) Fail(cause error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.pending {
		return ErrNotPending
	}

	p.pending = false
	n := sendFailedNotice(p.now())
	p.notice = &n
	p.revision++

	logger.Warn("message not sent",
		logger.Scope("chat"),
		"panel", p.id,
		logger.Err(cause),
	)
	return nil
}

// Send runs a whole exchange: Begin, deliver through sender, then Complete
// or Fail. It returns the assistant message on success.
func (p *Panel) Send(ctx context.Context, sender Sender, input string) (models.Message, error) {
	text, err := p.Begin(input)
	if err != nil {
		return models.Message{}, err
	}

	reply, err := sender.Send(ctx, text)
	if err != nil {
		_ = p.Fail(err)
		return models.Message{}, err
	}

	return p.Complete(ReplyText(reply))
}

// ReplyText is the assistant text for a webhook reply, or the fallback when
// the reply carried none.
func ReplyText(reply *models.WebhookReply) string {
	if reply == nil || strings.TrimSpace(reply.Text) == "" {
		return models.FallbackReply
	}
	return reply.Text
}

// Messages returns a copy of the sequence
func (p *Panel) Messages() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// Len returns the number of messages
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

// Pending reports whether a request is in flight
func (p *Panel) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// Notice returns the current notice, if any
func (p *Panel) Notice() (Notice, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.notice == nil {
		return Notice{}, false
	}
	return *p.notice, true
}

// DismissNotice clears the notice
func (p *Panel) DismissNotice() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.notice != nil {
		p.notice = nil
		p.revision++
	}
}

// Revision increases on every change of the sequence, the pending flag or
// the notice. Views scroll to the latest entry when it moves.
func (p *Panel) Revision() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revision
}

// Snapshot is a consistent view of a panel
type Snapshot struct {
	PanelID  uint64
	Messages []models.Message
	Pending  bool
	Notice   *Notice
	Revision uint64
}

// Snapshot returns the panel state read under one lock
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot{
		PanelID:  p.id,
		Messages: make([]models.Message, len(p.messages)),
		Pending:  p.pending,
		Revision: p.revision,
	}
	copy(s.Messages, p.messages)
	if p.notice != nil {
		n := *p.notice
		s.Notice = &n
	}
	return s
}

func (p *Panel) appendLocked(role models.Role, content string) models.Message {
	p.nextID++
	msg := models.Message{
		ID:        strconv.FormatUint(p.nextID, 10),
		Content:   content,
		Role:      role,
		Timestamp: p.now(),
	}
	p.messages = append(p.messages, msg)
	return msg
}
