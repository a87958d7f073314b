// Package web serves the landing page and chat as server-rendered HTML.
package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/web/components"
)

// Routes
const (
	PathHome    = "/"
	PathStart   = "/start"
	PathChat    = "/chat"
	PathLeave   = "/chat/leave"
	PathSend    = "/chat/messages"
	PathDismiss = "/chat/notice/dismiss"
	PathHealth  = "/health"
)

// DefaultNoticeTTL is how long a failure notice is shown before it closes itself
const DefaultNoticeTTL = 5 * time.Second

// latestAnchor is the element after the last message. Redirects to the chat
// target it so the list opens scrolled to the newest entry.
const latestAnchor = "latest"

// pendingRefreshSeconds reloads the chat page while a reply is awaited
const pendingRefreshSeconds = 2

// Handler serves the hero and chat pages
type Handler struct {
	sender    chat.Sender
	sessions  *SessionStore
	noticeTTL time.Duration
	now       func() time.Time
}

// New creates the page handler
func New(sender chat.Sender, sessions *SessionStore) *Handler {
	return &Handler{
		sender:    sender,
		sessions:  sessions,
		noticeTTL: DefaultNoticeTTL,
		now:       time.Now,
	}
}

// RegisterRoutes registers the page routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(PathHome, h.handleHome)
	r.Post(PathStart, h.handleStart)
	r.Get(PathChat, h.handleChat)
	r.Post(PathLeave, h.handleLeave)
	r.Post(PathSend, h.handleSend)
	r.Post(PathDismiss, h.handleDismiss)
	r.Get(PathHealth, Health)
}

// handleHome shows the hero. An open chat is left alone; only leaving it
// or starting a new one replaces it.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	sessionID(w, r)

	renderPage(w, http.StatusOK, components.PageConfig{}, components.Hero(PathStart))
}

// handleStart opens a fresh chat panel for the session
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	p := h.sessions.Open(id)

	logger.Debug("chat opened", logger.Scope("web"), "panel", p.ID())
	http.Redirect(w, r, PathChat, http.StatusSeeOther)
}

// handleLeave closes the session's chat and returns to the hero
func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	h.sessions.Discard(id)

	http.Redirect(w, r, PathHome, http.StatusSeeOther)
}

// handleChat shows the open chat, or sends the browser home when none is open
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	p, ok := h.sessions.Panel(id)
	if !ok {
		http.Redirect(w, r, PathHome, http.StatusSeeOther)
		return
	}

	h.renderChat(w, http.StatusOK, p)
}

// handleSend runs one exchange for the session's panel
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	p, ok := h.sessions.Panel(id)
	if !ok {
		http.Redirect(w, r, PathHome, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_, err := p.Send(r.Context(), h.sender, r.PostForm.Get("message"))
	switch {
	case errors.Is(err, chat.ErrRequestPending):
		h.renderChat(w, http.StatusConflict, p)
		return
	case errors.Is(err, chat.ErrEmptyInput):
		// Nothing to send; the form is shown again unchanged
	case err != nil:
		// The panel already holds the notice
		logger.Debug("send failed", logger.Scope("web"), "panel", p.ID(), logger.Err(err))
	}

	if !h.sessions.Current(id, p) {
		logger.Debug("dropping reply for a closed chat", logger.Scope("web"), "panel", p.ID())
		http.Redirect(w, r, PathHome, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, PathChat+"#"+latestAnchor, http.StatusSeeOther)
}

// handleDismiss closes the notice
func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	if p, ok := h.sessions.Panel(id); ok {
		p.DismissNotice()
	}
	http.Redirect(w, r, PathChat, http.StatusSeeOther)
}

func (h *Handler) renderChat(w http.ResponseWriter, status int, p *chat.Panel) {
	if n, ok := p.Notice(); ok && n.Expired(h.now(), h.noticeTTL) {
		p.DismissNotice()
	}

	snap := p.Snapshot()
	cfg := components.PageConfig{}
	if snap.Pending {
		cfg.RefreshSeconds = pendingRefreshSeconds
	}

	renderPage(w, status, cfg, components.Chat(snap, components.ChatPaths{
		Leave:   PathLeave,
		Send:    PathSend,
		Dismiss: PathDismiss,
		Latest:  latestAnchor,
	}))
}

func renderPage(w http.ResponseWriter, status int, cfg components.PageConfig, content ...g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := components.Layout(cfg, content...).Render(w); err != nil {
		logger.Error("render page", logger.Scope("web"), logger.Err(err))
	}
}

// Health reports liveness
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
