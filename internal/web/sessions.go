package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/galanta/cit/internal/chat"
)

// SessionCookie names the cookie that ties a browser to its chat panel
const SessionCookie = "cit_session"

type session struct {
	panel    *chat.Panel
	lastSeen time.Time
}

// SessionStore keeps at most one chat panel per browser session. It holds
// no history: discarding a session's panel drops its messages for good.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
	newPanel func() *chat.Panel
}

// NewSessionStore creates an empty store. Panels are built with opts.
func NewSessionStore(opts ...chat.Option) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		now:      time.Now,
		newPanel: func() *chat.Panel {
			return chat.NewPanel(opts...)
		},
	}
}

// Open replaces the session's panel with a new one and returns it
func (s *SessionStore) Open(id string) *chat.Panel {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.newPanel()
	s.sessions[id] = &session{panel: p, lastSeen: s.now()}
	return p
}

// Panel returns the session's panel, if the chat is open
func (s *SessionStore) Panel(id string) (*chat.Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.panel, true
}

// Current reports whether p is still the panel on display for the session
func (s *SessionStore) Current(id string, p *chat.Panel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return ok && sess.panel == p
}

// Discard drops the session's panel
func (s *SessionStore) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops panels idle for longer than ttl and returns how many went
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) && !sess.panel.Pending() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of open panels
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sessionID returns the browser's session id, issuing a cookie when the
// request carries none or an invalid one.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
