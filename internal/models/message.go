package models

import "time"

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat panel's sequence. Values are never mutated
// after creation.
type Message struct {
	ID        string
	Content   string
	Role      Role
	Timestamp time.Time
}

// IsUser reports whether the message was typed locally
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// DisplayTime formats the timestamp the way the chat list shows it (HH:MM)
func (m Message) DisplayTime() string {
	if m.Timestamp.IsZero() {
		return ""
	}
	return m.Timestamp.Local().Format("15:04")
}
