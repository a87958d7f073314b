package chat

import (
	"time"

	"github.com/galanta/cit/internal/models"
)

// Variant selects how a notice is presented
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a dismissible notification raised by the panel
type Notice struct {
	Title       string
	Description string
	Variant     Variant
	CreatedAt   time.Time
}

func sendFailedNotice(now time.Time) Notice {
	return Notice{
		Title:       models.NoticeSendFailedTitle,
		Description: models.NoticeSendFailedDescription,
		Variant:     VariantDestructive,
		CreatedAt:   now,
	}
}

// Expired reports whether the notice is older than ttl. A zero ttl never expires.
func (n Notice) Expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(n.CreatedAt) >= ttl
}
