package models

import (
	"strconv"
	"time"
)

// WebhookRequest is the JSON body posted to the webhook
type WebhookRequest struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// NewWebhookRequest builds a request for text sent at now. The user and
// session ids are regenerated for every message.
func NewWebhookRequest(text string, now time.Time) WebhookRequest {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return WebhookRequest{
		Message:   text,
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		UserID:    UserIDPrefix + millis,
		SessionID: SessionIDPrefix + millis,
	}
}

// WebhookReply is the parsed webhook answer
type WebhookReply struct {
	// Text is the reply to show; FallbackReply when the field was missing
	Text string
	// Found is false when the reply field was absent or empty
	Found bool
	// StatusCode of the HTTP response
	StatusCode int
	// Raw response body
	Raw []byte
}
