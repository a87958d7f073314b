// Package api implements the webhook client used by every chat surface.
package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/galanta/cit/internal/models"
)

// Doer is the part of an HTTP client the webhook client needs.
// tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookClientInterface is what the chat surfaces depend on
type WebhookClientInterface interface {
	Send(ctx context.Context, text string) (*models.WebhookReply, error)
	Endpoint() string
	Close()
}

// WebhookClient posts chat messages to a fixed webhook endpoint
type WebhookClient struct {
	httpClient  Doer
	endpoint    string
	replyField  string
	timeout     time.Duration
	extraFields map[string]string
	now         func() time.Time

	mu     sync.RWMutex
	closed bool
}

// Ensure WebhookClient implements WebhookClientInterface
var _ WebhookClientInterface = (*WebhookClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*WebhookClient)

// WithEndpoint sets the webhook URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *WebhookClient) {
		c.endpoint = endpoint
	}
}

// WithReplyField sets the gjson path of the reply text
func WithReplyField(field string) ClientOption {
	return func(c *WebhookClient) {
		c.replyField = field
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *WebhookClient) {
		c.timeout = timeout
	}
}

// WithExtraFields adds static string fields to every request body.
// The four protocol fields cannot be overridden.
func WithExtraFields(fields map[string]string) ClientOption {
	return func(c *WebhookClient) {
		c.extraFields = fields
	}
}

// WithHTTPClient replaces the transport (used by tests)
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *WebhookClient) {
		c.httpClient = doer
	}
}

// WithClock replaces time.Now (used by tests)
func WithClock(now func() time.Time) ClientOption {
	return func(c *WebhookClient) {
		c.now = now
	}
}

// NewClient creates a new WebhookClient
func NewClient(opts ...ClientOption) (*WebhookClient, error) {
	client := &WebhookClient{
		endpoint:   models.EndpointWebhook,
		replyField: models.ReplyFieldResponse,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.endpoint == "" {
		return nil, fmt.Errorf("webhook endpoint cannot be empty")
	}
	if client.replyField == "" {
		client.replyField = models.ReplyFieldResponse
	}

	if client.httpClient == nil {
		// Request lifetime is governed by the caller's context and c.timeout,
		// so the transport itself never times out.
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(0),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the webhook URL
func (c *WebhookClient) Endpoint() string {
	return c.endpoint
}

// ReplyField returns the gjson path of the reply text
func (c *WebhookClient) ReplyField() string {
	return c.replyField
}

// Close releases idle connections; later Sends fail
func (c *WebhookClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	if closer, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

// IsClosed returns whether the client is closed
func (c *WebhookClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
