package api

import (
	"context"
	"sync"

	"github.com/galanta/cit/internal/models"
)

// MockWebhookClient is a mock implementation of WebhookClientInterface for testing
type MockWebhookClient struct {
	// Mock return values
	SendVal     *models.WebhookReply
	SendErr     error
	EndpointVal string
	// Block, when non-nil, makes Send wait until it is closed or ctx ends
	Block chan struct{}

	mu sync.Mutex
	// Call counters/recorders
	SendCalls   int
	Prompts     []string
	CloseCalled bool
}

// Ensure MockWebhookClient implements WebhookClientInterface
var _ WebhookClientInterface = (*MockWebhookClient)(nil)

func (m *MockWebhookClient) Send(ctx context.Context, text string) (*models.WebhookReply, error) {
	m.mu.Lock()
	m.SendCalls++
	m.Prompts = append(m.Prompts, text)
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.SendErr != nil {
		return nil, m.SendErr
	}
	if m.SendVal == nil {
		return &models.WebhookReply{Text: models.FallbackReply}, nil
	}
	return m.SendVal, nil
}

func (m *MockWebhookClient) Endpoint() string {
	if m.EndpointVal == "" {
		return models.EndpointWebhook
	}
	return m.EndpointVal
}

func (m *MockWebhookClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}

// Calls returns the number of Send calls so far
func (m *MockWebhookClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SendCalls
}
