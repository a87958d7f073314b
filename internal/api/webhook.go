package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	apierrors "github.com/galanta/cit/internal/errors"
	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/models"
)

// maxResponseSize caps how much of a webhook response is read
const maxResponseSize = 1 << 20

// protocolFields are set by buildPayload and never overridden by extra fields
var protocolFields = map[string]bool{
	"message":    true,
	"timestamp":  true,
	"user_id":    true,
	"session_id": true,
}

// Send posts text to the webhook and returns the parsed reply.
//
// A transport failure, a non-2xx status and a body that is not JSON all
// return an error matching apierrors.ErrSendFailed. A JSON body without the
// reply field is not an error: the reply carries models.FallbackReply.
// Nothing is retried.
func (c *WebhookClient) Send(ctx context.Context, text string) (*models.WebhookReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	if c.IsClosed() {
		return nil, fmt.Errorf("client is closed")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := c.buildPayload(text, c.now())
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	logger.Debug("sending message to webhook",
		logger.Scope("api"),
		"endpoint", c.endpoint,
		"bytes", len(payload),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("webhook request failed", logger.Scope("api"), logger.Err(err))
		return nil, apierrors.NewNetworkError("send message", c.endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apierrors.NewNetworkError("read response", c.endpoint, err)
	}

	logger.Debug("webhook responded",
		logger.Scope("api"),
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, c.endpoint, "send message failed", string(body))
	}

	reply, err := ParseReply(body, c.replyField)
	if err != nil {
		return nil, err
	}
	reply.StatusCode = resp.StatusCode
	return reply, nil
}

// buildPayload encodes the webhook request and merges the extra fields.
// Extra fields are applied in key order so the body is deterministic.
func (c *WebhookClient) buildPayload(text string, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(models.NewWebhookRequest(text, now))
	if err != nil {
		return nil, err
	}

	if len(c.extraFields) == 0 {
		return payload, nil
	}

	keys := make([]string, 0, len(c.extraFields))
	for k := range c.extraFields {
		if protocolFields[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		// Keys are literal field names, not sjson paths
		payload, err = sjson.SetBytes(payload, escapePath(k), c.extraFields[k])
		if err != nil {
			return nil, fmt.Errorf("extra field %q: %w", k, err)
		}
	}
	return payload, nil
}

func escapePath(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)
	return r.Replace(key)
}

// ParseReply extracts the reply text at field from a webhook body.
//
// The body must be valid JSON. When it is an array, the first element is
// used (webhook workflows often answer with a single-item list). A missing,
// null or blank field yields models.FallbackReply with Found=false; a
// non-string value is returned as its raw JSON text.
func ParseReply(body []byte, field string) (*models.WebhookReply, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response body is not valid JSON", "")
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		root = root.Get("0")
	}

	reply := &models.WebhookReply{Raw: body}

	result := root.Get(field)
	switch {
	case !result.Exists(), result.Type == gjson.Null:
		reply.Text = models.FallbackReply
	case result.Type == gjson.String:
		if strings.TrimSpace(result.String()) == "" {
			reply.Text = models.FallbackReply
		} else {
			reply.Text = result.String()
			reply.Found = true
		}
	default:
		reply.Text = result.Raw
		reply.Found = true
	}

	return reply, nil
}
