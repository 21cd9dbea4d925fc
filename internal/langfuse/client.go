// Package langfuse provides a lightweight HTTP client for the Langfuse
// ingestion API. The engine uses it to record user ratings of recommendation
// comments against the OTel trace that produced them. If not configured, the
// client operates as a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aqualog/hydration-api/internal/log"
	"github.com/google/uuid"
)

// deliveryTimeout bounds the background ingestion request.
const deliveryTimeout = 5 * time.Second

// Client records feedback scores in Langfuse.
type Client interface {
	// IsEnabled reports whether the client is configured to reach Langfuse.
	IsEnabled() bool
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
}

// ScoreInput carries one user rating for one trace.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

type client struct {
	baseURL     string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
}

// NewClient builds a client, or a disabled no-op one when the base URL or
// either key is missing.
func NewClient(cfg Config) Client {
	missing := missingSetting(cfg)
	if missing == "" {
		log.Infof("langfuse enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	} else {
		log.Infof("langfuse disabled: %s is empty", missing)
	}

	return &client{
		baseURL:     cfg.BaseURL,
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     missing == "",
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func missingSetting(cfg Config) string {
	switch {
	case cfg.BaseURL == "":
		return "LANGFUSE_BASE_URL"
	case cfg.PublicKey == "":
		return "LANGFUSE_PUBLIC_KEY"
	case cfg.SecretKey == "":
		return "LANGFUSE_SECRET_KEY"
	}
	return ""
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

// CreateScore queues the score for background delivery and returns
// immediately.
func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}

	event := scoreEvent{
		ID:        uuid.New().String(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:          uuid.New().String(),
			TraceID:     in.TraceID,
			Name:        in.Name,
			Value:       in.Value,
			Comment:     in.Comment,
			Environment: c.environment,
		},
	}

	go c.deliver(event)

	return nil
}

// deliver posts a single-event ingestion batch. Failures are logged and the
// score is dropped.
func (c *client) deliver(event scoreEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	body, err := json.Marshal(ingestionBatch{Batch: []scoreEvent{event}})
	if err != nil {
		log.Warnf("langfuse score dropped: marshal: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		log.Warnf("langfuse score dropped: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnf("langfuse score dropped: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Warnf("langfuse score dropped: ingestion returned %d", resp.StatusCode)
	}
}

// Ingestion wire format.

type ingestionBatch struct {
	Batch []scoreEvent `json:"batch"`
}

type scoreEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp string    `json:"timestamp"`
	Body      scoreBody `json:"body"`
}

type scoreBody struct {
	ID          string  `json:"id"`
	TraceID     string  `json:"traceId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Comment     string  `json:"comment,omitempty"`
	Environment string  `json:"environment,omitempty"`
}
