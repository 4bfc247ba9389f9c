package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultEndpoint = "http://localhost:11434"
	defaultModel    = "llama3.2"

	generatePath = "/api/generate"

	// maxStreamLine caps a single NDJSON line; generation chunks are tiny
	// but the final object carries the full context array.
	maxStreamLine = 1 << 20
)

// Config holds client settings, supplied from the service configuration.
type Config struct {
	// Endpoint is the server base URL; the generate API path is
	// appended per call.
	Endpoint string
	Model    string
	// RequestsPerMinute throttles outbound generation calls.
	// Zero disables throttling.
	RequestsPerMinute int
	Timeout           time.Duration
}

// Client talks to an Ollama-compatible model-serving endpoint.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Generator = (*Client)(nil)

// NewClient creates a new model-serving client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate sends the prompt in streaming mode and returns the full
// accumulated generation. A non-2xx status is an error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	body, err := json.Marshal(GenerateRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.endpoint, "/")+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("model endpoint error %d: %s", resp.StatusCode, string(raw))
	}

	return AccumulateStream(resp.Body)
}

// AccumulateStream folds a newline-delimited JSON generation stream into
// the concatenation of its response fragments. Malformed lines are
// skipped; only a read failure is an error. Kept transport-independent
// so the fold can be tested against plain readers.
func AccumulateStream(r io.Reader) (string, error) {
	var out bytes.Buffer

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var chunk StreamChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			continue
		}
		out.WriteString(chunk.Response)

		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read generation stream: %w", err)
	}

	return out.String(), nil
}
