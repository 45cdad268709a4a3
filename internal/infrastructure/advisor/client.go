// Package advisor talks to the locally hosted language-model inference
// endpoint. The model is treated as an opaque text-completion service; this
// package owns only the HTTP plumbing, the timeout, and response cleanup.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pathwise/career-advisor/internal/api/metrics"
	"github.com/pathwise/career-advisor/internal/core/domain"
)

// Client calls an Ollama-compatible /api/generate endpoint.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

// Config captures the settings for reaching the inference endpoint.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Complete sends prompt to the inference server and returns the cleaned
// completion. Unreachable or failing upstreams surface as
// domain.ErrAdvisorUnavailable; HTTP 429 as domain.ErrAdvisorRateLimited.
// The request never outlives the client timeout or ctx.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	metrics.ChatUpstreamDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domain.ErrAdvisorRateLimited
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("%w: upstream returned %d", domain.ErrAdvisorUnavailable, resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrAdvisorUnavailable, err)
	}

	var out generateResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrAdvisorUnavailable, err)
	}

	return Clean(out.Response), nil
}

var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\n?|```")

// Clean strips model artifacts the frontend should never see: end-of-sequence
// markers, markdown code fences, and surrounding whitespace.
func Clean(s string) string {
	for _, marker := range []string{"</s>", "<|endoftext|>", "<|im_end|>"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
