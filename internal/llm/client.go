package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiClient calls the Gemini API with a per-call timeout and a shared
// rate limit. Any failure comes back as a *ServiceError. It is safe for
// concurrent use.
type GeminiClient struct {
	generate generateFunc
	timeout  time.Duration
	limiter  *rate.Limiter
	metrics  *metrics.Metrics
}

// NewGeminiClient creates the underlying genai client for the configured model.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, m *metrics.Metrics) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	gen := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}

	return newGeminiClient(gen, cfg.Timeout, rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst), m), nil
}

func newGeminiClient(gen generateFunc, timeout time.Duration, limiter *rate.Limiter, m *metrics.Metrics) *GeminiClient {
	return &GeminiClient{
		generate: gen,
		timeout:  timeout,
		limiter:  limiter,
		metrics:  m,
	}
}

// Generate sends prompt to the model and returns the trimmed text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	const op = "generate"
	logger := logging.FromContext(ctx)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.call(ctx, prompt)
	c.metrics.ObserveGeneration(time.Since(start), err)
	if err != nil {
		logger.LogError(op, err)
		return "", err
	}

	logger.LogInfof(op, "generated %d chars in %s", len(text), time.Since(start).Round(time.Millisecond))
	return text, nil
}

func (c *GeminiClient) call(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &ServiceError{Op: "rate limit", Err: err}
		}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", &ServiceError{Op: "generate content", Err: ctx.Err()}
		}
		return "", &ServiceError{Op: "generate content", Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ServiceError{Op: "generate content", Err: ErrEmptyResponse}
	}
	return text, nil
}
