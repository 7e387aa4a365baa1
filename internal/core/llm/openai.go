package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/config"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

const (
	llmAPIKeyMock = "mock"

	circuitBreakerThreshold = 5
	circuitBreakerTimeout   = 1 * time.Minute
	rateLimiterBurst        = 5

	taskClassify = "classify"
	taskInsight  = "insight"

	errRateLimiter          = "rate limiter: %w"
	errOpenAIChatCompletion = "openai chat completion: %w"
)

type openaiClient struct {
	cfg         *config.Config
	client      *openai.Client
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter

	// Circuit breaker state
	consecutiveFailures int
	circuitOpenUntil    time.Time
	mu                  sync.Mutex
}

func NewOpenAI(cfg *config.Config, logger *zerolog.Logger) Client {
	return &openaiClient{
		cfg:         cfg,
		client:      openai.NewClient(cfg.LLMAPIKey),
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(cfg.LLMRateLimitRPS)), rateLimiterBurst),
	}
}

func (c *openaiClient) checkCircuit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Now().Before(c.circuitOpenUntil) {
		return fmt.Errorf("%w until %v", apperrors.ErrCircuitBreakerOpen, c.circuitOpenUntil)
	}

	return nil
}

func (c *openaiClient) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures = 0
}

func (c *openaiClient) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures++
	if c.consecutiveFailures >= circuitBreakerThreshold {
		c.circuitOpenUntil = time.Now().Add(circuitBreakerTimeout)
		c.logger.Warn().
			Int("consecutive_failures", c.consecutiveFailures).
			Time("open_until", c.circuitOpenUntil).
			Msg("Circuit breaker opened")
	}
}

func (c *openaiClient) ClassifyThemes(ctx context.Context, texts []string) ([]ThemeResult, error) {
	content, err := c.complete(ctx, taskClassify, buildClassifyPrompt(texts), true)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Themes []ThemeResult `json:"themes"`
	}

	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	if len(parsed.Themes) == 0 {
		return nil, apperrors.ErrEmptyResponse
	}

	return parsed.Themes, nil
}

func (c *openaiClient) GenerateInsight(ctx context.Context, query string) (InsightResult, error) {
	content, err := c.complete(ctx, taskInsight, buildInsightPrompt(query), true)
	if err != nil {
		return InsightResult{}, err
	}

	var result InsightResult
	if err := json.Unmarshal([]byte(extractJSON(content)), &result); err != nil {
		return InsightResult{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	if result.Insight == "" {
		return InsightResult{}, apperrors.ErrEmptyResponse
	}

	return result, nil
}

func (c *openaiClient) complete(ctx context.Context, task, prompt string, jsonMode bool) (string, error) {
	if err := c.checkCircuit(); err != nil {
		return "", err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	req := openai.ChatCompletionRequest{
		Model: c.cfg.LLMModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, req)

	observability.LLMRequestDuration.WithLabelValues(c.cfg.LLMModel, task).Observe(time.Since(start).Seconds())

	if err != nil {
		c.recordFailure()
		observability.LLMRequests.WithLabelValues(c.cfg.LLMModel, task, "error").Inc()

		return "", fmt.Errorf(errOpenAIChatCompletion, err)
	}

	c.recordSuccess()
	observability.LLMRequests.WithLabelValues(c.cfg.LLMModel, task, "success").Inc()

	if len(resp.Choices) == 0 {
		return "", apperrors.ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// Ensure openaiClient implements Client interface.
var _ Client = (*openaiClient)(nil)
