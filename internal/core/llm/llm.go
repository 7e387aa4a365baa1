package llm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/config"
)

// ThemeResult is one categorized theme returned by semantic classification.
type ThemeResult struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords"`
}

// InsightResult is the raw answer of an insight request.
type InsightResult struct {
	Insight    string   `json:"insight"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
}

type Client interface {
	// ClassifyThemes asks the model to categorize a batch of post texts into
	// 1-3 themes with importance scores and keyword lists.
	ClassifyThemes(ctx context.Context, texts []string) ([]ThemeResult, error)

	// GenerateInsight answers a natural-language market query.
	GenerateInsight(ctx context.Context, query string) (InsightResult, error)
}

// New creates an LLM client. When no API key is configured (or the mock
// sentinel is set), it returns the mock client.
func New(cfg *config.Config, logger *zerolog.Logger) Client {
	if logger == nil {
		nopLogger := zerolog.Nop()
		logger = &nopLogger
	}

	if cfg.LLMAPIKey == "" || cfg.LLMAPIKey == llmAPIKeyMock {
		return NewMock()
	}

	return NewOpenAI(cfg, logger)
}
