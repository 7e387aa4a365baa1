package fallback

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/llm"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

const (
	sampleSize = 10
	maxThemes  = 3

	syntheticScore       = 25
	syntheticPostBacking = 3
)

// syntheticKeywords back the degraded theme when classification fails.
var syntheticKeywords = []string{"market", "stocks"}

// Classifier delegates semantic theme detection to the LLM when keyword
// scoring finds nothing.
type Classifier struct {
	client llm.Client
	logger *zerolog.Logger
}

func New(client llm.Client, logger *zerolog.Logger) *Classifier {
	return &Classifier{
		client: client,
		logger: logger,
	}
}

// Classify classifies a bounded sample of posts into themes. It never fails
// for non-empty input: any LLM error or malformed response degrades to a
// single synthetic theme backed by the first posts of the batch.
func (c *Classifier) Classify(ctx context.Context, posts []domain.Post) []domain.Theme {
	if len(posts) == 0 {
		return nil
	}

	sample := posts
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	texts := make([]string, len(sample))
	for i, post := range sample {
		texts[i] = post.Text
	}

	results, err := c.client.ClassifyThemes(ctx, texts)
	if err != nil {
		observability.FallbackClassifications.WithLabelValues("degraded").Inc()
		c.logger.Warn().Err(err).Msg("semantic classification failed, using synthetic theme")

		return []domain.Theme{c.syntheticTheme(posts)}
	}

	themes := make([]domain.Theme, 0, maxThemes)

	for _, result := range results {
		category := domain.Category(result.Category)
		if !category.Valid() || result.Score <= 0 {
			continue
		}

		// The classifier cannot attribute specific posts to specific themes,
		// so each theme carries the full sample.
		themes = append(themes, domain.Theme{
			Category:        category,
			Score:           result.Score,
			Keywords:        result.Keywords,
			SupportingPosts: sample,
		})

		if len(themes) == maxThemes {
			break
		}
	}

	if len(themes) == 0 {
		observability.FallbackClassifications.WithLabelValues("degraded").Inc()
		c.logger.Warn().Msg("semantic classification returned no usable themes, using synthetic theme")

		return []domain.Theme{c.syntheticTheme(posts)}
	}

	observability.FallbackClassifications.WithLabelValues("classified").Inc()

	return themes
}

func (c *Classifier) syntheticTheme(posts []domain.Post) domain.Theme {
	backing := posts
	if len(backing) > syntheticPostBacking {
		backing = backing[:syntheticPostBacking]
	}

	return domain.Theme{
		Category:        domain.CategoryMacro,
		Score:           syntheticScore,
		Keywords:        syntheticKeywords,
		SupportingPosts: backing,
	}
}
