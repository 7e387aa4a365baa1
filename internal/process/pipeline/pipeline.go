// Package pipeline sequences one full detection run: fetch posts, score,
// fall back to semantic classification, compose a query, gate on the dedup
// window, fetch the insight, publish, and record the processed theme.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/output/publisher"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

// PostFetcher supplies recent posts from one source.
type PostFetcher interface {
	Name() string
	FetchRecent(ctx context.Context, window time.Duration) ([]domain.Post, error)
}

// Scorer ranks posts into candidate themes.
type Scorer interface {
	Score(posts []domain.Post) []domain.Theme
}

// FallbackClassifier classifies posts when keyword scoring finds nothing.
type FallbackClassifier interface {
	Classify(ctx context.Context, posts []domain.Post) []domain.Theme
}

// QueryComposer turns the winning theme into a query.
type QueryComposer interface {
	Compose(theme domain.Theme) (domain.Query, error)
}

// DedupGuard gates repeat themes and records processed ones.
type DedupGuard interface {
	IsRecentlyProcessed(ctx context.Context, category domain.Category, keywords []string) bool
	Record(ctx context.Context, category domain.Category, keywords []string, payload []byte)
}

// InsightService answers a composed query; it degrades internally and always
// returns a usable response.
type InsightService interface {
	GetInsight(ctx context.Context, query domain.Query) domain.InsightResponse
}

// Formatter renders the insight for the publishing surfaces.
type Formatter interface {
	Telegram(query domain.Query, resp domain.InsightResponse) string
	Short(query domain.Query, resp domain.InsightResponse) string
}

// Coordinator owns run sequencing and the single-flight guard. At most one
// run is in flight per process; concurrent requests are rejected, not queued.
type Coordinator struct {
	sources    []PostFetcher
	scorer     Scorer
	fallback   FallbackClassifier
	composer   QueryComposer
	dedup      DedupGuard
	insight    InsightService
	formatter  Formatter
	publishers []publisher.Publisher

	fetchWindow time.Duration
	logger      *zerolog.Logger

	running atomic.Bool
}

// Config wires the coordinator's collaborators.
type Config struct {
	Sources     []PostFetcher
	Scorer      Scorer
	Fallback    FallbackClassifier
	Composer    QueryComposer
	Dedup       DedupGuard
	Insight     InsightService
	Formatter   Formatter
	Publishers  []publisher.Publisher
	FetchWindow time.Duration
	Logger      *zerolog.Logger
}

func New(cfg Config) *Coordinator {
	return &Coordinator{
		sources:     cfg.Sources,
		scorer:      cfg.Scorer,
		fallback:    cfg.Fallback,
		composer:    cfg.Composer,
		dedup:       cfg.Dedup,
		insight:     cfg.Insight,
		formatter:   cfg.Formatter,
		publishers:  cfg.Publishers,
		fetchWindow: cfg.FetchWindow,
		logger:      cfg.Logger,
	}
}

// recordPayload is the opaque payload stored with each processed theme.
type recordPayload struct {
	Query      string  `json:"query"`
	Insight    string  `json:"insight"`
	Confidence float64 `json:"confidence"`
}

// RunFullProcess executes one pipeline run. A second invocation while one is
// in flight returns OutcomeAlreadyRunning with no side effects. The running
// flag clears on every exit path.
func (c *Coordinator) RunFullProcess(ctx context.Context) domain.RunResult {
	if !c.running.CompareAndSwap(false, true) {
		c.logger.Info().Msg("run rejected: pipeline already in progress")

		return c.finishWithoutFlag(domain.RunResult{Outcome: domain.OutcomeAlreadyRunning, Err: apperrors.ErrAlreadyRunning})
	}
	defer c.running.Store(false)

	start := time.Now()
	defer func() {
		observability.PipelineRunDuration.Observe(time.Since(start).Seconds())
	}()

	result := c.run(ctx)

	observability.PipelineRuns.WithLabelValues(string(result.Outcome)).Inc()

	event := c.logger.Info()
	if result.Outcome == domain.OutcomeFailed {
		event = c.logger.Error().Err(result.Err)
	}

	event.Str("outcome", string(result.Outcome)).Dur("duration", time.Since(start)).Msg("pipeline run finished")

	return result
}

func (c *Coordinator) finishWithoutFlag(result domain.RunResult) domain.RunResult {
	observability.PipelineRuns.WithLabelValues(string(result.Outcome)).Inc()

	return result
}

// run executes the pipeline stages. A panic in any collaborator is recovered
// here and terminates the run as Failed; a failed run never crashes the process.
func (c *Coordinator) run(ctx context.Context) (result domain.RunResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Interface("panic", r).
				Msg("recovered from panic in pipeline run")

			result = domain.RunResult{Outcome: domain.OutcomeFailed, Err: fmt.Errorf("pipeline panic: %v", r)}
		}
	}()

	posts := c.fetchPosts(ctx)
	if len(posts) == 0 {
		return domain.RunResult{Outcome: domain.OutcomeNoRelevantInput}
	}

	themes := c.scorer.Score(posts)
	if len(themes) == 0 {
		themes = c.fallback.Classify(ctx, posts)
	}

	if len(themes) == 0 {
		return domain.RunResult{Outcome: domain.OutcomeNoSignificantTopic}
	}

	top := themes[0]

	query, err := c.composer.Compose(top)
	if err != nil {
		// Only a precondition violation reaches here; surface it.
		return domain.RunResult{Outcome: domain.OutcomeFailed, Theme: &top, Err: err}
	}

	if c.dedup.IsRecentlyProcessed(ctx, top.Category, top.Keywords) {
		c.logger.Info().
			Str("category", string(top.Category)).
			Strs("keywords", top.Keywords).
			Msg("theme processed recently, skipping")

		return domain.RunResult{Outcome: domain.OutcomeSkippedDuplicate, Theme: &top}
	}

	resp := c.insight.GetInsight(ctx, query)

	c.publish(ctx, query, resp)

	payload, err := json.Marshal(recordPayload{
		Query:      query.Text,
		Insight:    resp.Insight,
		Confidence: resp.Confidence,
	})
	if err != nil {
		payload = nil
	}

	c.dedup.Record(ctx, top.Category, top.Keywords, payload)

	return domain.RunResult{Outcome: domain.OutcomeSuccess, Theme: &top}
}

// fetchPosts aggregates the batches of all configured sources. A failing
// source is reported and skipped; the run proceeds with what was fetched.
func (c *Coordinator) fetchPosts(ctx context.Context) []domain.Post {
	var posts []domain.Post

	for _, source := range c.sources {
		batch, err := source.FetchRecent(ctx, c.fetchWindow)
		if err != nil {
			observability.PostFetchErrors.WithLabelValues(source.Name()).Inc()
			c.logger.Warn().Err(err).Str("source", source.Name()).Msg("post fetch failed")

			continue
		}

		observability.PostsFetched.WithLabelValues(source.Name()).Add(float64(len(batch)))
		posts = append(posts, batch...)
	}

	return posts
}

// publish delivers both surfaces. Publish failures are absorbed: a delivered
// insight on one surface is preferable to failing the run.
func (c *Coordinator) publish(ctx context.Context, query domain.Query, resp domain.InsightResponse) {
	for _, pub := range c.publishers {
		text := c.formatFor(pub.Surface(), query, resp)

		if err := pub.Publish(ctx, text); err != nil {
			observability.Publishes.WithLabelValues(pub.Surface(), "error").Inc()
			c.logger.Warn().Err(err).Str("surface", pub.Surface()).Msg("publish failed")

			continue
		}

		observability.Publishes.WithLabelValues(pub.Surface(), "success").Inc()
	}
}

func (c *Coordinator) formatFor(surface string, query domain.Query, resp domain.InsightResponse) string {
	if surface == publisher.SurfaceTelegram {
		return c.formatter.Telegram(query, resp)
	}

	return c.formatter.Short(query, resp)
}
