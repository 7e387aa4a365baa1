// Package app provides the main application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// different operational modes:
//
//   - Run mode: scheduled pipeline loop (one eager run at startup, then a
//     fixed cadence)
//   - Once mode: a single pipeline run, for cron wiring and manual triggers
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/llm"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/ingest/posts"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/ingest/rss"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/insight"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/output/formatter"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/output/publisher"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/config"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/worker"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/process/composer"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/process/dedup"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/process/fallback"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/process/pipeline"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/process/scorer"
	db "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/storage"
)

const workerName = "insight-pipeline"

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg      *config.Config
	database *db.DB
	logger   *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, database *db.DB, logger *zerolog.Logger) *App {
	return &App{
		cfg:      cfg,
		database: database,
		logger:   logger,
	}
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	srv := observability.NewServer(a.database, a.cfg.HealthPort, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("health server start: %w", err)
	}

	return nil
}

// Run runs the scheduled pipeline mode.
func (a *App) Run(ctx context.Context) error {
	coordinator, err := a.newCoordinator()
	if err != nil {
		return err
	}

	return worker.SingleTickerLoop(ctx, worker.SingleTickerConfig{
		Name:       workerName,
		Interval:   a.cfg.RunInterval,
		RunOnStart: true,
		OnTick: func(ctx context.Context) {
			coordinator.RunFullProcess(ctx)
		},
		Logger: a.logger,
	})
}

// RunOnce executes a single pipeline run and exits.
func (a *App) RunOnce(ctx context.Context) error {
	coordinator, err := a.newCoordinator()
	if err != nil {
		return err
	}

	result := coordinator.RunFullProcess(ctx)
	if result.Err != nil {
		return fmt.Errorf("pipeline run: %w", result.Err)
	}

	return nil
}

func (a *App) newCoordinator() (*pipeline.Coordinator, error) {
	llmClient := llm.New(a.cfg, a.logger)

	publishers, err := a.newPublishers()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pipeline.New(pipeline.Config{
		Sources:     a.newSources(),
		Scorer:      scorer.New(a.componentLogger("scorer")),
		Fallback:    fallback.New(llmClient, a.componentLogger("fallback")),
		Composer:    composer.New(rng, a.componentLogger("composer")),
		Dedup:       dedup.New(a.database, a.cfg.DedupWindowHours, a.cfg.HistoryRetention, a.componentLogger("dedup")),
		Insight:     insight.New(llmClient, a.cfg.InsightTimeout, a.componentLogger("insight")),
		Formatter:   formatter.New(a.cfg.ShortTextLimit),
		Publishers:  publishers,
		FetchWindow: a.cfg.SocialFetchWindow,
		Logger:      a.logger,
	}), nil
}

func (a *App) newSources() []pipeline.PostFetcher {
	sources := []pipeline.PostFetcher{
		posts.NewClient(posts.ClientConfig{
			BaseURL: a.cfg.SocialAPIBaseURL,
			Token:   a.cfg.SocialAPIToken,
			RPS:     a.cfg.SocialAPIRPS,
			Timeout: a.cfg.SocialAPITimeout,
			Limit:   a.cfg.SocialFetchLimit,
		}, a.componentLogger("posts")),
	}

	if len(a.cfg.RSSFeedURLs) > 0 {
		sources = append(sources, rss.New(a.cfg.RSSFeedURLs, a.cfg.RSSMaxItems, a.cfg.RSSFetchTimeout, a.componentLogger("rss")))
	}

	return sources
}

func (a *App) newPublishers() ([]publisher.Publisher, error) {
	telegram, err := publisher.NewTelegram(a.cfg.BotToken, a.cfg.TargetChatID, a.componentLogger("telegram"))
	if err != nil {
		return nil, fmt.Errorf("telegram publisher init: %w", err)
	}

	return []publisher.Publisher{
		telegram,
		publisher.NewLog(a.componentLogger("short")),
	}, nil
}

func (a *App) componentLogger(name string) *zerolog.Logger {
	logger := a.logger.With().Str("component", name).Logger()

	return &logger
}
