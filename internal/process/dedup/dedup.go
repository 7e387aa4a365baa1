package dedup

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

const (
	defaultWindowHours  = 6
	defaultRetentionCap = 100
)

// Repository is the persisted processed-theme history the guard reads and writes.
type Repository interface {
	ListProcessedSince(ctx context.Context, cutoff time.Time) ([]domain.ProcessedTheme, error)
	AppendProcessed(ctx context.Context, record domain.ProcessedTheme) error
	PruneProcessed(ctx context.Context, keep int) error
}

// Guard decides whether a theme identity was already processed inside the
// look-back window, and records processed themes.
type Guard struct {
	repo      Repository
	window    time.Duration
	retention int
	logger    *zerolog.Logger
	now       func() time.Time
}

// New creates a Guard. windowHours <= 0 and retention <= 0 fall back to the
// defaults (6 hours, 100 records).
func New(repo Repository, windowHours, retention int, logger *zerolog.Logger) *Guard {
	if windowHours <= 0 {
		windowHours = defaultWindowHours
	}

	if retention <= 0 {
		retention = defaultRetentionCap
	}

	return &Guard{
		repo:      repo,
		window:    time.Duration(windowHours) * time.Hour,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the guard's clock.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now

	return g
}

// IsRecentlyProcessed reports whether a record inside the window matches the
// candidate's category and keywords. Matching is deliberately loose: any stored
// keyword that is a substring of the comma-joined candidate keyword string
// counts as a repeat. History read failures fail open.
func (g *Guard) IsRecentlyProcessed(ctx context.Context, category domain.Category, keywords []string) bool {
	cutoff := g.now().Add(-g.window)

	records, err := g.repo.ListProcessedSince(ctx, cutoff)
	if err != nil {
		observability.HistoryStoreErrors.WithLabelValues("list").Inc()
		g.logger.Warn().Err(err).Msg("history read failed, treating theme as new")

		return false
	}

	joined := strings.Join(keywords, ",")

	for _, record := range records {
		if record.Category != category {
			continue
		}

		for _, stored := range record.Keywords {
			if stored != "" && strings.Contains(joined, stored) {
				observability.DedupChecks.WithLabelValues("duplicate").Inc()

				return true
			}
		}
	}

	observability.DedupChecks.WithLabelValues("new").Inc()

	return false
}

// Record appends a processed-theme record, then prunes the history to the
// retention cap. Write and prune failures are logged but never fatal: losing
// one record is preferable to blocking future runs.
func (g *Guard) Record(ctx context.Context, category domain.Category, keywords []string, payload []byte) {
	record := domain.ProcessedTheme{
		ProcessedAt: g.now(),
		Category:    category,
		Keywords:    keywords,
		Payload:     payload,
	}

	if err := g.repo.AppendProcessed(ctx, record); err != nil {
		observability.HistoryStoreErrors.WithLabelValues("append").Inc()
		g.logger.Warn().Err(err).Msg("history append failed")

		return
	}

	if err := g.repo.PruneProcessed(ctx, g.retention); err != nil {
		observability.HistoryStoreErrors.WithLabelValues("prune").Inc()
		g.logger.Warn().Err(err).Msg("history prune failed")
	}
}
