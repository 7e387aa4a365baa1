package dedup

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

var (
	testNow    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	errStorage = errors.New("storage error")
)

type fakeRepo struct {
	records []domain.ProcessedTheme
	listErr error
}

func (f *fakeRepo) ListProcessedSince(_ context.Context, cutoff time.Time) ([]domain.ProcessedTheme, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []domain.ProcessedTheme

	for _, r := range f.records {
		if !r.ProcessedAt.Before(cutoff) {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRepo) AppendProcessed(_ context.Context, record domain.ProcessedTheme) error {
	f.records = append(f.records, record)

	return nil
}

func (f *fakeRepo) PruneProcessed(_ context.Context, keep int) error {
	if len(f.records) <= keep {
		return nil
	}

	sort.Slice(f.records, func(i, j int) bool {
		return f.records[i].ProcessedAt.After(f.records[j].ProcessedAt)
	})

	f.records = f.records[:keep]

	return nil
}

func newTestGuard(repo Repository, windowHours, retention int) *Guard {
	logger := zerolog.Nop()

	return New(repo, windowHours, retention, &logger).WithClock(func() time.Time { return testNow })
}

func TestIsRecentlyProcessedNeverRecorded(t *testing.T) {
	guard := newTestGuard(&fakeRepo{}, 6, 100)

	if guard.IsRecentlyProcessed(context.Background(), domain.CategoryMacro, []string{"inflation"}) {
		t.Error("IsRecentlyProcessed() = true for empty history, want false")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	guard := newTestGuard(&fakeRepo{}, 6, 100)
	ctx := context.Background()

	guard.Record(ctx, domain.CategoryMacro, []string{"inflation", "fed"}, []byte(`{"q":"test"}`))

	if !guard.IsRecentlyProcessed(ctx, domain.CategoryMacro, []string{"inflation"}) {
		t.Error("IsRecentlyProcessed() = false immediately after Record with overlapping keyword, want true")
	}
}

func TestIsRecentlyProcessedDifferentCategory(t *testing.T) {
	guard := newTestGuard(&fakeRepo{}, 6, 100)
	ctx := context.Background()

	guard.Record(ctx, domain.CategoryMacro, []string{"inflation"}, nil)

	if guard.IsRecentlyProcessed(ctx, domain.CategoryCrypto, []string{"inflation"}) {
		t.Error("IsRecentlyProcessed() = true across categories, want false")
	}
}

func TestIsRecentlyProcessedOutsideWindow(t *testing.T) {
	repo := &fakeRepo{records: []domain.ProcessedTheme{
		{
			ProcessedAt: testNow.Add(-7 * time.Hour),
			Category:    domain.CategoryMacro,
			Keywords:    []string{"inflation"},
		},
	}}

	guard := newTestGuard(repo, 6, 100)

	if guard.IsRecentlyProcessed(context.Background(), domain.CategoryMacro, []string{"inflation"}) {
		t.Error("IsRecentlyProcessed() = true for record older than window, want false")
	}
}

func TestIsRecentlyProcessedLooseSubstringMatch(t *testing.T) {
	// The historical keyword "ai" matches inside the joined candidate string
	// "fair,value". Documented loose-containment behavior.
	repo := &fakeRepo{records: []domain.ProcessedTheme{
		{
			ProcessedAt: testNow.Add(-time.Hour),
			Category:    domain.CategoryTech,
			Keywords:    []string{"ai"},
		},
	}}

	guard := newTestGuard(repo, 6, 100)

	if !guard.IsRecentlyProcessed(context.Background(), domain.CategoryTech, []string{"fair", "value"}) {
		t.Error("IsRecentlyProcessed() = false, want true under loose substring matching")
	}
}

func TestIsRecentlyProcessedFailsOpen(t *testing.T) {
	guard := newTestGuard(&fakeRepo{listErr: errStorage}, 6, 100)

	if guard.IsRecentlyProcessed(context.Background(), domain.CategoryMacro, []string{"inflation"}) {
		t.Error("IsRecentlyProcessed() = true on read failure, want fail-open false")
	}
}

func TestRecordEnforcesRetention(t *testing.T) {
	repo := &fakeRepo{}
	guard := newTestGuard(repo, 6, 100)
	ctx := context.Background()

	for i := 0; i < 101; i++ {
		guard.Record(ctx, domain.CategoryMacro, []string{"inflation"}, nil)
	}

	if len(repo.records) != 100 {
		t.Errorf("history length = %d after 101 appends with cap 100, want 100", len(repo.records))
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	logger := zerolog.Nop()
	guard := New(&fakeRepo{}, 0, 0, &logger)

	if guard.window != 6*time.Hour {
		t.Errorf("window = %v, want 6h default", guard.window)
	}

	if guard.retention != 100 {
		t.Errorf("retention = %d, want 100 default", guard.retention)
	}
}
