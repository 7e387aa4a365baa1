package scorer

import (
	"testing"
	"time"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	return New(nil).WithClock(func() time.Time { return testNow })
}

func post(id, text string, retweets, likes, quotes int, age time.Duration) domain.Post {
	return domain.Post{
		ID:        id,
		Text:      text,
		CreatedAt: testNow.Add(-age),
		Engagement: domain.Engagement{
			Retweets: retweets,
			Likes:    likes,
			Quotes:   quotes,
		},
	}
}

func TestScoreEmptyInput(t *testing.T) {
	if themes := newTestScorer().Score(nil); len(themes) != 0 {
		t.Errorf("Score(nil) = %d themes, want 0", len(themes))
	}
}

func TestScoreNoMatches(t *testing.T) {
	posts := []domain.Post{
		post("1", "beautiful weather today", 10, 20, 0, 0),
		post("2", "anyone watching the game tonight?", 5, 8, 1, 0),
	}

	if themes := newTestScorer().Score(posts); len(themes) != 0 {
		t.Errorf("Score() = %d themes, want 0 for no keyword matches", len(themes))
	}
}

func TestScoreSingleMacroTheme(t *testing.T) {
	posts := []domain.Post{
		post("1", "BREAKING: Fed signals rate cut, inflation falls", 50, 100, 5, 0),
		post("2", "stocks flat today", 1, 2, 0, 0),
	}

	themes := newTestScorer().Score(posts)
	if len(themes) != 1 {
		t.Fatalf("Score() = %d themes, want 1", len(themes))
	}

	theme := themes[0]
	if theme.Category != domain.CategoryMacro {
		t.Errorf("category = %s, want %s", theme.Category, domain.CategoryMacro)
	}

	// (50*3 + 100*1 + 5*2) * recency boost 5 at age zero
	want := float64(50*3+100+5*2) * 5
	if theme.Score != want {
		t.Errorf("score = %v, want %v", theme.Score, want)
	}

	if len(theme.SupportingPosts) != 1 || theme.SupportingPosts[0].ID != "1" {
		t.Errorf("supporting posts = %+v, want only post 1", theme.SupportingPosts)
	}
}

func TestScorePostContributesOncePerCategory(t *testing.T) {
	// Text matches both "fed" and "inflation" but only the first keyword counts,
	// and the post is listed only once.
	posts := []domain.Post{
		post("1", "fed watches inflation closely", 10, 0, 0, 0),
	}

	themes := newTestScorer().Score(posts)
	if len(themes) != 1 {
		t.Fatalf("Score() = %d themes, want 1", len(themes))
	}

	if len(themes[0].Keywords) != 1 || themes[0].Keywords[0] != "fed" {
		t.Errorf("keywords = %v, want [fed]", themes[0].Keywords)
	}

	if len(themes[0].SupportingPosts) != 1 {
		t.Errorf("supporting posts = %d, want 1", len(themes[0].SupportingPosts))
	}
}

func TestScorePostCanSpanCategories(t *testing.T) {
	posts := []domain.Post{
		post("1", "sec opens probe into bitcoin etf approval", 10, 10, 0, 0),
	}

	themes := newTestScorer().Score(posts)
	if len(themes) != 2 {
		t.Fatalf("Score() = %d themes, want 2 (crypto + regulation)", len(themes))
	}

	got := map[domain.Category]bool{}
	for _, theme := range themes {
		got[theme.Category] = true
	}

	if !got[domain.CategoryCrypto] || !got[domain.CategoryRegulation] {
		t.Errorf("categories = %v, want crypto and regulation", got)
	}
}

func TestScoreReturnsAtMostThreeThemes(t *testing.T) {
	posts := []domain.Post{
		post("1", "fed holds rates", 100, 0, 0, 0),
		post("2", "earnings beat expectations", 50, 0, 0, 0),
		post("3", "nvidia ships new chip", 25, 0, 0, 0),
		post("4", "bitcoin rallies", 10, 0, 0, 0),
		post("5", "sec files lawsuit", 5, 0, 0, 0),
	}

	themes := newTestScorer().Score(posts)
	if len(themes) != 3 {
		t.Fatalf("Score() = %d themes, want 3", len(themes))
	}

	for i := 1; i < len(themes); i++ {
		if themes[i].Score > themes[i-1].Score {
			t.Errorf("themes not sorted: %v before %v", themes[i-1].Score, themes[i].Score)
		}
	}

	if themes[0].Category != domain.CategoryMacro {
		t.Errorf("top category = %s, want %s", themes[0].Category, domain.CategoryMacro)
	}
}

func TestScoreZeroEngagementNotSurfaced(t *testing.T) {
	posts := []domain.Post{
		post("1", "fed signals rate cut", 0, 0, 0, 0),
	}

	if themes := newTestScorer().Score(posts); len(themes) != 0 {
		t.Errorf("Score() = %d themes, want 0 for zero-engagement batch", len(themes))
	}
}

func TestRecencyBoostBounds(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh", 0, 5},
		{"fourteen_minutes", 14 * time.Minute, 5},
		{"fifteen_minutes", 15 * time.Minute, 4},
		{"thirty_minutes", 30 * time.Minute, 3},
		{"one_hour", time.Hour, 1},
		{"one_day", 24 * time.Hour, 1},
		{"future_post", -10 * time.Minute, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recencyBoost(testNow, testNow.Add(-tt.age))
			if got != tt.want {
				t.Errorf("recencyBoost(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestRecencyBoostMonotone(t *testing.T) {
	prev := recencyBoost(testNow, testNow)
	for age := time.Minute; age <= 3*time.Hour; age += time.Minute {
		cur := recencyBoost(testNow, testNow.Add(-age))
		if cur > prev {
			t.Fatalf("recencyBoost increased at age %v: %v > %v", age, cur, prev)
		}

		if cur < 1 || cur > 5 {
			t.Fatalf("recencyBoost out of bounds at age %v: %v", age, cur)
		}

		prev = cur
	}
}
