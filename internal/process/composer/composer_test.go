package composer

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestComposer(seed int64) *Composer {
	return New(rand.New(rand.NewSource(seed)), nil).WithClock(func() time.Time { return testNow })
}

func TestComposeEmptyContext(t *testing.T) {
	_, err := newTestComposer(1).Compose(domain.Theme{Category: domain.CategoryMacro})
	if !errors.Is(err, apperrors.ErrEmptyContext) {
		t.Errorf("Compose() error = %v, want ErrEmptyContext", err)
	}
}

func TestComposeFillsQuery(t *testing.T) {
	theme := domain.Theme{
		Category: domain.CategoryMacro,
		Score:    100,
		Keywords: []string{"inflation", "fed"},
		SupportingPosts: []domain.Post{
			{ID: "1", Text: "inflation cooling faster than expected", CreatedAt: testNow},
		},
	}

	query, err := newTestComposer(1).Compose(theme)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !strings.Contains(query.Text, "inflation") {
		t.Errorf("query text %q does not contain primary keyword", query.Text)
	}

	if strings.Contains(query.Text, "{") {
		t.Errorf("query text %q contains unfilled placeholder", query.Text)
	}

	if query.SourceExcerpt != theme.SupportingPosts[0].Text {
		t.Errorf("source excerpt = %q, want post text", query.SourceExcerpt)
	}

	if !query.ComposedAt.Equal(testNow) {
		t.Errorf("composed at = %v, want %v", query.ComposedAt, testNow)
	}
}

func TestComposeDeterministicWithSeed(t *testing.T) {
	theme := domain.Theme{
		Category: domain.CategoryCrypto,
		Keywords: []string{"bitcoin"},
		SupportingPosts: []domain.Post{
			{ID: "1", Text: "bitcoin breaks resistance", CreatedAt: testNow},
		},
	}

	first, err := newTestComposer(42).Compose(theme)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	second, err := newTestComposer(42).Compose(theme)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("same seed produced different templates: %q vs %q", first.Text, second.Text)
	}
}

func TestFillTemplateCompanyFromSigilTicker(t *testing.T) {
	got := fillTemplate(
		"What do {company}'s latest earnings tell us about the stock?",
		[]string{"AAPL"},
		"$AAPL beats earnings",
		"AAPL",
	)

	want := "What do AAPL's latest earnings tell us about the stock?"
	if got != want {
		t.Errorf("fillTemplate() = %q, want %q", got, want)
	}
}

func TestFillTemplateKeywordWhenNoCompany(t *testing.T) {
	got := fillTemplate(
		"What should investors take away from the {keyword} results?",
		[]string{"earnings"},
		"another strong quarter across the board",
		"earnings",
	)

	if !strings.Contains(got, "earnings") || strings.Contains(got, "{") {
		t.Errorf("fillTemplate() = %q, want keyword substitution", got)
	}
}

func TestFillTemplateCompanyFallsBackToKeyword(t *testing.T) {
	got := fillTemplate(
		"How does the {company} news change the tech landscape?",
		[]string{"software"},
		"enterprise spend is back",
		"software",
	)

	want := "How does the software news change the tech landscape?"
	if got != want {
		t.Errorf("fillTemplate() = %q, want %q", got, want)
	}
}

func TestDetectCompany(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
		found bool
	}{
		{"sigil_ticker", []string{"$TSLA deliveries out"}, "TSLA", true},
		{"bare_allowlisted_ticker", []string{"NVDA ripping again"}, "NVDA", true},
		{"company_name_case_insensitive", []string{"Apple event next week"}, "AAPL", true},
		{"keyword_before_post", []string{"MSFT", "apple event"}, "MSFT", true},
		{"bare_uppercase_not_allowlisted", []string{"BREAKING news today"}, "", false},
		{"nothing", []string{"markets are quiet"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := detectCompany(tt.texts...)
			if got != tt.want || found != tt.found {
				t.Errorf("detectCompany(%v) = (%q, %v), want (%q, %v)", tt.texts, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestSelectBestPostPrefersEngagement(t *testing.T) {
	posts := []domain.Post{
		{ID: "low", Text: "low", CreatedAt: testNow, Engagement: domain.Engagement{Likes: 1}},
		{ID: "high", Text: "high", CreatedAt: testNow, Engagement: domain.Engagement{Retweets: 50, Likes: 100, Quotes: 4}},
	}

	if best := selectBestPost(posts); best.ID != "high" {
		t.Errorf("selectBestPost() = %s, want high", best.ID)
	}
}

func TestSelectBestPostRecencyLead(t *testing.T) {
	// 60-minute lead is worth 20 points, outweighing 15 points of engagement.
	posts := []domain.Post{
		{ID: "older", Text: "older", CreatedAt: testNow.Add(-time.Hour), Engagement: domain.Engagement{Likes: 15}},
		{ID: "newer", Text: "newer", CreatedAt: testNow},
	}

	if best := selectBestPost(posts); best.ID != "newer" {
		t.Errorf("selectBestPost() = %s, want newer", best.ID)
	}
}
