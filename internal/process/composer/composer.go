package composer

import (
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
)

const (
	bestRetweetWeight = 2
	bestLikeWeight    = 1
	bestQuoteWeight   = 1.5

	recencyPointsPerLead = 10
	recencyLeadUnit      = 30 * time.Minute
)

// Composer turns a winning theme into a natural-language query.
type Composer struct {
	rng    *rand.Rand
	logger *zerolog.Logger
	now    func() time.Time
}

// New creates a Composer. The random source is injectable so template
// selection is deterministic in tests.
func New(rng *rand.Rand, logger *zerolog.Logger) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Composer{
		rng:    rng,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the composer's clock.
func (c *Composer) WithClock(now func() time.Time) *Composer {
	c.now = now

	return c
}

// Compose builds the query for a theme. The theme must carry at least one
// supporting post; an empty context is an upstream scorer bug.
func (c *Composer) Compose(theme domain.Theme) (domain.Query, error) {
	if len(theme.SupportingPosts) == 0 {
		return domain.Query{}, apperrors.ErrEmptyContext
	}

	best := selectBestPost(theme.SupportingPosts)

	primaryKeyword := defaultKeyword
	if len(theme.Keywords) > 0 {
		primaryKeyword = theme.Keywords[0]
	}

	phrasings := templates[theme.Category]
	if len(phrasings) == 0 {
		phrasings = templates[domain.CategoryMacro]
	}

	template := phrasings[c.rng.Intn(len(phrasings))]

	text := fillTemplate(template, theme.Keywords, best.Text, primaryKeyword)

	if c.logger != nil {
		c.logger.Debug().
			Str("category", string(theme.Category)).
			Str("keyword", primaryKeyword).
			Str("post_id", best.ID).
			Msg("composed query")
	}

	return domain.Query{
		Text:          text,
		Theme:         theme,
		SourceExcerpt: best.Text,
		ComposedAt:    c.now(),
	}, nil
}

// fillTemplate substitutes the company placeholder when the template asks for
// one and a company is detected in the keywords or the source post; otherwise
// the keyword placeholder is filled with the primary keyword.
func fillTemplate(template string, keywords []string, postText, primaryKeyword string) string {
	if strings.Contains(template, placeholderCompany) {
		scanTexts := append(append([]string{}, keywords...), postText)
		if company, ok := detectCompany(scanTexts...); ok {
			return strings.ReplaceAll(template, placeholderCompany, company)
		}

		// No company detected; fall back to keyword phrasing.
		return strings.ReplaceAll(template, placeholderCompany, primaryKeyword)
	}

	return strings.ReplaceAll(template, placeholderKeyword, primaryKeyword)
}

// selectBestPost ranks supporting posts by engagement plus a recency lead of
// 10 points per 30 minutes ahead of the oldest candidate.
func selectBestPost(posts []domain.Post) domain.Post {
	oldest := posts[0].CreatedAt
	for _, post := range posts[1:] {
		if post.CreatedAt.Before(oldest) {
			oldest = post.CreatedAt
		}
	}

	best := posts[0]
	bestScore := postRelevance(posts[0], oldest)

	for _, post := range posts[1:] {
		if score := postRelevance(post, oldest); score > bestScore {
			best = post
			bestScore = score
		}
	}

	return best
}

func postRelevance(post domain.Post, oldest time.Time) float64 {
	engagement := float64(post.Engagement.Retweets)*bestRetweetWeight +
		float64(post.Engagement.Likes)*bestLikeWeight +
		float64(post.Engagement.Quotes)*bestQuoteWeight

	lead := post.CreatedAt.Sub(oldest).Minutes() / recencyLeadUnit.Minutes()

	return engagement + lead*recencyPointsPerLead
}
