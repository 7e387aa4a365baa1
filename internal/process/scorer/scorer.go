package scorer

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

const (
	maxThemes = 3

	retweetWeight = 3
	likeWeight    = 1
	quoteWeight   = 2

	recencyBoostMax     = 5
	recencyBoostMin     = 1
	recencyBucketLength = 15 * time.Minute
)

// Scorer ranks a batch of posts against the keyword taxonomy.
type Scorer struct {
	logger *zerolog.Logger
	now    func() time.Time
}

// New creates a Scorer. The clock is injectable for tests via WithClock.
func New(logger *zerolog.Logger) *Scorer {
	return &Scorer{
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the scorer's clock.
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	s.now = now

	return s
}

type accumulator struct {
	score    float64
	keywords []string
	seen     map[string]struct{}
	posts    []domain.Post
	postIDs  map[string]struct{}
}

// Score scores posts against the taxonomy and returns up to three candidate
// themes, highest score first. An empty result means no keyword matched.
func (s *Scorer) Score(posts []domain.Post) []domain.Theme {
	if len(posts) == 0 {
		return nil
	}

	now := s.now()
	accumulators := make(map[domain.Category]*accumulator, len(domain.Categories))

	for _, post := range posts {
		text := strings.ToLower(post.Text)
		contribution := engagementWeight(post.Engagement) * recencyBoost(now, post.CreatedAt)

		for _, category := range domain.Categories {
			keyword, ok := firstMatch(text, taxonomy[category])
			if !ok {
				continue
			}

			acc := accumulators[category]
			if acc == nil {
				acc = &accumulator{
					seen:    make(map[string]struct{}),
					postIDs: make(map[string]struct{}),
				}
				accumulators[category] = acc
			}

			acc.score += contribution

			if _, dup := acc.seen[keyword]; !dup {
				acc.seen[keyword] = struct{}{}
				acc.keywords = append(acc.keywords, keyword)
			}

			if _, dup := acc.postIDs[post.ID]; !dup {
				acc.postIDs[post.ID] = struct{}{}
				acc.posts = append(acc.posts, post)
			}
		}
	}

	themes := make([]domain.Theme, 0, len(accumulators))

	for _, category := range domain.Categories {
		acc := accumulators[category]
		if acc == nil || acc.score <= 0 {
			continue
		}

		themes = append(themes, domain.Theme{
			Category:        category,
			Score:           acc.score,
			Keywords:        acc.keywords,
			SupportingPosts: acc.posts,
		})

		observability.ThemesScored.WithLabelValues(string(category)).Inc()
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Score > themes[j].Score
	})

	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}

	if s.logger != nil && len(themes) > 0 {
		s.logger.Debug().
			Int("posts", len(posts)).
			Int("themes", len(themes)).
			Str("top_category", string(themes[0].Category)).
			Float64("top_score", themes[0].Score).
			Msg("scored post batch")
	}

	return themes
}

// firstMatch returns the first keyword that appears in text.
func firstMatch(text string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword, true
		}
	}

	return "", false
}

func engagementWeight(e domain.Engagement) float64 {
	return float64(e.Retweets*retweetWeight + e.Likes*likeWeight + e.Quotes*quoteWeight)
}

// recencyBoost favors newer posts in 15-minute buckets, bounded to [1, 5].
func recencyBoost(now, createdAt time.Time) float64 {
	ageMinutes := now.Sub(createdAt).Minutes()
	if ageMinutes < 0 {
		ageMinutes = 0
	}

	boost := recencyBoostMax - math.Floor(ageMinutes/recencyBucketLength.Minutes())
	if boost < recencyBoostMin {
		boost = recencyBoostMin
	}

	return boost
}
