package domain

import "time"

// Post represents a single short social post as received from a post source.
// Posts are immutable once ingested; the pipeline only reads them.
type Post struct {
	ID           string
	Text         string
	AuthorHandle string
	CreatedAt    time.Time
	Engagement   Engagement
}

// Engagement holds the public interaction counters of a post.
type Engagement struct {
	Retweets int
	Likes    int
	Replies  int
	Quotes   int
}

// Category is a financial topic category. The set is closed.
type Category string

const (
	CategoryMacro      Category = "MACRO"
	CategoryEarnings   Category = "EARNINGS"
	CategoryTech       Category = "TECH"
	CategoryCrypto     Category = "CRYPTO"
	CategoryRegulation Category = "REGULATION"
)

// Categories lists all known categories in canonical order.
// Scoring iterates in this order, which also fixes tie ordering.
var Categories = []Category{
	CategoryMacro,
	CategoryEarnings,
	CategoryTech,
	CategoryCrypto,
	CategoryRegulation,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Theme is a scored topic candidate produced by one pipeline run.
// Themes are never persisted; only their identity (category + keywords)
// survives a run via the processed-theme history.
type Theme struct {
	Category        Category
	Score           float64
	Keywords        []string
	SupportingPosts []Post
}

// Query is the natural-language question sent to the insight service.
type Query struct {
	Text          string
	Theme         Theme
	SourceExcerpt string
	ComposedAt    time.Time
}

// InsightResponse is the answer returned by the insight service.
// The pipeline treats any returned response as authoritative; the service
// degrades internally rather than propagating network errors.
type InsightResponse struct {
	Insight    string
	Confidence float64
	Sources    []string
	Timestamp  time.Time
}

// ProcessedTheme is one entry of the append-only processed-theme history.
type ProcessedTheme struct {
	ID          string
	ProcessedAt time.Time
	Category    Category
	Keywords    []string
	Payload     []byte
}

// RunOutcome is the terminal result of one pipeline run.
type RunOutcome string

const (
	OutcomeAlreadyRunning     RunOutcome = "already_running"
	OutcomeNoRelevantInput    RunOutcome = "no_relevant_input"
	OutcomeNoSignificantTopic RunOutcome = "no_significant_topic"
	OutcomeSkippedDuplicate   RunOutcome = "skipped_duplicate"
	OutcomeSuccess            RunOutcome = "success"
	OutcomeFailed             RunOutcome = "failed"
)

// RunResult reports how a pipeline run terminated.
type RunResult struct {
	Outcome RunOutcome
	Theme   *Theme
	Err     error
}
