package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
)

const (
	sourceNameSocial = "social_api"

	defaultTimeout    = 30 * time.Second
	defaultFetchLimit = 100

	searchPath      = "/posts/search"
	authHeader      = "Authorization"
	bearerPrefix    = "Bearer "
	paramSince      = "since"
	paramMaxResults = "max_results"
)

// Client fetches recent posts from the social media API.
type Client struct {
	baseURL     string
	token       string
	limit       int
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *zerolog.Logger
}

// ClientConfig holds configuration for the social API client.
type ClientConfig struct {
	BaseURL string
	Token   string
	RPS     float64
	Timeout time.Duration
	Limit   int
}

func NewClient(cfg ClientConfig, logger *zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	rps := cfg.RPS
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		limit:   limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:      logger,
	}
}

func (c *Client) Name() string {
	return sourceNameSocial
}

// apiPost mirrors the wire shape of one post. Timestamps arrive in whatever
// format the upstream emits, so parsing is permissive.
type apiPost struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author_handle"`
	CreatedAt string `json:"created_at"`
	Metrics   struct {
		Retweets int `json:"retweet_count"`
		Likes    int `json:"like_count"`
		Replies  int `json:"reply_count"`
		Quotes   int `json:"quote_count"`
	} `json:"public_metrics"`
}

type searchResponse struct {
	Data []apiPost `json:"data"`
}

// FetchRecent returns posts created inside the window, newest first as the
// upstream orders them. An empty batch is returned as an empty slice.
func (c *Client) FetchRecent(ctx context.Context, window time.Duration) ([]domain.Post, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, fmt.Errorf("parse social api url: %w", err)
	}

	since := time.Now().Add(-window).UTC()

	q := endpoint.Query()
	q.Set(paramSince, since.Format(time.RFC3339))
	q.Set(paramMaxResults, strconv.Itoa(c.limit))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(authHeader, bearerPrefix+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrUnexpectedStatus, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(parsed.Data))

	for _, raw := range parsed.Data {
		post, err := convertPost(raw)
		if err != nil {
			c.logger.Debug().Err(err).Str("post_id", raw.ID).Msg("skipping unparsable post")
			continue
		}

		posts = append(posts, post)
	}

	c.logger.Debug().Int("posts", len(posts)).Time("since", since).Msg("fetched recent posts")

	return posts, nil
}

func convertPost(raw apiPost) (domain.Post, error) {
	createdAt, err := dateparse.ParseAny(raw.CreatedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("parse created_at %q: %w", raw.CreatedAt, err)
	}

	return domain.Post{
		ID:           raw.ID,
		Text:         raw.Text,
		AuthorHandle: raw.Author,
		CreatedAt:    createdAt,
		Engagement: domain.Engagement{
			Retweets: raw.Metrics.Retweets,
			Likes:    raw.Metrics.Likes,
			Replies:  raw.Metrics.Replies,
			Quotes:   raw.Metrics.Quotes,
		},
	}, nil
}

// Ensure Client implements Source interface.
var _ Source = (*Client)(nil)
