// Package rss maps financial news headlines from RSS feeds into posts so
// they can flow through the same scoring pipeline as social posts.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/ingest/posts"
)

const sourceName = "rss"

type Source struct {
	feedURLs []string
	maxItems int
	parser   *gofeed.Parser
	logger   *zerolog.Logger
}

func New(feedURLs []string, maxItems int, timeout time.Duration, logger *zerolog.Logger) *Source {
	parser := gofeed.NewParser()
	if timeout > 0 {
		parser.Client = newHTTPClient(timeout)
	}

	return &Source{
		feedURLs: feedURLs,
		maxItems: maxItems,
		parser:   parser,
		logger:   logger,
	}
}

func (s *Source) Name() string {
	return sourceName
}

// FetchRecent parses each feed and converts items published inside the window.
// A failing feed is logged and skipped; the remaining feeds still contribute.
func (s *Source) FetchRecent(ctx context.Context, window time.Duration) ([]domain.Post, error) {
	cutoff := time.Now().Add(-window)

	var out []domain.Post

	for _, feedURL := range s.feedURLs {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			s.logger.Warn().Err(err).Str("feed", feedURL).Msg("rss feed fetch failed")
			continue
		}

		for _, item := range feed.Items {
			if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
				continue
			}

			out = append(out, domain.Post{
				ID:           itemID(feedURL, item),
				Text:         item.Title,
				AuthorHandle: feed.Title,
				CreatedAt:    *item.PublishedParsed,
			})

			if s.maxItems > 0 && len(out) >= s.maxItems {
				return out, nil
			}
		}
	}

	return out, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func itemID(feedURL string, item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}

	if item.Link != "" {
		return item.Link
	}

	return fmt.Sprintf("%s#%s", feedURL, item.Title)
}

// Ensure Source implements the post source interface.
var _ posts.Source = (*Source)(nil)
