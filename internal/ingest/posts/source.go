// Package posts defines the post source boundary and its HTTP implementation.
package posts

import (
	"context"
	"time"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

// Source supplies the posts published inside a look-back window.
// An empty batch is a normal result, not an error.
type Source interface {
	Name() string
	FetchRecent(ctx context.Context, window time.Duration) ([]domain.Post, error)
}
