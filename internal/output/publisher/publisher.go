// Package publisher delivers formatted content to publishing surfaces.
package publisher

import "context"

// Surface names used for metrics labels.
const (
	SurfaceTelegram = "telegram"
	SurfaceShort    = "short"
)

// Publisher posts one formatted message to a surface.
type Publisher interface {
	Surface() string
	Publish(ctx context.Context, text string) error
}
