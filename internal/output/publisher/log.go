package publisher

import (
	"context"

	"github.com/rs/zerolog"
)

// LogPublisher writes the short-text surface to the log. It stands in for a
// social posting surface when no credentials are configured.
type LogPublisher struct {
	logger *zerolog.Logger
}

func NewLog(logger *zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Surface() string {
	return SurfaceShort
}

func (p *LogPublisher) Publish(_ context.Context, text string) error {
	p.logger.Info().Str("surface", SurfaceShort).Str("text", text).Msg("published short post")

	return nil
}

// Ensure LogPublisher implements Publisher interface.
var _ Publisher = (*LogPublisher)(nil)
