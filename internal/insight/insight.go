// Package insight wraps the LLM client as an insight service. The service
// never propagates network errors to the pipeline: any failure degrades to a
// generic low-confidence answer so that a run can still complete.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/llm"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/platform/observability"
)

const (
	degradedConfidence = 0.2
	degradedTemplate   = "Markets are actively discussing %s. A detailed analysis is temporarily unavailable; watch price action and official statements for confirmation."
)

type Service struct {
	client  llm.Client
	timeout time.Duration
	logger  *zerolog.Logger
	now     func() time.Time
}

func New(client llm.Client, timeout time.Duration, logger *zerolog.Logger) *Service {
	return &Service{
		client:  client,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// GetInsight answers a composed query. The returned response is always
// usable; degraded answers carry a low confidence score.
func (s *Service) GetInsight(ctx context.Context, query domain.Query) domain.InsightResponse {
	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.client.GenerateInsight(ctx, query.Text)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query.Text).Msg("insight generation failed, degrading")

		return s.degraded(query)
	}

	observability.InsightConfidence.Observe(result.Confidence)

	return domain.InsightResponse{
		Insight:    result.Insight,
		Confidence: result.Confidence,
		Sources:    result.Sources,
		Timestamp:  s.now(),
	}
}

func (s *Service) degraded(query domain.Query) domain.InsightResponse {
	subject := query.Text
	if len(query.Theme.Keywords) > 0 {
		subject = query.Theme.Keywords[0]
	}

	return domain.InsightResponse{
		Insight:    fmt.Sprintf(degradedTemplate, subject),
		Confidence: degradedConfidence,
		Timestamp:  s.now(),
	}
}
