package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/llm"
)

var (
	testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	errLLM  = errors.New("llm unavailable")
)

type stubLLM struct {
	result llm.InsightResult
	err    error
}

func (s *stubLLM) ClassifyThemes(_ context.Context, _ []string) ([]llm.ThemeResult, error) {
	return nil, nil
}

func (s *stubLLM) GenerateInsight(_ context.Context, _ string) (llm.InsightResult, error) {
	return s.result, s.err
}

func newTestService(client llm.Client) *Service {
	logger := zerolog.Nop()
	service := New(client, time.Minute, &logger)
	service.now = func() time.Time { return testNow }

	return service
}

func testQuery() domain.Query {
	return domain.Query{
		Text: "What does the latest news about inflation mean for the broader market?",
		Theme: domain.Theme{
			Category: domain.CategoryMacro,
			Keywords: []string{"inflation", "fed"},
		},
	}
}

func TestGetInsightMapsResult(t *testing.T) {
	stub := &stubLLM{result: llm.InsightResult{
		Insight:    "Rate cut odds are rising.",
		Confidence: 0.8,
		Sources:    []string{"fomc minutes"},
	}}

	resp := newTestService(stub).GetInsight(context.Background(), testQuery())

	if resp.Insight != "Rate cut odds are rising." {
		t.Errorf("insight = %q, want client result", resp.Insight)
	}

	if resp.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", resp.Confidence)
	}

	if len(resp.Sources) != 1 || resp.Sources[0] != "fomc minutes" {
		t.Errorf("sources = %v, want client sources", resp.Sources)
	}

	if !resp.Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v, want %v", resp.Timestamp, testNow)
	}
}

func TestGetInsightDegradesOnError(t *testing.T) {
	resp := newTestService(&stubLLM{err: errLLM}).GetInsight(context.Background(), testQuery())

	if resp.Insight == "" {
		t.Fatal("degraded insight is empty, want usable text")
	}

	if resp.Confidence != degradedConfidence {
		t.Errorf("confidence = %v, want %v", resp.Confidence, degradedConfidence)
	}

	// The primary theme keyword names the subject of the degraded answer.
	if !strings.Contains(resp.Insight, "inflation") {
		t.Errorf("degraded insight %q does not mention the primary keyword", resp.Insight)
	}
}

func TestGetInsightDegradedSubjectFallsBackToQuery(t *testing.T) {
	query := domain.Query{Text: "What is moving markets today?"}

	resp := newTestService(&stubLLM{err: errLLM}).GetInsight(context.Background(), query)

	if !strings.Contains(resp.Insight, query.Text) {
		t.Errorf("degraded insight %q does not fall back to the query text", resp.Insight)
	}
}
