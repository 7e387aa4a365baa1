package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

func testQuery() domain.Query {
	return domain.Query{
		Text:          "What does the latest news about inflation mean for the broader market?",
		SourceExcerpt: "BREAKING: Fed signals rate cut, inflation falls",
		ComposedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Theme: domain.Theme{
			Category: domain.CategoryMacro,
			Keywords: []string{"inflation"},
		},
	}
}

func TestTelegramFormat(t *testing.T) {
	f := New(280)

	out := f.Telegram(testQuery(), domain.InsightResponse{
		Insight:    "Rate cut odds are rising & markets are repricing.",
		Confidence: 0.8,
	})

	assert.Contains(t, out, "<b>Macro</b>")
	assert.Contains(t, out, "&amp;", "insight must be HTML-escaped")
	assert.Contains(t, out, "<i>BREAKING: Fed signals rate cut, inflation falls</i>")
	assert.Contains(t, out, "Confidence: 80%")
}

func TestShortFormatRespectsLimit(t *testing.T) {
	f := New(80)

	out := f.Short(testQuery(), domain.InsightResponse{
		Insight: strings.Repeat("inflation is cooling and the fed is watching closely ", 5),
	})

	assert.LessOrEqual(t, len([]rune(out)), 80)
	assert.True(t, strings.HasPrefix(out, "Macro: "))
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestShortFormatNoTrimWhenShort(t *testing.T) {
	f := New(280)

	out := f.Short(testQuery(), domain.InsightResponse{Insight: "Watch the next CPI print."})

	assert.Equal(t, "Macro: Watch the next CPI print.", out)
}
