// Package formatter renders an insight for the two publishing surfaces:
// Telegram HTML and a length-capped short-text surface.
package formatter

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

const (
	defaultShortLimit = 280
	excerptMaxChars   = 200
	ellipsis          = "…"
)

var titleCaser = cases.Title(language.English)

type Formatter struct {
	shortLimit int
}

func New(shortLimit int) *Formatter {
	if shortLimit <= 0 {
		shortLimit = defaultShortLimit
	}

	return &Formatter{shortLimit: shortLimit}
}

// Telegram renders the insight as a Telegram HTML message.
func (f *Formatter) Telegram(query domain.Query, resp domain.InsightResponse) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>%s</b>\n\n", categoryTitle(query.Theme.Category)))
	sb.WriteString(html.EscapeString(resp.Insight))
	sb.WriteString("\n")

	if excerpt := trim(query.SourceExcerpt, excerptMaxChars); excerpt != "" {
		sb.WriteString(fmt.Sprintf("\n<i>%s</i>\n", html.EscapeString(excerpt)))
	}

	sb.WriteString(fmt.Sprintf("\nConfidence: %.0f%%", resp.Confidence*100))

	return sb.String()
}

// Short renders the insight as a single length-capped plain-text post.
func (f *Formatter) Short(query domain.Query, resp domain.InsightResponse) string {
	prefix := categoryTitle(query.Theme.Category) + ": "

	return prefix + trim(resp.Insight, f.shortLimit-len(prefix))
}

func categoryTitle(category domain.Category) string {
	return titleCaser.String(strings.ToLower(string(category)))
}

func trim(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return strings.TrimSpace(string(runes[:limit-1])) + ellipsis
}
