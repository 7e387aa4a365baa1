package composer

import "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"

const (
	placeholderCompany = "{company}"
	placeholderKeyword = "{keyword}"

	// defaultKeyword is substituted when a theme carries no keywords.
	defaultKeyword = "the market"
)

// templates holds five phrasings per category. A template may reference either
// the detected company or the theme's primary keyword.
var templates = map[domain.Category][]string{
	domain.CategoryMacro: {
		"What does the latest news about {keyword} mean for the broader market?",
		"How should investors position themselves given recent {keyword} developments?",
		"What is the market impact of the current {keyword} situation?",
		"Break down how {keyword} is moving markets right now.",
		"What are the second-order effects of today's {keyword} news?",
	},
	domain.CategoryEarnings: {
		"What do {company}'s latest earnings tell us about the stock?",
		"How did {company} perform this quarter and what does it signal?",
		"What should investors take away from the {keyword} results?",
		"Is the market reaction to {company}'s report justified?",
		"What does the {keyword} guidance mean going forward?",
	},
	domain.CategoryTech: {
		"What is driving the latest {keyword} momentum in tech?",
		"How does the {company} news change the tech landscape?",
		"What should investors know about {company} right now?",
		"Is the {keyword} trend sustainable for tech stocks?",
		"What are the implications of today's {keyword} developments?",
	},
	domain.CategoryCrypto: {
		"What is behind the current {keyword} move in crypto?",
		"How should crypto investors read the latest {keyword} news?",
		"What does the {keyword} development mean for digital assets?",
		"Is this {keyword} momentum likely to continue?",
		"What are the risks around the current {keyword} situation?",
	},
	domain.CategoryRegulation: {
		"How will the latest {keyword} action affect the market?",
		"What does the regulatory news around {company} mean for investors?",
		"What is the market exposure to this {keyword} development?",
		"How serious is the {keyword} risk for the sector?",
		"What precedent does this {keyword} move set?",
	},
}
