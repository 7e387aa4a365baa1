package llm

import (
	"fmt"
	"strings"
)

const classifyPromptHeader = `You are a financial news classifier. Given the numbered social posts below,
identify 1-3 dominant financial themes. Valid categories: MACRO, EARNINGS, TECH, CRYPTO, REGULATION.
Respond with a JSON object of the form
{"themes":[{"category":"MACRO","score":120,"keywords":["inflation","fed"]}]}
where score reflects how dominant the theme is and keywords are the terms that define it.
Posts:
`

const insightPromptTemplate = `You are a market analyst. Answer the following question with a concise,
actionable insight. Respond with a JSON object of the form
{"insight":"...","confidence":0.8,"sources":["..."]}
where confidence is your confidence in the answer between 0 and 1.
Question: %s`

func buildClassifyPrompt(texts []string) string {
	var sb strings.Builder

	sb.WriteString(classifyPromptHeader)

	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}

	return sb.String()
}

func buildInsightPrompt(query string) string {
	return fmt.Sprintf(insightPromptTemplate, query)
}
