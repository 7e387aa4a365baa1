package llm

import "context"

const (
	mockThemeScore = 100
	mockConfidence = 0.5
)

// mockClient implements the Client interface for testing and keyless runs.
type mockClient struct{}

// NewMock creates a new mock LLM client.
func NewMock() Client {
	return &mockClient{}
}

// ClassifyThemes implements Client interface.
func (c *mockClient) ClassifyThemes(_ context.Context, texts []string) ([]ThemeResult, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	return []ThemeResult{
		{
			Category: "MACRO",
			Score:    mockThemeScore,
			Keywords: []string{"market", "stocks"},
		},
	}, nil
}

// GenerateInsight implements Client interface.
func (c *mockClient) GenerateInsight(_ context.Context, query string) (InsightResult, error) {
	return InsightResult{
		Insight:    "Mock insight for: " + query,
		Confidence: mockConfidence,
	}, nil
}

// Ensure mockClient implements Client interface.
var _ Client = (*mockClient)(nil)
