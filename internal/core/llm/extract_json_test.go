package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pure_object",
			input: `{"key":"value"}`,
			want:  `{"key":"value"}`,
		},
		{
			name:  "object_with_preamble",
			input: `Here: {"key":"value"} done.`,
			want:  `{"key":"value"}`,
		},
		{
			name:  "markdown_wrapped_object",
			input: "```json\n{\"themes\":[]}\n```",
			want:  `{"themes":[]}`,
		},
		{
			name:  "bare_array",
			input: `result: [1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "no_json",
			input: "just some text",
			want:  "just some text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.input)
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
