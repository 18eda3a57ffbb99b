package usecase

import "testing"

func TestExtractThinking(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantContent  string
		wantThinking string
	}{
		{
			name:        "no tags",
			input:       "plain answer",
			wantContent: "plain answer",
		},
		{
			name:         "think block",
			input:        "<think>reasoning here</think>the answer",
			wantContent:  "the answer",
			wantThinking: "reasoning here",
		},
		{
			name:         "thinking block",
			input:        "<thinking>long form</thinking>result",
			wantContent:  "result",
			wantThinking: "long form",
		},
		{
			name:         "unterminated tag consumes the rest",
			input:        "prefix<think>never closed",
			wantContent:  "prefix",
			wantThinking: "never closed",
		},
		{
			name:         "multiple blocks concatenated",
			input:        "<think>one</think>a<think>two</think>b",
			wantContent:  "ab",
			wantThinking: "one\n\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, thinking := extractThinking(tt.input)
			if content != tt.wantContent {
				t.Errorf("content = %q, want %q", content, tt.wantContent)
			}
			if thinking != tt.wantThinking {
				t.Errorf("thinking = %q, want %q", thinking, tt.wantThinking)
			}
		})
	}
}
