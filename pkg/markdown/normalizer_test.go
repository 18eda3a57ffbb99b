package markdown

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "space after bullet marker",
			input: "-first\n- second",
			want:  "- first\n- second",
		},
		{
			name:  "space after numbered marker",
			input: "1.one\n2. two",
			want:  "1. one\n2. two",
		},
		{
			name:  "blank line before list",
			input: "Summary:\n- item one\n- item two",
			want:  "Summary:\n\n- item one\n- item two",
		},
		{
			name:  "unclosed code fence",
			input: "```go\nfunc main() {}",
			want:  "```go\nfunc main() {}\n```",
		},
		{
			name:  "code fence content untouched",
			input: "```\n-notalist\n```",
			want:  "```\n-notalist\n```",
		},
		{
			name:  "bold heading gets breathing room",
			input: "intro\n**Section**\nbody",
			want:  "intro\n\n**Section**\n\nbody",
		},
		{
			name:  "excess blank lines collapsed",
			input: "a\n\n\n\nb",
			want:  "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
