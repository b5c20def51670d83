package agent

import "testing"

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain answer unchanged",
			input: "the sum is 9",
			want:  "the sum is 9",
		},
		{
			name:  "confirmation prefix removed",
			input: "That's correct! the sum is 9",
			want:  "the sum is 9",
		},
		{
			name:  "leading indeed removed",
			input: "indeed the sum is 9",
			want:  "the sum is 9",
		},
		{
			name:  "trailing indeed removed",
			input: "the sum is 9 indeed",
			want:  "the sum is 9",
		},
		{
			name:  "all removals plus first line truncation",
			input: "That's correct! indeed the sum is 9 indeed\nExtra line",
			want:  "the sum is 9",
		},
		{
			name:  "only first line kept",
			input: "first line\nsecond line\nthird line",
			want:  "first line",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   answer   ",
			want:  "answer",
		},
		{
			name:  "empty input falls back",
			input: "",
			want:  Fallback,
		},
		{
			name:  "whitespace-only input falls back",
			input: "  \t ",
			want:  Fallback,
		},
		{
			name:  "reply reduced to nothing falls back",
			input: "indeed \nmore",
			want:  Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.input); got != tt.want {
				t.Errorf("CleanResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaning a single-line string already free of the removed substrings
// returns it unchanged, so cleaning twice is a no-op.
func TestCleanResponseIdempotent(t *testing.T) {
	inputs := []string{
		"the sum of 3 and 4 is 7",
		"Vacation policy grants 25 days per year.",
		Fallback,
	}

	for _, input := range inputs {
		once := CleanResponse(input)
		twice := CleanResponse(once)
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
		if once != input {
			t.Errorf("clean input modified: %q -> %q", input, once)
		}
	}
}
