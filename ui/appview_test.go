package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"

	"hrtui/ollama"
)

func TestSplitIntoChunks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		want  []string
	}{
		{
			name:  "empty string",
			input: "",
			size:  10,
			want:  nil,
		},
		{
			name:  "shorter than chunk size",
			input: "hello",
			size:  10,
			want:  []string{"hello"},
		},
		{
			name:  "exact multiple",
			input: "abcdefghij",
			size:  5,
			want:  []string{"abcde", "fghij"},
		},
		{
			name:  "uneven remainder",
			input: "abcdefg",
			size:  3,
			want:  []string{"abc", "def", "g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitIntoChunks(tt.input, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d chunks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if strings.Join(got, "") != tt.input {
				t.Errorf("chunks do not reassemble to input")
			}
		})
	}
}

func TestApplyModelFilter(t *testing.T) {
	a := &AppView{
		modelList: []ollama.ModelInfo{
			{Name: "mistral:latest"},
			{Name: "llama3.1:8b"},
			{Name: "qwen2.5:7b"},
		},
	}
	a.modelFilterInput = textinput.New()
	a.modelFilterInput.SetValue("mis")

	a.applyModelFilter()
	if len(a.filteredModelList) != 1 {
		t.Fatalf("filtered list has %d entries, want 1", len(a.filteredModelList))
	}
	if a.filteredModelList[0].Name != "mistral:latest" {
		t.Errorf("filtered to %q, want mistral:latest", a.filteredModelList[0].Name)
	}

	a.modelFilterInput.SetValue("")
	a.applyModelFilter()
	if a.filteredModelList != nil {
		t.Errorf("empty pattern should clear the filter")
	}
}

func TestSelectModelInList(t *testing.T) {
	a := &AppView{
		modelList: []ollama.ModelInfo{
			{Name: "mistral:latest"},
			{Name: "llama3.1:8b"},
		},
	}

	a.selectModelInList("llama3.1:8b")
	if a.selectedModelIdx != 1 {
		t.Errorf("selectedModelIdx = %d, want 1", a.selectedModelIdx)
	}

	a.selectModelInList("no-such-model")
	if a.selectedModelIdx != 0 {
		t.Errorf("unknown model should select index 0, got %d", a.selectedModelIdx)
	}
}

func TestRenderMarkdownTrimsTrailingNewlines(t *testing.T) {
	out := renderMarkdown("plain text", 60)
	if strings.HasSuffix(out, "\n") {
		t.Errorf("rendered markdown should not end with a newline: %q", out)
	}
	if !strings.Contains(out, "plain text") {
		t.Errorf("rendered markdown lost the content: %q", out)
	}
}
