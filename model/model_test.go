package model

import (
	"testing"

	"hrtui/config"
)

func testModel() *Model {
	cfg := &config.Config{
		OllamaHost:   "http://localhost:11434",
		DefaultModel: "mistral:latest",
		MaxToolSteps: 5,
	}
	return NewModel(cfg, nil, nil, "test", "Apache-2.0")
}

func TestAppendUserTurnIgnoresBlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n  \n", false},
		{"real input", "how many vacation days do I get?", true},
		{"input with surrounding space", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			got := m.AppendUserTurn(tt.input)
			if got != tt.want {
				t.Errorf("AppendUserTurn(%q) = %v, want %v", tt.input, got, tt.want)
			}
			wantLen := 0
			if tt.want {
				wantLen = 1
			}
			if len(m.Messages) != wantLen {
				t.Errorf("transcript length = %d, want %d", len(m.Messages), wantLen)
			}
		})
	}
}

func TestTurnOrderingIsAppendOnly(t *testing.T) {
	m := testModel()

	m.AppendUserTurn("what is 3 + 4?")
	m.AppendAssistantTurn("the sum of 3 and 4 is 7")
	m.AppendUserTurn("thanks")
	m.AppendAssistantTurn("You're welcome!")

	wantRoles := []string{"user", "assistant", "user", "assistant"}
	if len(m.Messages) != len(wantRoles) {
		t.Fatalf("transcript length = %d, want %d", len(m.Messages), len(wantRoles))
	}
	for i, role := range wantRoles {
		if m.Messages[i].Role != role {
			t.Errorf("message %d role = %q, want %q", i, m.Messages[i].Role, role)
		}
	}

	// Repeated submissions strictly grow the sequence
	before := len(m.Messages)
	m.AppendUserTurn("another question")
	if len(m.Messages) != before+1 {
		t.Errorf("transcript did not grow: %d -> %d", before, len(m.Messages))
	}
}

func TestDropTrailingSystemNotice(t *testing.T) {
	m := testModel()
	m.AppendUserTurn("hello")
	m.AppendSystemNotice("Waiting for response...")

	m.DropTrailingSystemNotice()
	if len(m.Messages) != 1 || m.Messages[0].Role != "user" {
		t.Fatalf("expected only the user turn to remain, got %d messages", len(m.Messages))
	}

	// Must not remove user or assistant turns
	m.AppendAssistantTurn("hi")
	m.DropTrailingSystemNotice()
	if len(m.Messages) != 2 {
		t.Errorf("DropTrailingSystemNotice removed a non-system turn")
	}
}

func TestLastAssistantContent(t *testing.T) {
	m := testModel()
	if got := m.LastAssistantContent(); got != "" {
		t.Errorf("empty transcript: got %q, want empty", got)
	}

	m.AppendUserTurn("q1")
	m.AppendAssistantTurn("a1")
	m.AppendUserTurn("q2")
	m.AppendAssistantTurn("a2")
	m.AppendSystemNotice("notice")

	if got := m.LastAssistantContent(); got != "a2" {
		t.Errorf("LastAssistantContent() = %q, want %q", got, "a2")
	}
}

func TestResetConversation(t *testing.T) {
	m := testModel()
	oldID := m.ConversationID

	m.AppendUserTurn("hello")
	m.AppendAssistantTurn("hi")
	m.Streaming = true

	m.ResetConversation()

	if len(m.Messages) != 0 {
		t.Errorf("expected empty transcript after reset, got %d messages", len(m.Messages))
	}
	if m.Streaming {
		t.Error("expected Streaming false after reset")
	}
	if m.ConversationID == oldID {
		t.Error("expected a fresh conversation ID after reset")
	}
}
