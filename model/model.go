package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hrtui/config"
)

// Model holds the core application data and business logic state
type Model struct {
	// Core dependencies
	Config   *config.Config
	Provider Provider
	Agent    AgentRunner

	// Conversation state. Messages is append-only: turns are never
	// reordered or removed, except transient system notices.
	ConversationID string
	Messages       []Message

	// Runtime state (not UI)
	Streaming bool
	Quitting  bool

	// Application metadata
	Version string
	License string
}

// NewModel creates a new Model with an empty conversation
func NewModel(cfg *config.Config, prov Provider, runner AgentRunner, version, license string) *Model {
	return &Model{
		Config:         cfg,
		Provider:       prov,
		Agent:          runner,
		ConversationID: uuid.NewString(),
		Messages:       nil,
		Streaming:      false,
		Quitting:       false,
		Version:        version,
		License:        license,
	}
}

// AppendUserTurn appends a user message to the transcript. Input that is
// empty or whitespace-only is ignored: no turn is created and the caller
// must not start a backend request. Returns true if a turn was appended.
func (m *Model) AppendUserTurn(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	m.Messages = append(m.Messages, Message{
		Role:      "user",
		Content:   content,
		Rendered:  content,
		Timestamp: time.Now(),
	})
	return true
}

// AppendAssistantTurn appends an assistant message to the transcript.
func (m *Model) AppendAssistantTurn(content string) {
	m.Messages = append(m.Messages, Message{
		Role:      "assistant",
		Content:   content,
		Rendered:  content,
		Timestamp: time.Now(),
	})
}

// AppendSystemNotice appends a transient system message (spinner or error).
func (m *Model) AppendSystemNotice(content string) {
	m.Messages = append(m.Messages, Message{
		Role:      "system",
		Content:   content,
		Rendered:  content,
		Timestamp: time.Now(),
	})
}

// DropTrailingSystemNotice removes the last message if it is a system
// notice. User and assistant turns are never removed.
func (m *Model) DropTrailingSystemNotice() {
	if n := len(m.Messages); n > 0 && m.Messages[n-1].Role == "system" {
		m.Messages = m.Messages[:n-1]
	}
}

// LastAssistantContent returns the content of the most recent assistant
// turn, or "" if there is none.
func (m *Model) LastAssistantContent() string {
	for i := len(m.Messages) - 1; i >= 0; i-- {
		if m.Messages[i].Role == "assistant" {
			return m.Messages[i].Content
		}
	}
	return ""
}

// ResetConversation discards the current session and starts an empty one.
func (m *Model) ResetConversation() {
	m.ConversationID = uuid.NewString()
	m.Messages = nil
	m.Streaming = false

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Model] New conversation %s", m.ConversationID)
	}
}
