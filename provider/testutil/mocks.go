// Package testutil provides a scriptable mock provider for tests.
package testutil

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"hrtui/model"
	"hrtui/ollama"
)

// ChatTurn scripts one round of a mocked conversation: the chunks streamed
// to the callback and the tool calls attached to the final chunk.
type ChatTurn struct {
	Chunks    []string
	ToolCalls []model.ToolCall
	Err       error
}

// MockProvider implements model.Provider for testing. Each call to
// ChatWithTools consumes the next scripted ChatTurn; when the script is
// exhausted it streams nothing.
type MockProvider struct {
	Turns []ChatTurn

	// Requests records the messages of every ChatWithTools call.
	Requests [][]model.Message
	// ToolsSeen records the tool descriptors of every call.
	ToolsSeen [][]mcptypes.Tool

	ListModelsFunc func(ctx context.Context) ([]ollama.ModelInfo, error)
	PingFunc       func(ctx context.Context) error

	currentModel string
	turnIndex    int
}

// NewMockProvider creates a mock with no scripted turns.
func NewMockProvider(modelName string) *MockProvider {
	return &MockProvider{currentModel: modelName}
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return m.ChatWithTools(ctx, messages, nil, callback)
}

func (m *MockProvider) ChatWithTools(ctx context.Context, messages []model.Message, descs []mcptypes.Tool, callback model.StreamCallback) error {
	m.Requests = append(m.Requests, append([]model.Message(nil), messages...))
	m.ToolsSeen = append(m.ToolsSeen, descs)

	if m.turnIndex >= len(m.Turns) {
		return nil
	}
	turn := m.Turns[m.turnIndex]
	m.turnIndex++

	if turn.Err != nil {
		return turn.Err
	}
	if callback == nil {
		return nil
	}

	for i, chunk := range turn.Chunks {
		var calls []model.ToolCall
		if i == len(turn.Chunks)-1 {
			calls = turn.ToolCalls
		}
		if err := callback(chunk, calls); err != nil {
			return err
		}
	}
	if len(turn.Chunks) == 0 && len(turn.ToolCalls) > 0 {
		return callback("", turn.ToolCalls)
	}
	return nil
}

func (m *MockProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return []ollama.ModelInfo{
		{Name: "mock-model-1", Size: 1000},
		{Name: "mock-model-2", Size: 2000},
	}, nil
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) GetDisplayName() string {
	return m.currentModel
}

func (m *MockProvider) SetModel(model string) {
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
