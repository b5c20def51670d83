package model

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"hrtui/ollama"
)

// Provider abstracts the LLM backend using provider-agnostic types.
//
// This interface is defined in the model package (not provider package) to
// avoid import cycles: provider implementations can import model, and model
// can use the Provider interface without importing the provider package.
type Provider interface {
	// Chat sends messages and streams responses back via callback.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// ChatWithTools sends messages with available tools and streams responses.
	ChatWithTools(ctx context.Context, messages []Message, tools []mcptypes.Tool, callback StreamCallback) error

	// ListModels returns available models for this provider.
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)

	// GetModel returns the currently selected model name.
	GetModel() string

	// GetDisplayName returns the model name formatted for UI display.
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each chunk of streamed response.
type StreamCallback func(chunk string, toolCalls []ToolCall) error

// ToolCall is a provider-agnostic tool invocation request from the model.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// AgentRunner turns one user question into one reply. Implemented by
// agent.Agent; declared here so command constructors don't import agent.
type AgentRunner interface {
	Run(ctx context.Context, input string) (string, error)
}
