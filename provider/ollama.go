package provider

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"

	"hrtui/model"
	"hrtui/ollama"
	"hrtui/tools"
)

// OllamaProvider wraps ollama.Client to implement model.Provider. It owns
// the conversions between the application's provider-agnostic types and
// the Ollama API types.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates an Ollama provider. Empty baseURL or model
// fall back to the client defaults.
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &OllamaProvider{
		client: client,
	}, nil
}

// Chat implements model.Provider.Chat. It is ChatWithTools with no tools.
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	return p.ChatWithTools(ctx, messages, nil, callback)
}

// ChatWithTools converts messages and tool descriptors to Ollama types,
// streams the response, and converts tool calls back before invoking the
// callback.
func (p *OllamaProvider) ChatWithTools(ctx context.Context, messages []model.Message, descs []mcptypes.Tool, callback model.StreamCallback) error {
	ollamaMessages := ConvertToOllamaMessages(messages)

	var ollamaTools []api.Tool
	if len(descs) > 0 {
		ollamaTools = tools.ConvertToOllama(descs)
	}

	ollamaCallback := func(chunk string, ollamaCalls []api.ToolCall) error {
		if callback == nil {
			return nil
		}
		return callback(chunk, ConvertToProviderToolCalls(ollamaCalls))
	}

	return p.client.ChatWithTools(ctx, ollamaMessages, ollamaTools, ollamaCallback)
}

func (p *OllamaProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return p.client.ListModels(ctx)
}

func (p *OllamaProvider) GetModel() string {
	return p.client.GetModel()
}

// GetDisplayName returns the model name; Ollama has no vendor prefix to
// strip.
func (p *OllamaProvider) GetDisplayName() string {
	return p.client.GetModel()
}

func (p *OllamaProvider) SetModel(model string) {
	p.client.SetModel(model)
}

func (p *OllamaProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// SupportsToolCalling reports whether the active model can call tools.
func (p *OllamaProvider) SupportsToolCalling() bool {
	return p.client.SupportsToolCalling()
}
