// Package agent runs the question-to-answer loop: it submits a single user
// question to the model, executes any tool calls the model requests, and
// selects and cleans the final reply.
package agent

import (
	"context"
	"fmt"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"hrtui/config"
	"hrtui/model"
	"hrtui/tools"
)

// Agent orchestrates one request: model invocation, tool execution rounds,
// and reply selection. Safe for reuse across requests; it keeps no
// per-request state.
type Agent struct {
	provider model.Provider
	registry *tools.Registry
	maxSteps int
}

func New(provider model.Provider, registry *tools.Registry, maxSteps int) *Agent {
	if maxSteps <= 0 {
		maxSteps = config.DefaultMaxToolSteps
	}
	return &Agent{
		provider: provider,
		registry: registry,
		maxSteps: maxSteps,
	}
}

// Run answers a single user question. Only the given input is sent: prior
// turns are never replayed, so every request is stateless with respect to
// model context.
//
// The model may answer directly or request tool calls. Tool results are
// fed back and the model is queried again, up to maxSteps rounds; after
// that tools are withheld so the model must answer. Every round whose text
// is non-empty is collected in arrival order and the last one wins. If
// nothing was collected the fallback string is used. The selected text is
// passed through CleanResponse before being returned.
func (a *Agent) Run(ctx context.Context, input string) (string, error) {
	var descs []mcptypes.Tool
	if a.registry != nil && a.registry.Len() > 0 {
		descs = a.registry.Descriptors()
	}

	messages := buildRequestMessages(input, descs)

	var collected []string
	toolDescs := descs

	for step := 0; ; step++ {
		var text strings.Builder
		var calls []model.ToolCall

		err := a.provider.ChatWithTools(ctx, messages, toolDescs, func(chunk string, toolCalls []model.ToolCall) error {
			text.WriteString(chunk)
			if len(toolCalls) > 0 && len(calls) == 0 {
				calls = toolCalls
			}
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("chat request failed: %w", err)
		}

		if t := strings.TrimSpace(text.String()); t != "" {
			collected = append(collected, t)
		}

		// Tools were withheld this round, so this answer is final even
		// if the model still tried to call one.
		if len(calls) == 0 || toolDescs == nil {
			break
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[agent] step %d: %d tool call(s)", step+1, len(calls))
		}

		messages = append(messages, model.Message{
			Role:    "assistant",
			Content: text.String(),
		})
		messages = append(messages, a.executeCalls(ctx, calls)...)

		if step+1 >= a.maxSteps {
			toolDescs = nil
		}
	}

	reply := Fallback
	if len(collected) > 0 {
		reply = collected[len(collected)-1]
	}

	return CleanResponse(reply), nil
}

// executeCalls runs each requested tool and converts the results to tool
// messages. Execution errors become result text so the run continues and
// the model can react to the failure.
func (a *Agent) executeCalls(ctx context.Context, calls []model.ToolCall) []model.Message {
	results := make([]model.Message, 0, len(calls))

	for _, call := range calls {
		result, err := a.registry.Execute(ctx, call.Name, call.Arguments)
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[agent] tool %s failed: %v", call.Name, err)
			}
			result = fmt.Sprintf("Error executing %s: %v", call.Name, err)
		}
		results = append(results, model.Message{
			Role:    "tool",
			Content: result,
		})
	}

	return results
}

// buildToolPrompt creates minimal tool instructions that work across model
// sizes: just the tool names and a binary use-it-or-answer rule.
func buildToolPrompt(descs []mcptypes.Tool) string {
	names := make([]string, 0, len(descs))
	for _, desc := range descs {
		names = append(names, desc.Name)
	}

	return fmt.Sprintf(
		"TOOLS: %s\n\n"+
			"If the question needs one of these → call the tool.\n"+
			"Otherwise → answer directly.\n\n"+
			"Don't tell the user how you will use a tool. Just execute the tool call.",
		strings.Join(names, ", "),
	)
}

// buildRequestMessages assembles the request: tool instructions (only if
// tools are present) followed by exactly one user message.
func buildRequestMessages(input string, descs []mcptypes.Tool) []model.Message {
	var messages []model.Message

	if len(descs) > 0 {
		messages = append(messages, model.Message{
			Role:    "system",
			Content: buildToolPrompt(descs),
		})
	}

	messages = append(messages, model.Message{
		Role:    "user",
		Content: input,
	})

	return messages
}
