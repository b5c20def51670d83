package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hrtui/config"
)

// SendToAgent runs the agent for a single user question and returns the
// cleaned reply. Only the given input is sent to the model: prior turns are
// not replayed, so each request is stateless with respect to model context.
func (m *Model) SendToAgent(input string) tea.Cmd {
	runner := m.Agent
	conversationID := m.ConversationID

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		if config.DebugLog != nil {
			config.DebugLog.Printf("[%s] agent run started (%d chars)", conversationID, len(input))
		}

		start := time.Now()
		reply, err := runner.Run(ctx, input)
		elapsed := time.Since(start)

		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[%s] agent error after %v: %v", conversationID, elapsed, err)
			}
			return AgentErrorMsg{Err: err}
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[%s] agent reply after %v: %d chars", conversationID, elapsed, len(reply))
		}

		return AgentReplyMsg{Reply: reply}
	}
}

// FetchModelList retrieves the list of available Ollama models
func (m *Model) FetchModelList() tea.Cmd {
	client := m.Provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		models, err := client.ListModels(ctx)
		return ModelsListMsg{
			Models: models,
			Err:    err,
		}
	}
}
