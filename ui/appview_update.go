package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"hrtui/config"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Reserve space for title, subtitle, separator, input and status bar
		a.viewport.Width = a.width
		a.viewport.Height = a.height - 5
		a.input.Width = a.width - 4

		a.ready = true
		a.updateViewportContent(true)
		return a, nil

	case tea.KeyMsg:
		a.statusNote = ""

		if msg.String() == "alt+q" || msg.String() == "ctrl+c" {
			a.dataModel.Quitting = true
			return a, tea.Quit
		}

		if a.showModelSelector {
			return a.handleModelSelectorKeys(msg)
		}

		switch msg.String() {
		case "enter":
			return a.handleSubmit()

		case "alt+m":
			if a.dataModel.Streaming {
				return a, nil
			}
			a.showModelSelector = true
			a.modelFilterMode = false
			a.modelFilterInput.Reset()
			a.filteredModelList = nil
			a.selectModelInList(a.dataModel.Provider.GetModel())
			if len(a.modelList) == 0 {
				return a, a.dataModel.FetchModelList()
			}
			return a, nil

		case "alt+y":
			return a.handleCopyReply()

		case "alt+n":
			if a.dataModel.Streaming {
				return a, nil
			}
			a.dataModel.ResetConversation()
			a.currentResp.Reset()
			a.chunks = nil
			a.chunkIndex = 0
			a.updateViewportContent(true)
			return a, nil

		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}

		// Everything else edits the input, unless a request is in flight
		if a.dataModel.Streaming {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		if !a.dataModel.Streaming {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		// Re-render so the waiting notice animates
		a.updateViewportContent(false)
		return a, cmd

	case agentReplyMsg, agentErrorMsg, displayChunkTickMsg:
		return a.handleAgentMessage(msg)

	case modelsListMsg:
		if msg.Err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[UI] model list fetch failed: %v", msg.Err)
			}
			if a.showModelSelector {
				a.showModelSelector = false
				a.statusNote = "Could not list models"
			}
			return a, nil
		}
		a.modelList = msg.Models
		if a.showModelSelector {
			a.selectModelInList(a.dataModel.Provider.GetModel())
		}
		return a, nil

	case replyCopiedMsg:
		if msg.Err != nil {
			a.statusNote = "Copy failed"
		} else {
			a.statusNote = "Reply copied"
		}
		return a, nil
	}

	return a, nil
}

// handleSubmit turns the input box content into a user turn and fires the
// agent request. Blank input is ignored; so are submissions while a
// request is already in flight.
func (a AppView) handleSubmit() (tea.Model, tea.Cmd) {
	if a.dataModel.Streaming {
		return a, nil
	}

	input := a.input.Value()
	if !a.dataModel.AppendUserTurn(input) {
		a.input.Reset()
		return a, nil
	}
	a.input.Reset()

	if config.DebugLog != nil {
		config.DebugLog.Printf("[UI] submitting question (%d chars)", len(input))
	}

	a.loadingSpinner = newLoadingSpinner()
	a.dataModel.AppendSystemNotice(waitingNotice)
	a.dataModel.Streaming = true
	a.updateViewportContent(true)

	return a, tea.Batch(
		a.dataModel.SendToAgent(input),
		a.loadingSpinner.Tick,
	)
}

// handleAgentMessage finalizes one request: reveal the reply with the
// typewriter effect, or surface the error as a system turn.
func (a AppView) handleAgentMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agentReplyMsg:
		if !a.dataModel.Streaming {
			return a, nil
		}
		a.pendingReply = msg.Reply
		a.chunks = splitIntoChunks(msg.Reply, 10)
		a.chunkIndex = 0
		a.currentResp.Reset()

		// Brief delay before the reveal; the waiting spinner stays up
		return a, tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
			return displayChunkTickMsg{}
		})

	case displayChunkTickMsg:
		if !a.dataModel.Streaming {
			return a, nil
		}

		if a.chunkIndex >= len(a.chunks) {
			// All chunks displayed - finalize the assistant turn
			a.dataModel.Streaming = false
			a.dataModel.DropTrailingSystemNotice()
			a.dataModel.AppendAssistantTurn(a.pendingReply)
			a.renderLastMessage()
			a.pendingReply = ""
			a.chunks = nil
			a.chunkIndex = 0
			a.currentResp.Reset()
			a.updateViewportContent(true)
			return a, nil
		}

		a.currentResp.WriteString(a.chunks[a.chunkIndex])
		a.chunkIndex++

		// Remove the waiting notice once real content is visible
		if a.currentResp.Len() > 0 {
			a.dataModel.DropTrailingSystemNotice()
		}
		a.updateStreamingMessage()

		delay := 30 * time.Millisecond
		if a.chunkIndex == 1 {
			delay = time.Millisecond
		}
		return a, tea.Tick(delay, func(time.Time) tea.Msg {
			return displayChunkTickMsg{}
		})

	case agentErrorMsg:
		if config.DebugLog != nil {
			config.DebugLog.Printf("[UI] agent error: %v", msg.Err)
		}
		a.dataModel.Streaming = false
		a.currentResp.Reset()
		a.dataModel.DropTrailingSystemNotice()
		a.dataModel.AppendSystemNotice(fmt.Sprintf("Error: %v", msg.Err))
		a.updateViewportContent(true)
		return a, nil
	}

	return a, nil
}

func (a AppView) handleCopyReply() (tea.Model, tea.Cmd) {
	content := a.dataModel.LastAssistantContent()
	if content == "" {
		a.statusNote = "Nothing to copy"
		return a, nil
	}
	return a, func() tea.Msg {
		return replyCopiedMsg{Err: clipboard.WriteAll(content)}
	}
}

// splitIntoChunks slices s into pieces of at most size bytes for the
// typewriter reveal.
func splitIntoChunks(s string, size int) []string {
	if s == "" {
		return nil
	}
	var chunks []string
	for i := 0; i < len(s); i += size {
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[i:end])
	}
	return chunks
}
