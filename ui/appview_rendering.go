package ui

import (
	"fmt"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// userBlockRatio keeps user turns at roughly 70% of the window width,
// hugging the right edge.
const userBlockRatio = 0.7

func (a *AppView) updateViewportContent(gotoBottom bool) {
	if len(a.dataModel.Messages) == 0 {
		a.viewport.SetContent(DimStyle.Render("No messages yet. Ask your first question!"))
		return
	}

	var content strings.Builder
	for _, msg := range a.dataModel.Messages {
		content.WriteString(a.formatMessage(msg))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

// updateStreamingMessage renders the transcript plus the reply currently
// being revealed.
func (a *AppView) updateStreamingMessage() {
	var content strings.Builder
	for _, msg := range a.dataModel.Messages {
		content.WriteString(a.formatMessage(msg))
	}

	timestamp := DimStyle.Render(time.Now().Format("[15:04]"))
	role := AssistantStyle.Render("Assistant")
	content.WriteString(fmt.Sprintf("%s %s\n%s▋\n\n", timestamp, role, a.currentResp.String()))

	a.viewport.SetContent(content.String())
	a.viewport.GotoBottom()
}

func (a *AppView) formatMessage(msg Message) string {
	timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

	switch msg.Role {
	case "user":
		return a.formatUserMessage(timestamp, msg.Rendered)

	case "assistant":
		role := AssistantStyle.Render("Assistant")
		return fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, msg.Rendered)

	default:
		rendered := msg.Rendered
		if msg.Content == waitingNotice {
			rendered = fmt.Sprintf("%s %s", a.loadingSpinner.View(), msg.Content)
		}
		return fmt.Sprintf("%s %s\n\n", timestamp, DimStyle.Render(rendered))
	}
}

// formatUserMessage renders a user turn right-aligned: header line
// "[hh:mm] You" followed by the question, both hugging the right edge.
func (a *AppView) formatUserMessage(timestamp, content string) string {
	width := a.width
	if width <= 0 {
		width = 80
	}

	pad := width - runewidth.StringWidth("[00:00] You")
	if pad < 0 {
		pad = 0
	}
	headerLine := strings.Repeat(" ", pad) + timestamp + " " + UserStyle.Render("You")

	blockWidth := int(float64(width) * userBlockRatio)
	if blockWidth < 20 {
		blockWidth = width
	}
	block := lipgloss.NewStyle().
		Width(blockWidth).
		Align(lipgloss.Right).
		Render(UserStyle.Render(content))
	block = lipgloss.PlaceHorizontal(width, lipgloss.Right, block)

	return headerLine + "\n" + block + "\n\n"
}

// renderLastMessage fills in the Rendered field of the newest message.
// Assistant turns are rendered as terminal markdown; other roles stay
// plain.
func (a *AppView) renderLastMessage() {
	n := len(a.dataModel.Messages)
	if n == 0 {
		return
	}
	msg := &a.dataModel.Messages[n-1]
	if msg.Role != "assistant" {
		return
	}
	msg.Rendered = renderMarkdown(msg.Content, a.markdownWidth())
}

func (a *AppView) markdownWidth() int {
	width := a.width - 4
	if width < 20 {
		width = 76
	}
	return width
}

func renderMarkdown(content string, width int) string {
	rendered := markdown.Render(content, width, 0)
	return strings.TrimRight(string(rendered), "\n")
}
