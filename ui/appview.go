package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmodel "hrtui/model"
	"hrtui/ollama"
)

const waitingNotice = "Waiting for response..."

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI components
	viewport viewport.Model
	input    textinput.Model

	// Window state
	width  int
	height int
	ready  bool

	// Typewriter reveal of a finished reply
	pendingReply string
	chunks       []string
	chunkIndex   int
	currentResp  *strings.Builder

	loadingSpinner spinner.Model

	// Model selector
	showModelSelector bool
	modelList         []ollama.ModelInfo
	filteredModelList []ollama.ModelInfo
	selectedModelIdx  int
	modelFilterMode   bool
	modelFilterInput  textinput.Model

	// Transient note shown in the status bar (e.g. after copy)
	statusNote string
}

func NewAppView(dataModel *appmodel.Model) AppView {
	ti := textinput.New()
	ti.Placeholder = "Type your question..."
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	filterInput := textinput.New()
	filterInput.Prompt = "Filter: "
	filterInput.CharLimit = 64

	vp := viewport.New(0, 0)

	return AppView{
		dataModel:        dataModel,
		viewport:         vp,
		input:            ti,
		currentResp:      &strings.Builder{},
		loadingSpinner:   newLoadingSpinner(),
		modelFilterInput: filterInput,
		selectedModelIdx: -1,
	}
}

func newLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	return s
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.dataModel.FetchModelList(),
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading HR Assistant..."
	}

	if a.showModelSelector {
		return a.renderModelSelector()
	}

	// Title bar - "HR Assistant - <model>"
	title := AssistantStyle.Render("HR Assistant") +
		TitleStyle.Render(fmt.Sprintf(" - %s", a.dataModel.Provider.GetDisplayName()))
	subtitle := DimStyle.Render("Ask anything about HR policies • Instant answers • 100% private")

	viewportView := a.viewport.View()
	inputView := a.input.View()

	statusBar := FormatFooter(
		"Enter", "Send",
		"Alt+M", "Models",
		"Alt+Y", "Copy reply",
		"Alt+N", "New chat",
		"Alt+Q", "Quit",
	)
	if a.statusNote != "" {
		statusBar = a.statusNote + "  " + statusBar
	}
	statusBar = StatusStyle.Render(statusBar)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		viewportView,
		inputView,
		statusBar,
	)
}
