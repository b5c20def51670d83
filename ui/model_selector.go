package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"hrtui/config"
	"hrtui/ollama"
)

// visibleModels returns the list the selector is currently showing,
// honoring an active fuzzy filter.
func (a *AppView) visibleModels() []ollama.ModelInfo {
	if a.filteredModelList != nil {
		return a.filteredModelList
	}
	return a.modelList
}

// applyModelFilter fuzzy-matches the filter input against the model names
// and narrows the visible list. An empty pattern clears the filter.
func (a *AppView) applyModelFilter() {
	pattern := strings.TrimSpace(a.modelFilterInput.Value())
	if pattern == "" {
		a.filteredModelList = nil
		return
	}

	names := make([]string, len(a.modelList))
	for i, m := range a.modelList {
		names[i] = m.Name
	}

	matches := fuzzy.Find(pattern, names)
	filtered := make([]ollama.ModelInfo, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, a.modelList[match.Index])
	}
	a.filteredModelList = filtered
	if a.selectedModelIdx >= len(filtered) {
		a.selectedModelIdx = len(filtered) - 1
	}
	if a.selectedModelIdx < 0 && len(filtered) > 0 {
		a.selectedModelIdx = 0
	}
}

// selectModelInList moves the selection cursor to the named model, or to
// the top of the list when the name is not present.
func (a *AppView) selectModelInList(name string) {
	models := a.visibleModels()
	a.selectedModelIdx = 0
	for i, m := range models {
		if m.Name == name {
			a.selectedModelIdx = i
			return
		}
	}
}

func (a AppView) handleModelSelectorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modelFilterMode {
		switch msg.String() {
		case "esc":
			a.modelFilterMode = false
			a.modelFilterInput.Reset()
			a.filteredModelList = nil
			a.selectModelInList(a.dataModel.Provider.GetModel())
			return a, nil
		case "enter":
			a.modelFilterMode = false
			return a, nil
		default:
			var cmd tea.Cmd
			a.modelFilterInput, cmd = a.modelFilterInput.Update(msg)
			a.applyModelFilter()
			return a, cmd
		}
	}

	switch msg.String() {
	case "esc", "alt+m":
		a.showModelSelector = false
		return a, nil

	case "up", "k":
		if a.selectedModelIdx > 0 {
			a.selectedModelIdx--
		}
		return a, nil

	case "down", "j":
		if a.selectedModelIdx < len(a.visibleModels())-1 {
			a.selectedModelIdx++
		}
		return a, nil

	case "/":
		a.modelFilterMode = true
		a.modelFilterInput.Reset()
		a.modelFilterInput.Focus()
		return a, nil

	case "enter":
		models := a.visibleModels()
		if a.selectedModelIdx < 0 || a.selectedModelIdx >= len(models) {
			return a, nil
		}
		chosen := models[a.selectedModelIdx].Name
		a.dataModel.Provider.SetModel(chosen)
		if config.DebugLog != nil {
			config.DebugLog.Printf("[UI] switched model to %s", chosen)
		}
		a.showModelSelector = false
		a.modelFilterInput.Reset()
		a.filteredModelList = nil
		a.statusNote = fmt.Sprintf("Model: %s", chosen)
		return a, nil
	}

	return a, nil
}

func (a *AppView) renderModelSelector() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Select Model"))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("↑/↓ move · enter select · / filter · esc close"))
	b.WriteString("\n\n")

	if a.modelFilterMode || a.modelFilterInput.Value() != "" {
		b.WriteString(a.modelFilterInput.View())
		b.WriteString("\n\n")
	}

	models := a.visibleModels()
	if len(models) == 0 {
		if len(a.modelList) == 0 {
			b.WriteString(DimStyle.Render("Fetching models from Ollama..."))
		} else {
			b.WriteString(DimStyle.Render("No models match the filter"))
		}
		return b.String()
	}

	for i, m := range models {
		line := m.Name
		if ollama.ModelSupportsToolCalling(m.Name) {
			line += " " + HighlightStyle.Render("[tools]")
		}
		if m.Name == a.dataModel.Provider.GetModel() {
			line += DimStyle.Render(" (current)")
		}

		if i == a.selectedModelIdx {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
