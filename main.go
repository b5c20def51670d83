package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"hrtui/agent"
	"hrtui/config"
	appmodel "hrtui/model"
	"hrtui/provider"
	"hrtui/tools"
	"hrtui/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	// Optional .env in the working directory, for local overrides
	_ = godotenv.Load()

	config.InitDebugLog()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	prov, err := provider.NewProvider(provider.Config{
		Type:    provider.ProviderTypeOllama,
		BaseURL: cfg.OllamaURL(),
		Model:   cfg.Model(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating provider: %v\n", err)
		os.Exit(1)
	}

	if err := prov.Ping(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot reach Ollama at %s: %v\n\n"+
			"Make sure Ollama is running (ollama serve) or set HRTUI_OLLAMA_HOST.\n",
			cfg.OllamaURL(), err)
		os.Exit(1)
	}

	registry := tools.NewRegistry(tools.NewCalculator())
	runner := agent.New(prov, registry, cfg.MaxToolSteps)

	dataModel := appmodel.NewModel(cfg, prov, runner, Version, License)

	p := tea.NewProgram(
		ui.NewAppView(dataModel),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
