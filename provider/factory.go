package provider

import (
	"fmt"

	"hrtui/model"
)

// NewProvider creates a provider from configuration. The only supported
// type is Ollama; the backend is a locally hosted model server.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeOllama:
		return NewOllamaProvider(cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}
