// Package provider implements the model.Provider contract for LLM
// backends.
//
// The application talks to the backend exclusively through model.Provider,
// keeping provider-specific types out of the UI and agent layers. Only the
// Ollama backend is implemented: the assistant is built around a locally
// hosted model and carries no API-key handling.
//
// The Provider interface and StreamCallback live in the model package to
// avoid import cycles; this package implements them.
package provider

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOllama ProviderType = "ollama"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
}
