package config

const (
	DefaultOllamaHost   = "http://localhost:11434"
	DefaultModel        = "mistral:latest"
	DefaultMaxToolSteps = 5
)

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Ollama: OllamaConfig{
			Host:         DefaultOllamaHost,
			DefaultModel: DefaultModel,
		},
		MaxToolSteps: DefaultMaxToolSteps,
	}
}

func GenerateUserConfigTemplate() string {
	return `# HRTUI Configuration
# Location: ~/.config/hrtui/config.toml
# This file uses TOML format: https://toml.io

# Maximum number of tool-call rounds per question.
# After this many rounds tools are withheld and the model must answer.
max_tool_steps = 5

[ollama]
# Ollama server URL
host = "http://localhost:11434"

# Model to use for answering questions
default_model = "mistral:latest"
`
}
