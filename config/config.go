package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type OllamaConfig struct {
	Host         string `toml:"host"`
	DefaultModel string `toml:"default_model"`
}

type UserConfig struct {
	Ollama       OllamaConfig `toml:"ollama"`
	MaxToolSteps int          `toml:"max_tool_steps"`
}

type Config struct {
	OllamaHost   string
	DefaultModel string
	MaxToolSteps int
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) OllamaURL() string {
	return c.OllamaHost
}

func (c *Config) Model() string {
	return c.DefaultModel
}

func (c *Config) applyEnvOverrides() {
	if host := os.Getenv("HRTUI_OLLAMA_HOST"); host != "" {
		c.OllamaHost = host
	}
	if model := os.Getenv("HRTUI_OLLAMA_MODEL"); model != "" {
		c.DefaultModel = model
	}
}

func CheckDebug() bool {
	debug := os.Getenv("HRTUI_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log file when HRTUI_DEBUG is set.
// The TUI owns stdout/stderr, so diagnostics go to a file in the cache dir.
func InitDebugLog() {
	if !CheckDebug() {
		return
	}

	Debug = true
	cacheDir := GetCacheDir()
	if err := EnsureDir(cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create cache directory %s: %v\n", cacheDir, err)
		return
	}
	logPath := filepath.Join(cacheDir, "debug.log")

	// 0600 - debug output may contain message content
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (HRTUI_DEBUG=%s) ===", os.Getenv("HRTUI_DEBUG"))
}

// Load reads the user config file, creating a commented template on first
// run, and applies HRTUI_* environment overrides on top.
func Load() (*Config, error) {
	userCfg, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OllamaHost:   userCfg.Ollama.Host,
		DefaultModel: userCfg.Ollama.DefaultModel,
		MaxToolSteps: userCfg.MaxToolSteps,
	}
	cfg.applyEnvOverrides()

	if cfg.OllamaHost == "" {
		cfg.OllamaHost = DefaultOllamaHost
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultModel
	}
	if cfg.MaxToolSteps <= 0 {
		cfg.MaxToolSteps = DefaultMaxToolSteps
	}

	return cfg, nil
}

func LoadUserConfig() (*UserConfig, error) {
	cfg := DefaultUserConfig()
	configPath := GetConfigFilePath()

	if !FileExists(configPath) {
		if err := CreateDefaultUserConfig(); err != nil {
			return nil, fmt.Errorf("failed to create user config: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return cfg, nil
}

func CreateDefaultUserConfig() error {
	configDir := GetConfigDir()
	if err := EnsureDir(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := GetConfigFilePath()
	if FileExists(configPath) {
		return nil
	}

	content := GenerateUserConfigTemplate()
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}
