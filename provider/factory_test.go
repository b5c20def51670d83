package provider

import "testing"

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "ollama",
			cfg: Config{
				Type:    ProviderTypeOllama,
				BaseURL: "http://localhost:11434",
				Model:   "mistral:latest",
			},
		},
		{
			name: "ollama with defaults",
			cfg: Config{
				Type: ProviderTypeOllama,
			},
		},
		{
			name:    "unknown type",
			cfg:     Config{Type: "openai"},
			wantErr: true,
		},
		{
			name:    "empty type",
			cfg:     Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() error = %v", err)
			}
			if p == nil {
				t.Fatal("NewProvider() returned nil provider")
			}
		})
	}
}

func TestOllamaProviderDisplayName(t *testing.T) {
	p, err := NewOllamaProvider("http://localhost:11434", "mistral:latest")
	if err != nil {
		t.Fatal(err)
	}

	if p.GetModel() != "mistral:latest" {
		t.Errorf("GetModel() = %q", p.GetModel())
	}
	if p.GetDisplayName() != p.GetModel() {
		t.Errorf("display name %q should equal model name %q", p.GetDisplayName(), p.GetModel())
	}

	p.SetModel("llama3.1:8b")
	if p.GetModel() != "llama3.1:8b" {
		t.Errorf("GetModel() after SetModel = %q", p.GetModel())
	}
	if !p.SupportsToolCalling() {
		t.Error("llama3.1 should support tool calling")
	}
}
