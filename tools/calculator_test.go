package tools

import (
	"context"
	"strings"
	"testing"
)

func TestCalculatorExecute(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{
			name: "integers",
			args: map[string]any{"a": float64(3), "b": float64(4)},
			want: "the sum of 3 and 4 is 7",
		},
		{
			name: "floats",
			args: map[string]any{"a": 1.5, "b": 2.25},
			want: "the sum of 1.5 and 2.25 is 3.75",
		},
		{
			name: "negative",
			args: map[string]any{"a": float64(-2), "b": float64(2)},
			want: "the sum of -2 and 2 is 0",
		},
		{
			name: "int arguments",
			args: map[string]any{"a": 10, "b": 32},
			want: "the sum of 10 and 32 is 42",
		},
		{
			name:    "missing argument",
			args:    map[string]any{"a": float64(3)},
			wantErr: true,
		},
		{
			name:    "non-numeric argument",
			args:    map[string]any{"a": "three", "b": float64(4)},
			wantErr: true,
		},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Execute(context.Background(), tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculatorDescriptor(t *testing.T) {
	desc := NewCalculator().Descriptor()

	if desc.Name != "calculator" {
		t.Errorf("name = %q, want calculator", desc.Name)
	}
	if desc.Description == "" {
		t.Error("descriptor has no description")
	}
	if desc.InputSchema.Type != "object" {
		t.Errorf("schema type = %q, want object", desc.InputSchema.Type)
	}
	if len(desc.InputSchema.Required) != 2 {
		t.Errorf("expected both arguments required, got %v", desc.InputSchema.Required)
	}
	for _, name := range []string{"a", "b"} {
		prop, ok := desc.InputSchema.Properties[name].(map[string]any)
		if !ok {
			t.Fatalf("property %q missing or malformed", name)
		}
		if prop["type"] != "number" {
			t.Errorf("property %q type = %v, want number", name, prop["type"])
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(NewCalculator())

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	descs := r.Descriptors()
	if len(descs) != 1 || descs[0].Name != "calculator" {
		t.Fatalf("Descriptors() = %v", descs)
	}

	got, err := r.Execute(context.Background(), "calculator", map[string]any{"a": float64(3), "b": float64(4)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "the sum of 3 and 4 is 7" {
		t.Errorf("Execute() = %q", got)
	}

	_, err = r.Execute(context.Background(), "does-not-exist", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown tool") {
		t.Errorf("expected unknown tool error, got %v", err)
	}
}
