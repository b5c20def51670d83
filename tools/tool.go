// Package tools defines the callable capabilities exposed to the agent.
//
// A Tool pairs an MCP-style descriptor (name, description, JSON schema)
// with an Execute function. The agent decides whether and when a tool is
// invoked; tools themselves are pure and hold no state.
package tools

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Tool is a callable capability with a declared input/output contract.
type Tool interface {
	// Descriptor returns the tool's schema advertised to the model.
	Descriptor() mcptypes.Tool

	// Execute runs the tool with the model-supplied arguments.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry maps tool names to implementations.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	name := t.Descriptor().Name
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = t
}

// Descriptors returns the schemas of all registered tools in
// registration order.
func (r *Registry) Descriptors() []mcptypes.Tool {
	descs := make([]mcptypes.Tool, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.tools[name].Descriptor())
	}
	return descs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Execute dispatches a tool call by name.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return t.Execute(ctx, args)
}
