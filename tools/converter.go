package tools

import (
	"encoding/json"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"
)

// ConvertToOllama converts MCP tool descriptors to Ollama API tool format
func ConvertToOllama(descs []mcptypes.Tool) []api.Tool {
	ollamaTools := make([]api.Tool, 0, len(descs))

	for _, desc := range descs {
		ollamaTools = append(ollamaTools, api.Tool{
			Type: "function",
			Function: api.ToolFunction{
				Name:        desc.Name,
				Description: desc.Description,
				Parameters:  convertInputSchema(desc.InputSchema),
			},
		})
	}

	return ollamaTools
}

func convertInputSchema(inputSchema mcptypes.ToolInputSchema) api.ToolFunctionParameters {
	params := api.ToolFunctionParameters{
		Type:       inputSchema.Type,
		Required:   inputSchema.Required,
		Properties: make(map[string]api.ToolProperty),
	}

	if inputSchema.Defs != nil {
		params.Defs = inputSchema.Defs
	}

	for propName, propValue := range inputSchema.Properties {
		params.Properties[propName] = convertProperty(propValue)
	}

	return params
}

func convertProperty(propValue any) api.ToolProperty {
	toolProp := api.ToolProperty{}

	propMap, ok := propValue.(map[string]any)
	if !ok {
		// Not a map: round-trip through JSON to normalize
		bytes, err := json.Marshal(propValue)
		if err != nil {
			return toolProp
		}
		var m map[string]any
		if err := json.Unmarshal(bytes, &m); err != nil {
			return toolProp
		}
		propMap = m
	}

	// type can be a string or a list of strings
	if typeVal, ok := propMap["type"]; ok {
		switch t := typeVal.(type) {
		case string:
			toolProp.Type = api.PropertyType{t}
		case []string:
			toolProp.Type = api.PropertyType(t)
		case []any:
			types := make([]string, 0, len(t))
			for _, v := range t {
				if s, ok := v.(string); ok {
					types = append(types, s)
				}
			}
			toolProp.Type = api.PropertyType(types)
		}
	}

	if desc, ok := propMap["description"].(string); ok {
		toolProp.Description = desc
	}

	if enumVal, ok := propMap["enum"]; ok {
		if enumSlice, ok := enumVal.([]any); ok {
			toolProp.Enum = enumSlice
		}
	}

	if items, ok := propMap["items"]; ok {
		toolProp.Items = items
	}

	return toolProp
}
