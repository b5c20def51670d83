package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Calculator adds two numbers and answers in a natural-language sentence.
// It exists to demonstrate a callable capability the agent may invoke.
type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

func (Calculator) Descriptor() mcptypes.Tool {
	return mcptypes.Tool{
		Name:        "calculator",
		Description: "Useful for performing basic arithmetic calculations with numbers",
		InputSchema: mcptypes.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"a": map[string]any{
					"type":        "number",
					"description": "First number",
				},
				"b": map[string]any{
					"type":        "number",
					"description": "Second number",
				},
			},
			Required: []string{"a", "b"},
		},
	}
}

func (Calculator) Execute(ctx context.Context, args map[string]any) (string, error) {
	a, err := numberArg(args, "a")
	if err != nil {
		return "", err
	}
	b, err := numberArg(args, "b")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("the sum of %s and %s is %s",
		formatNumber(a), formatNumber(b), formatNumber(a+b)), nil
}

func numberArg(args map[string]any, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("calculator: missing argument %q", name)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("calculator: argument %q is not a number: %v", name, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("calculator: argument %q is not a number: %v", name, v)
	}
}

// formatNumber renders integral values without a trailing ".0", so
// calculator(3, 4) reads "the sum of 3 and 4 is 7".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
