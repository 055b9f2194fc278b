package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Argument helpers narrow the raw tool arguments into typed values. A
// returned error means the invocation is rejected before any remote call.

func requireString(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return str, nil
}

func optionalString(args map[string]any, key string) (*string, error) {
	value, ok := args[key]
	if !ok {
		return nil, nil
	}
	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a string", key)
	}
	return &str, nil
}

func optionalIntSlice(args map[string]any, key string) ([]int, error) {
	value, ok := args[key]
	if !ok {
		return nil, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of integers", key)
	}
	out := make([]int, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("argument %q element %d must be an integer", key, i)
			}
			out = append(out, int(v))
		case int:
			out = append(out, v)
		default:
			return nil, fmt.Errorf("argument %q element %d must be an integer", key, i)
		}
	}
	return out, nil
}

func prettyJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("indent payload: %w", err)
	}
	return buf.String(), nil
}
