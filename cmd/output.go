package cmd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// renderStructured marshals v for the --output flag. "text" is handled by the
// callers themselves; this covers json and yaml.
func renderStructured(v interface{}, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}
