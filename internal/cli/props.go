// Package cli provides prop parsing for the resolve and render commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/textstyle/internal/text"
)

// parsePropArgs turns key=value pairs into props. Values that read as YAML
// booleans, numbers or null are decoded; everything else stays a string, so
// "color=#333" keeps its hash.
func parsePropArgs(args []string) (text.Props, error) {
	props := make(text.Props, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", arg)
		}
		props[key] = decodeScalar(raw)
	}
	return props, nil
}

func decodeScalar(raw string) any {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return raw
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return raw
	}

	node := doc.Content[0]
	if node.Kind != yaml.ScalarNode || node.Style != 0 {
		return raw
	}

	switch node.Tag {
	case "!!null":
		return nil
	case "!!bool", "!!int", "!!float":
		var value any
		if err := node.Decode(&value); err != nil {
			return raw
		}
		return value
	default:
		return raw
	}
}

// loadPropsFile reads a YAML or JSON mapping of props.
func loadPropsFile(path string) (text.Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read props %s: %w", path, err)
	}

	var props map[string]any
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("parse props %s: %w", path, err)
	}
	return text.Props(props), nil
}

// collectProps merges a props file with --prop flags; flags win.
func collectProps(file string, args []string) (text.Props, error) {
	props := text.Props{}
	if file != "" {
		loaded, err := loadPropsFile(file)
		if err != nil {
			return nil, err
		}
		props = loaded
		if props == nil {
			props = text.Props{}
		}
	}

	flags, err := parsePropArgs(args)
	if err != nil {
		return nil, err
	}
	for key, value := range flags {
		props[key] = value
	}
	return props, nil
}
