// Package optimizer rewrites prompts into style-conditioned variants and
// scores rewritten prompts against their originals.
//
// Both operations are pure: they read only the embedded rule and
// vocabulary tables and may be called concurrently without coordination.
package optimizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/promptopt/internal/rules"
)

var (
	// ErrInvalidInput means a prompt argument was not a string
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStyle means the style was not one of the recognized tags
	ErrInvalidStyle = errors.New("invalid style")
)

// ParseStyle maps an exact style tag to its Style
func ParseStyle(tag string) (rules.Style, error) {
	s, ok := rules.LookupStyle(tag)
	if !ok {
		return rules.StyleUnknown, fmt.Errorf("%w: %q (expected one of %s)",
			ErrInvalidStyle, tag, strings.Join(rules.StyleNames(), ", "))
	}
	return s, nil
}

// PromptArg checks that a loosely typed argument, as decoded from JSON, is
// a string
func PromptArg(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrInvalidInput, name, jsonType(v))
	}
	return s, nil
}

// StyleArg parses a loosely typed style argument. A value that is not a
// string at all matches both ErrInvalidInput and ErrInvalidStyle.
func StyleArg(v any) (rules.Style, error) {
	tag, ok := v.(string)
	if !ok {
		return rules.StyleUnknown, fmt.Errorf("%w: %w: style must be a string, got %s",
			ErrInvalidInput, ErrInvalidStyle, jsonType(v))
	}
	return ParseStyle(tag)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
