// Package tools exposes the optimizer operations as named tools with
// loosely typed arguments, the shape both the MCP and HTTP transports
// dispatch through.
package tools

import (
	"encoding/json"
	"fmt"
)

// Param describes one argument a tool accepts. Every parameter is a string.
type Param struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

// Result is the outcome of a tool call. Exactly one of Variants or Score
// is meaningful, depending on the tool.
type Result struct {
	Variants []string `json:"variants,omitempty"`
	Score    *float64 `json:"score,omitempty"`
}

// Text renders r as the single text block a tool protocol returns:
// variants as a JSON array, scores as a labelled line
func (r Result) Text() string {
	if r.Score != nil {
		return fmt.Sprintf("Effectiveness score: %.3f", *r.Score)
	}
	data, err := json.Marshal(r.variants())
	if err != nil {
		return "[]"
	}
	return string(data)
}

func (r Result) variants() []string {
	if r.Variants == nil {
		return []string{}
	}
	return r.Variants
}

// Tool is a named operation callable with JSON-decoded arguments
type Tool interface {
	// Name returns the tool's identifier (e.g., "optimize_prompt")
	Name() string

	// Description returns a one-line summary for tool listings
	Description() string

	// Params lists the accepted arguments in declaration order
	Params() []Param

	// Call runs the tool. Argument errors wrap optimizer.ErrInvalidInput
	// or optimizer.ErrInvalidStyle.
	Call(args map[string]any) (Result, error)
}
