package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is returned when dispatching to a name nothing registered
var ErrUnknownTool = errors.New("unknown tool")

// Registry holds all registered tools
type Registry struct {
	tools []Tool
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make([]Tool, 0),
	}
}

// Register adds a tool to the registry. On duplicate names the first
// registration wins lookups.
func (r *Registry) Register(tool Tool) {
	r.tools = append(r.tools, tool)
}

// Tools returns all registered tools in registration order
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Get returns a tool by name, or nil
func (r *Registry) Get(name string) Tool {
	for _, tool := range r.tools {
		if tool.Name() == name {
			return tool
		}
	}
	return nil
}

// Call dispatches args to the named tool
func (r *Registry) Call(name string, args map[string]any) (Result, error) {
	tool := r.Get(name)
	if tool == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Call(args)
}

// DefaultRegistry returns a registry with the optimize and score tools
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&OptimizeTool{})
	r.Register(&ScoreTool{})
	return r
}
