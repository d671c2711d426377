package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pthm/promptopt/internal/logger"
	"github.com/pthm/promptopt/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	registry := tools.DefaultRegistry()
	tool := registry.Get(name)
	require.NotNil(t, tool)

	s := New(registry, logger.Nop())
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := s.handler(tool)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestOptimizeTool(t *testing.T) {
	res := callTool(t, "optimize_prompt", map[string]any{
		"raw_prompt": "Write a story about a cat",
		"style":      "creative",
	})
	assert.False(t, res.IsError)

	var variants []string
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &variants))
	assert.Len(t, variants, 3)
	assert.Equal(t, "Craft a compelling narrative about a cat", variants[0])
}

func TestScoreTool(t *testing.T) {
	res := callTool(t, "score_prompt", map[string]any{
		"raw_prompt":      "Write a story about a cat",
		"improved_prompt": "Write a story about a cat",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "Effectiveness score: 0.970", text(t, res))
}

func TestToolErrors(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"invalid style", "optimize_prompt", map[string]any{"raw_prompt": "test", "style": "invalid_style"}, "invalid style"},
		{"numeric prompt", "optimize_prompt", map[string]any{"raw_prompt": 123.0, "style": "fast"}, "invalid input"},
		{"missing improved", "score_prompt", map[string]any{"raw_prompt": "x"}, "improved_prompt must be a string"},
		{"no arguments", "score_prompt", nil, "raw_prompt must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, tt.tool, tt.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
		})
	}
}

func TestDefinition(t *testing.T) {
	def := Definition(&tools.OptimizeTool{})
	assert.Equal(t, "optimize_prompt", def.Name)
	assert.ElementsMatch(t, []string{"raw_prompt", "style"}, def.InputSchema.Required)

	style, ok := def.InputSchema.Properties["style"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", style["type"])
	assert.Equal(t, []string{"creative", "precise", "fast"}, style["enum"])
}

// rpc round-trips one JSON-RPC request through the protocol server
func rpc(t *testing.T, s *Server, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := s.MCP().HandleMessage(context.Background(), msg)
	require.NotNil(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func TestHandleMessage_ListTools(t *testing.T) {
	s := New(tools.DefaultRegistry(), logger.Nop())
	resp := rpc(t, s, "tools/list", map[string]any{})

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", resp)
	list := result["tools"].([]any)

	var names []string
	for _, item := range list {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{"optimize_prompt", "score_prompt"}, names)
}

func TestHandleMessage_CallTool(t *testing.T) {
	s := New(tools.DefaultRegistry(), logger.Nop())
	resp := rpc(t, s, "tools/call", map[string]any{
		"name": "score_prompt",
		"arguments": map[string]any{
			"raw_prompt":      "",
			"improved_prompt": "",
		},
	})

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", resp)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	assert.Equal(t, fmt.Sprintf("Effectiveness score: %.3f", 1.0), content[0].(map[string]any)["text"])
}
