package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm/promptopt/internal/reporter"
	"github.com/pthm/promptopt/internal/rules"
	"github.com/pthm/promptopt/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with fresh flag values and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	verbose, format, logLevel, logJSON = false, "terminal", "info", false
	optimizeStyle, optimizeFile, optimizeScore = "", "", false
	scoreRawFile, scoreImprovedFile = "", ""

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestOptimizeCommand_JSON(t *testing.T) {
	out, err := run(t, "optimize", "--format", "json", "--style", "precise",
		"Please write a very detailed explanation about machine learning")
	require.NoError(t, err)

	var got reporter.JSONVariants
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "precise", got.Style)
	assert.Equal(t, []string{
		"Write a very detailed explanation about machine learning",
		"Write a detailed explanation about machine learning. Be specific.",
		"Write an explanation about machine learning. Be specific and answer directly.",
	}, got.Variants)
	assert.Empty(t, got.Scores)
}

func TestOptimizeCommand_Terminal(t *testing.T) {
	out, err := run(t, "optimize", "-s", "creative", "--score", "Write", "a", "story", "about", "a", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "Creative variants")
	assert.Contains(t, out, "1. Craft a compelling narrative about a cat (")
}

func TestOptimizeCommand_StyleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nstyle: fast\n---\nElaborate on the comprehensive analysis\n"), 0o644))

	out, err := run(t, "optimize", "--format", "json", "--file", path)
	require.NoError(t, err)

	var got reporter.JSONVariants
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fast", got.Style)
	assert.Equal(t, "Explain the complete analysis", got.Variants[0])
}

func TestOptimizeCommand_StyleFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nstyle: fast\n---\nWrite a story about a cat\n"), 0o644))

	out, stderr, err := runWithStderr(t, "optimize", "--format", "json", "--style", "creative", "--file", path)
	require.NoError(t, err)

	var got reporter.JSONVariants
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "creative", got.Style)
	assert.Contains(t, stderr, "WARN: --style creative overrides the fast style set in "+path)

	_, stderr, err = runWithStderr(t, "optimize", "--format", "json", "--style", "fast", "--file", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestOptimizeCommand_Errors(t *testing.T) {
	_, err := run(t, "optimize", "Write a poem")
	assert.ErrorContains(t, err, "style is required")

	_, err = run(t, "optimize", "--style", "invalid_style", "Write a poem")
	assert.ErrorContains(t, err, "invalid style")

	_, err = run(t, "optimize", "--style", "fast")
	assert.ErrorContains(t, err, "no prompt given")

	_, err = run(t, "optimize", "--format", "xml", "--style", "fast", "x")
	assert.ErrorContains(t, err, "unknown format")
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "Write a story about a cat", "Write a story about a cat")
	require.NoError(t, err)
	assert.Equal(t, "Effectiveness score: 0.970\n", out)

	out, err = run(t, "score", "--verbose",
		"Please write a very detailed explanation about machine learning",
		"Write an explanation about machine learning")
	require.NoError(t, err)
	assert.Contains(t, out, "Effectiveness score: 1.000")
	assert.Contains(t, out, "fillers removed: detailed, please, very")
}

func TestScoreCommand_Files(t *testing.T) {
	dir := t.TempDir()
	pair := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(pair, []byte("prompt: Write about AI\nimproved: Write about artificial intelligence\n"), 0o644))

	out, err := run(t, "score", "--format", "json", "--raw-file", pair)
	require.NoError(t, err)

	var got reporter.JSONScore
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1.0, got.Components.KeywordPreservation, 1e-9)

	improved := filepath.Join(dir, "after.txt")
	require.NoError(t, os.WriteFile(improved, []byte("Write about cooking\n"), 0o644))
	out, err = run(t, "score", "--format", "json", "--improved-file", improved, "Write about AI")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Less(t, got.Components.KeywordPreservation, 1.0)
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := run(t, "score", "only one")
	assert.ErrorContains(t, err, "needs an original and an improved prompt")

	_, err = run(t, "score", "a", "b", "c")
	assert.Error(t, err)
}

func TestToolsCommand(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "optimize_prompt")
	assert.Contains(t, out, "score_prompt")
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "PROMPT OPTIMIZATION")
	assert.Contains(t, out, "Worse (longer, adds redundant words)")
	assert.Contains(t, out, "Demo complete")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "promptopt dev")
	assert.Contains(t, out, fmt.Sprintf("vocabulary v%d, rules v%d", vocab.Default().Version, rules.Default().Version()))
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := run(t, "version", "--format", "json")
	require.NoError(t, err)

	var got versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dev", got.Version)
	assert.Equal(t, vocab.Default().Version, got.Vocabulary)
	assert.Positive(t, got.Rules)
}
