package tools

import (
	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/rules"
)

// OptimizeTool generates the three style variants of a prompt
type OptimizeTool struct{}

func (t *OptimizeTool) Name() string {
	return "optimize_prompt"
}

func (t *OptimizeTool) Description() string {
	return "Generate optimized prompt variants based on style"
}

func (t *OptimizeTool) Params() []Param {
	return []Param{
		{
			Name:        "raw_prompt",
			Description: "The original prompt to optimize",
			Required:    true,
		},
		{
			Name:        "style",
			Description: "Optimization style: creative, precise, or fast",
			Required:    true,
			Enum:        rules.StyleNames(),
		},
	}
}

func (t *OptimizeTool) Call(args map[string]any) (Result, error) {
	raw, err := optimizer.PromptArg("raw_prompt", args["raw_prompt"])
	if err != nil {
		return Result{}, err
	}
	style, err := optimizer.StyleArg(args["style"])
	if err != nil {
		return Result{}, err
	}

	variants, err := optimizer.Optimize(raw, style)
	if err != nil {
		return Result{}, err
	}
	return Result{Variants: variants}, nil
}
