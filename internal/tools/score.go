package tools

import (
	"github.com/pthm/promptopt/internal/optimizer"
)

// ScoreTool rates an improved prompt against its original
type ScoreTool struct{}

func (t *ScoreTool) Name() string {
	return "score_prompt"
}

func (t *ScoreTool) Description() string {
	return "Score the effectiveness of an improved prompt against the original"
}

func (t *ScoreTool) Params() []Param {
	return []Param{
		{
			Name:        "raw_prompt",
			Description: "The original prompt",
			Required:    true,
		},
		{
			Name:        "improved_prompt",
			Description: "The improved version of the prompt",
			Required:    true,
		},
	}
}

func (t *ScoreTool) Call(args map[string]any) (Result, error) {
	raw, err := optimizer.PromptArg("raw_prompt", args["raw_prompt"])
	if err != nil {
		return Result{}, err
	}
	improved, err := optimizer.PromptArg("improved_prompt", args["improved_prompt"])
	if err != nil {
		return Result{}, err
	}

	score := optimizer.Score(raw, improved)
	return Result{Score: &score}, nil
}
