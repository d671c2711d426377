package optimizer

import (
	"fmt"
	"strings"

	"github.com/pthm/promptopt/internal/rules"
)

// VariantCount is the number of variants Optimize returns, one per rule
// intensity
const VariantCount = rules.MaxIntensity

// Optimize rewrites raw into VariantCount variants, from the lightest
// touch to the most aggressive rewrite for style. Blank input yields blank
// variants without applying any rule.
func Optimize(raw string, style rules.Style) ([]string, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %d is not a recognized style", ErrInvalidStyle, int(style))
	}

	variants := make([]string, VariantCount)
	if strings.TrimSpace(raw) == "" {
		return variants, nil
	}

	table := rules.Default()
	for i := range variants {
		p, err := table.Pipeline(style, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s pipeline: %w", style, err)
		}
		variants[i] = p.Apply(raw)
	}

	return variants, nil
}
