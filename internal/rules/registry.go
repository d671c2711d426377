package rules

import (
	"embed"
	"fmt"

	"github.com/pthm/promptopt/internal/vocab"
	"gopkg.in/yaml.v3"
)

//go:embed tables/rules.yaml
var tablesFS embed.FS

// OriginTable and OriginVocabulary record where a rule came from
const (
	OriginTable      = "rules.yaml"
	OriginVocabulary = "vocabulary"
)

var defaultTable = mustLoadDefault()

// Table holds every rewrite rule and the compiled pipelines built from
// them. A Table is immutable once constructed and safe for concurrent use.
type Table struct {
	version   int
	rules     []Rule
	frames    []Frame
	pipelines map[Style][MaxIntensity]*Pipeline
}

// document is the on-disk shape of a rule table
type document struct {
	Version int     `yaml:"version"`
	Rules   []Rule  `yaml:"rules"`
	Frames  []Frame `yaml:"frames"`
}

// Default returns the table compiled from the embedded rules and the
// shared vocabulary
func Default() *Table {
	return defaultTable
}

func mustLoadDefault() *Table {
	data, err := tablesFS.ReadFile("tables/rules.yaml")
	if err != nil {
		panic(fmt.Sprintf("rules: embedded table missing: %v", err))
	}
	t, err := Load(data, vocab.Default())
	if err != nil {
		panic(fmt.Sprintf("rules: embedded table is invalid: %v", err))
	}
	return t
}

// Load parses a rule table document and merges in the precise-style filler
// removals derived from v
func Load(data []byte, v *vocab.Vocabulary) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule table: %w", err)
	}
	if doc.Version <= 0 {
		return nil, fmt.Errorf("rule table version must be positive, got %d", doc.Version)
	}

	ruleList := make([]Rule, 0, len(doc.Rules)+len(v.Fillers))
	for _, r := range doc.Rules {
		r.Origin = OriginTable
		ruleList = append(ruleList, r)
	}
	ruleList = append(ruleList, FillerRules(v)...)

	t, err := NewTable(ruleList, doc.Frames)
	if err != nil {
		return nil, err
	}
	t.version = doc.Version
	return t, nil
}

// FillerRules returns one precise-style removal rule per vocabulary filler
func FillerRules(v *vocab.Vocabulary) []Rule {
	out := make([]Rule, 0, len(v.Fillers))
	for _, f := range v.Fillers {
		out = append(out, Rule{
			Match:     f.Phrase,
			Styles:    []Style{StylePrecise},
			Intensity: f.Intensity,
			Origin:    OriginVocabulary,
		})
	}
	return out
}

// NewTable validates and compiles rules and frames into a Table
func NewTable(ruleList []Rule, frames []Frame) (*Table, error) {
	t := &Table{
		rules:     make([]Rule, 0, len(ruleList)),
		pipelines: make(map[Style][MaxIntensity]*Pipeline),
	}

	type key struct {
		style Style
		match string
	}
	seen := make(map[key]string)

	for _, r := range ruleList {
		if err := r.Compile(); err != nil {
			return nil, err
		}
		if r.Kind() == KindLiteral {
			for _, s := range r.Styles {
				k := key{s, r.Match}
				if origin, dup := seen[k]; dup {
					return nil, fmt.Errorf("rule %q declared twice for style %s (%s and %s)", r.Match, s, origin, r.Origin)
				}
				seen[k] = r.Origin
			}
		}
		t.rules = append(t.rules, r)
	}

	frameSeen := make(map[[2]int]bool)
	for _, f := range frames {
		if !f.Style.Valid() {
			return nil, fmt.Errorf("frame has invalid style %d", int(f.Style))
		}
		if f.Intensity < MinIntensity || f.Intensity > MaxIntensity {
			return nil, fmt.Errorf("frame for %s: intensity %d out of range", f.Style, f.Intensity)
		}
		k := [2]int{int(f.Style), f.Intensity}
		if frameSeen[k] {
			return nil, fmt.Errorf("frame for %s at intensity %d declared twice", f.Style, f.Intensity)
		}
		frameSeen[k] = true
		t.frames = append(t.frames, f)
	}

	for _, s := range Styles() {
		var levels [MaxIntensity]*Pipeline
		for i := MinIntensity; i <= MaxIntensity; i++ {
			p, err := newPipeline(s, i, t.Rules(s, i), t.frame(s, i))
			if err != nil {
				return nil, err
			}
			levels[i-1] = p
		}
		t.pipelines[s] = levels
	}

	return t, nil
}

// Version returns the rule table version, 0 for tables built directly
// with NewTable
func (t *Table) Version() int {
	return t.version
}

// Rules returns the rules that apply to style at the given intensity, in
// declaration order
func (t *Table) Rules(style Style, intensity int) []Rule {
	var result []Rule
	for _, r := range t.rules {
		if r.AppliesTo(style, intensity) {
			result = append(result, r)
		}
	}
	return result
}

// All returns every rule in the table
func (t *Table) All() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Pipeline returns the compiled rewrite pipeline for style at intensity
func (t *Table) Pipeline(style Style, intensity int) (*Pipeline, error) {
	levels, ok := t.pipelines[style]
	if !ok {
		return nil, fmt.Errorf("no pipeline for style %s", style)
	}
	if intensity < MinIntensity || intensity > MaxIntensity {
		return nil, fmt.Errorf("intensity %d out of range %d-%d", intensity, MinIntensity, MaxIntensity)
	}
	return levels[intensity-1], nil
}

func (t *Table) frame(style Style, intensity int) Frame {
	for _, f := range t.frames {
		if f.Style == style && f.Intensity == intensity {
			return f
		}
	}
	return Frame{Style: style, Intensity: intensity}
}
