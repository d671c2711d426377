package rules

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pthm/promptopt/internal/vocab"
)

// Marks bracket every literal edit so the article and conjunction fixers
// only touch words next to an edit. They are stripped before output.
const (
	editMark    = "\uE000"
	removalMark = "\uE001"
	anyMark     = `[\x{E000}\x{E001}]`
)

var (
	articleAtEdit     = regexp.MustCompile(`\b([Aa]n?)((?:\s|` + anyMark + `)*` + anyMark + `(?:\s|` + anyMark + `)*)(\pL)`)
	orphanConjunction = regexp.MustCompile(`(?i)\x{E001}[ \t]*\b(?:and|or)\b[ \t]*\x{E001}`)

	horizontalSpace    = regexp.MustCompile(`[ \t]+`)
	spaceBeforePunct   = regexp.MustCompile(`[ \t]+([,.;:!?])`)
	repeatedSeparators = regexp.MustCompile(`([,;:])(?:[ \t]*[,;:])+`)
	separatorBeforeEnd = regexp.MustCompile(`[,;:]+([.!?])`)
	leadingSeparator   = regexp.MustCompile(`(?m)^[ \t]*[,;:][ \t]*`)
	lineEdgeSpace      = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
)

// Pipeline rewrites text for one style at one intensity
type Pipeline struct {
	style        Style
	intensity    int
	literal      *regexp.Regexp
	replacements map[string]string
	tokenRules   []Rule
	frame        Frame
}

func newPipeline(style Style, intensity int, ruleList []Rule, frame Frame) (*Pipeline, error) {
	p := &Pipeline{
		style:        style,
		intensity:    intensity,
		replacements: make(map[string]string),
		frame:        frame,
	}

	var phrases []string
	for _, r := range ruleList {
		switch r.Kind() {
		case KindLiteral:
			p.replacements[r.Match] = r.Replace
			phrases = append(phrases, r.Match)
		case KindTokenClass:
			p.tokenRules = append(p.tokenRules, r)
		}
	}

	if len(phrases) == 0 {
		return p, nil
	}

	// Longest phrase first so "elaborate on" wins over "elaborate"
	sort.Slice(phrases, func(i, j int) bool {
		wi, wj := strings.Count(phrases[i], " "), strings.Count(phrases[j], " ")
		if wi != wj {
			return wi > wj
		}
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	exprs := make([]string, len(phrases))
	for i, ph := range phrases {
		exprs[i] = phraseExpr(ph)
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(exprs, "|") + `)\b`)
	if err != nil {
		return nil, err
	}
	p.literal = re
	return p, nil
}

// Style returns the style this pipeline rewrites for
func (p *Pipeline) Style() Style {
	return p.style
}

// Intensity returns the variant level of this pipeline
func (p *Pipeline) Intensity() int {
	return p.intensity
}

// Apply rewrites text. If the rules remove every word, the trimmed input
// is used as the body instead so a variant is never blank.
func (p *Pipeline) Apply(text string) string {
	original := strings.TrimSpace(text)
	if original == "" {
		return ""
	}

	out := original
	if p.literal != nil {
		out = p.replaceLiterals(out)
	}
	for _, r := range p.tokenRules {
		out = r.compiled.ReplaceAllString(out, r.Replace)
	}
	out = orphanConjunction.ReplaceAllLiteralString(out, removalMark+" "+removalMark)
	out = fixArticles(out)
	out = tidy(out)

	if vocab.TokenCount(out) == 0 {
		out = original
	}
	if startsUpper(original) {
		out = upperFirst(out)
	}

	return p.frame.apply(out)
}

func (p *Pipeline) replaceLiterals(text string) string {
	matches := p.literal.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		b.WriteString(text[last:loc[0]])
		matched := text[loc[0]:loc[1]]
		repl, ok := p.replacements[normalizePhrase(matched)]
		if !ok {
			repl = matched
		}
		mark := editMark
		if repl == "" {
			mark = removalMark
		}
		b.WriteString(mark)
		b.WriteString(matchCase(matched, repl))
		b.WriteString(mark)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (f Frame) apply(body string) string {
	if f.Prefix != "" {
		body = f.Prefix + lowerFirst(body)
	}
	if f.Suffix != "" {
		end := len(strings.TrimRight(body, ".!?"))
		body = body[:end] + f.Suffix + body[end:]
	}
	if f.Append != "" {
		if !strings.ContainsAny(body[len(body)-1:], ".!?") {
			body += "."
		}
		body += " " + f.Append
	}
	return body
}

// matchCase carries the capitalization of matched over to repl. A
// replacement that already contains capitals, like "AI", is kept verbatim.
func matchCase(matched, repl string) string {
	if repl == "" || strings.IndexFunc(repl, unicode.IsUpper) >= 0 {
		return repl
	}
	if utf8.RuneCountInString(matched) > 1 && strings.ToUpper(matched) == matched && strings.ToLower(matched) != matched {
		return strings.ToUpper(repl)
	}
	if startsUpper(matched) {
		return upperFirst(repl)
	}
	return repl
}

// fixArticles makes "a"/"an" agree with the word that follows an edit
func fixArticles(text string) string {
	return articleAtEdit.ReplaceAllStringFunc(text, func(m string) string {
		parts := articleAtEdit.FindStringSubmatch(m)
		article, gap, next := parts[1], parts[2], parts[3]

		want := "a"
		if strings.ContainsAny(next, "aeiouAEIOU") {
			want = "an"
		}
		if startsUpper(article) {
			want = upperFirst(want)
		}
		return want + gap + next
	})
}

func tidy(text string) string {
	text = strings.ReplaceAll(text, editMark, "")
	text = strings.ReplaceAll(text, removalMark, "")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = repeatedSeparators.ReplaceAllString(text, "$1")
	text = separatorBeforeEnd.ReplaceAllString(text, "$1")
	text = leadingSeparator.ReplaceAllString(text, "")
	text = lineEdgeSpace.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lowercases the first letter unless the first word is an
// acronym or the pronoun "I"
func lowerFirst(s string) string {
	first := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(first) > 0 && (first[0] == "I" || vocab.IsAcronym(first[0])) {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
