package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser reduces a markdown file to the plain text of its blocks
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses a markdown prompt. Frontmatter may set "style" and
// "improved".
func (p *MarkdownParser) Parse(path string, content []byte) (*PromptFile, error) {
	frontmatter, body := ParseFrontmatter(content)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	return &PromptFile{
		Path:        path,
		Content:     content, // Keep original content
		FileType:    FileTypeMarkdown,
		Prompt:      PlainText(doc, body),
		Improved:    stringField(frontmatter, "improved"),
		Style:       stringField(frontmatter, "style"),
		Frontmatter: frontmatter,
	}, nil
}

// PlainText walks the AST and joins the text of each block with newlines.
// Emphasis, links and code spans keep their text; markup is dropped.
func PlainText(doc ast.Node, source []byte) string {
	var blocks []string
	var b strings.Builder

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			blocks = append(blocks, s)
		}
		b.Reset()
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				flush()
				lines := node.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(source))
				}
				flush()
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				flush()
			}
		}
		return ast.WalkContinue, nil
	})
	flush()

	return strings.Join(blocks, "\n")
}
