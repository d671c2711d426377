// Package parser reads prompts from files. Markdown files contribute
// their plain text and frontmatter, YAML and JSON files carry the prompt
// as fields, and anything else is taken verbatim.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PromptFile is a prompt loaded from disk
type PromptFile struct {
	Path     string
	Content  []byte
	FileType FileType

	// Prompt is the text to optimize or score
	Prompt string
	// Improved is an optional rewritten prompt to score against Prompt
	Improved string
	// Style is an optional default style tag, unvalidated
	Style string

	Frontmatter map[string]interface{} // YAML frontmatter from markdown files
}

// FileType represents the type of prompt file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypeJSON
	FileTypeYAML
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	default:
		return "text"
	}
}

// Parser defines the interface for parsing prompt files
type Parser interface {
	Parse(path string, content []byte) (*PromptFile, error)
	CanParse(path string) bool
}

// Parse reads and parses a file using the appropriate parser
func Parse(path string) (*PromptFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(path, content)
}

// ParseContent parses content as if it had been read from path
func ParseContent(path string, content []byte) (*PromptFile, error) {
	pf, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	pf.Prompt = strings.TrimSpace(pf.Prompt)
	pf.Improved = strings.TrimSpace(pf.Improved)
	pf.Style = strings.TrimSpace(pf.Style)
	return pf, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFileType(path) {
	case FileTypeMarkdown:
		return &MarkdownParser{}
	case FileTypeJSON:
		return &JSONParser{}
	case FileTypeYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypeUnknown
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	// Return remaining content after frontmatter
	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\r")
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}

// stringField returns m[key] if it is a string
func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
