package parser

import (
	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML prompt documents
type YAMLParser struct{}

type yamlPrompt struct {
	Prompt   string `yaml:"prompt"`
	Improved string `yaml:"improved"`
	Style    string `yaml:"style"`
}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeYAML
}

// Parse parses a document with a "prompt" key and optional "improved"
// and "style" keys
func (p *YAMLParser) Parse(path string, content []byte) (*PromptFile, error) {
	var doc yamlPrompt
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	return &PromptFile{
		Path:     path,
		Content:  content,
		FileType: FileTypeYAML,
		Prompt:   doc.Prompt,
		Improved: doc.Improved,
		Style:    doc.Style,
	}, nil
}
