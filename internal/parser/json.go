package parser

import (
	"encoding/json"
)

// JSONParser parses JSON prompt files. They share the field names of the
// HTTP request bodies, so a saved request can be replayed from the CLI.
type JSONParser struct{}

type jsonPrompt struct {
	RawPrompt      string `json:"raw_prompt"`
	ImprovedPrompt string `json:"improved_prompt"`
	Style          string `json:"style"`
}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON object with raw_prompt and optional
// improved_prompt and style fields
func (p *JSONParser) Parse(path string, content []byte) (*PromptFile, error) {
	var doc jsonPrompt
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	return &PromptFile{
		Path:     path,
		Content:  content,
		FileType: FileTypeJSON,
		Prompt:   doc.RawPrompt,
		Improved: doc.ImprovedPrompt,
		Style:    doc.Style,
	}, nil
}
