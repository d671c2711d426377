package parser

// PlainParser takes the whole file as the prompt
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(path string, content []byte) (*PromptFile, error) {
	return &PromptFile{
		Path:     path,
		Content:  content,
		FileType: FileTypeUnknown,
		Prompt:   string(content),
	}, nil
}
