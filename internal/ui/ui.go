package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted
type OutputMode int

const (
	// OutputModeInteractive enables colors and unicode icons
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors (for piped output)
	OutputModePlain
	// OutputModeJSON outputs raw JSON only
	OutputModeJSON
)

// UI holds the writers a command reports to. Stdout and stderr are styled
// independently, so warnings stay coloured on a terminal while results are
// piped to a file.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
	ErrStyles *Styles
}

// New creates a UI for the given --format value
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
		ErrStyles: NewStyles(isTerminal(errW)),
	}
}

// detectMode picks JSON when asked, otherwise styled output on a TTY
func detectMode(w io.Writer, format string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}
	if isTerminal(w) {
		return OutputModeInteractive
	}
	return OutputModePlain
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsJSON returns true if JSON output mode is enabled
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}

// Warn prints a warning line to the error writer. Warnings are never mixed
// into JSON results.
func (ui *UI) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(ui.ErrWriter, ui.ErrStyles.Warning.Render(ui.ErrStyles.IconWarning+" "+msg))
}
