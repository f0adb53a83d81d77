package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"yulite/internal/ast"
)

// Reporter formats diagnostics against the source text with a caret marker,
// Rust-style. Output goes wherever the caller writes the returned string;
// the reporter itself never touches process-wide streams.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a message anchored at a source position.
func (r *Reporter) Format(message string, pos ast.Position) string {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n", red("error"), message))

	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	b.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, pos.Line, pos.Column))

	if pos.Line > 0 && pos.Line <= len(r.lines) {
		lineContent := r.lines[pos.Line-1]
		marker := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

		b.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, pos.Line)), dim("│"), lineContent))
		b.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), bold(marker)))
	}

	return b.String()
}

// FormatInvalidProgram renders an InvalidProgram against the source it came from.
func (r *Reporter) FormatInvalidProgram(err *InvalidProgram) string {
	return r.Format(err.Message, err.Position)
}
