package debug

import (
	"fmt"
	"strings"
)

// TreeWriter accumulates indented outline text, two spaces per depth level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) Field(depth int, name, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(name)
	tw.w.WriteString(": ")
	tw.w.WriteString(value)
	tw.w.WriteByte('\n')
}
