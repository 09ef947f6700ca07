package debug

import (
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "test",
			args:   nil,
			want:   "test\n",
		},
		{
			name:   "depth 1",
			depth:  1,
			format: "indented",
			args:   nil,
			want:   "  indented\n",
		},
		{
			name:   "depth 2",
			depth:  2,
			format: "double indent",
			args:   nil,
			want:   "    double indent\n",
		},
		{
			name:   "with formatting",
			depth:  0,
			format: "%s = %d",
			args:   []any{"width", 10},
			want:   "width = 10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() produced %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Field(t *testing.T) {
	tw := NewTreeWriter()
	tw.Field(1, "color", "#ff0000")
	if got, want := tw.String(), "  color: #ff0000\n"; got != want {
		t.Errorf("Field() produced %q, want %q", got, want)
	}
}

func TestTreeWriter_Accumulates(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Button.primary")
	tw.Field(1, "display", "block")
	tw.Field(1, "width", "10")

	want := "Button.primary\n  display: block\n  width: 10\n"
	if got := tw.String(); got != want {
		t.Errorf("Accumulated output %q, want %q", got, want)
	}
}
