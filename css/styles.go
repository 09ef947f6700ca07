package css

import "strings"

// Display controls whether a node occupies layout space at all.
type Display int

const (
	DisplayBlock Display = iota
	DisplayNone
)

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "block"
}

// Visibility controls rendering without affecting layout: a hidden node
// still occupies its space.
type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

func (v Visibility) String() string {
	if v == VisibilityHidden {
		return "hidden"
	}
	return "visible"
}

// LayoutDirection selects how a container arranges its children.
type LayoutDirection int

const (
	LayoutVertical LayoutDirection = iota
	LayoutHorizontal
	LayoutGrid
)

func (l LayoutDirection) String() string {
	switch l {
	case LayoutHorizontal:
		return "horizontal"
	case LayoutGrid:
		return "grid"
	}
	return "vertical"
}

// Dock pins a node to one edge of its container.
type Dock int

const (
	DockTop Dock = iota
	DockRight
	DockBottom
	DockLeft
)

func (d Dock) String() string {
	switch d {
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	}
	return "top"
}

// Overflow selects how content larger than the node's box is handled.
type Overflow int

const (
	OverflowHidden Overflow = iota
	OverflowScroll
	OverflowAuto
)

func (o Overflow) String() string {
	switch o {
	case OverflowScroll:
		return "scroll"
	case OverflowAuto:
		return "auto"
	}
	return "hidden"
}

// TextAlign positions text within the node's content box.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// BorderKind selects the character set a border is drawn with.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderThin
	BorderHeavy
	BorderDouble
	BorderRound
	BorderAscii
)

func (b BorderKind) String() string {
	switch b {
	case BorderThin:
		return "thin"
	case BorderHeavy:
		return "heavy"
	case BorderDouble:
		return "double"
	case BorderRound:
		return "round"
	case BorderAscii:
		return "ascii"
	}
	return "none"
}

// Border pairs a border kind with an optional color. An empty Color means
// the border inherits the node's foreground; declaration values can never
// produce an empty color name.
type Border struct {
	Kind  BorderKind
	Color string
}

func (b Border) String() string {
	if b.Color == "" {
		return b.Kind.String()
	}
	return b.Kind.String() + " " + b.Color
}

// TextStyleFlags holds the six text attributes a terminal can toggle. Nil
// means the attribute is unset and inherits; "text-style: none" sets all six
// to an explicit false, which is how earlier styling gets switched off.
type TextStyleFlags struct {
	Bold          *bool
	Dim           *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Reverse       *bool
}

// String lists the attributes set to true, or "none" when no attribute is on.
func (f TextStyleFlags) String() string {
	attrs := []struct {
		name string
		v    *bool
	}{
		{"bold", f.Bold},
		{"dim", f.Dim},
		{"italic", f.Italic},
		{"underline", f.Underline},
		{"strikethrough", f.Strikethrough},
		{"reverse", f.Reverse},
	}
	var parts []string
	for _, a := range attrs {
		if a.v != nil && *a.v {
			parts = append(parts, a.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Styles is the set of resolved style properties for one node. Every field
// is optional: nil means no matched rule set it and the consumer should fall
// back to its own default. Styles values are treated as immutable once
// built; Merge copies pointers rather than pointees.
type Styles struct {
	Display    *Display
	Visibility *Visibility
	Layout     *LayoutDirection
	Dock       *Dock
	OverflowX  *Overflow
	OverflowY  *Overflow

	Width     *Scalar
	Height    *Scalar
	MinWidth  *Scalar
	MinHeight *Scalar
	MaxWidth  *Scalar
	MaxHeight *Scalar

	Margin  *ScalarBox
	Padding *ScalarBox

	Color      *string
	Background *string

	TextAlign *TextAlign
	TextStyle *TextStyleFlags

	Border *Border
}

// Merge combines two style sets field by field, other winning wherever it
// has a value. Fields always replace wholesale, TextStyle included: a later
// rule that only sets bold erases an earlier italic unless it repeats it.
// The operation is right-biased and not commutative; the cascade relies on
// folding in ascending specificity order.
func (s Styles) Merge(other Styles) Styles {
	merged := s
	if other.Display != nil {
		merged.Display = other.Display
	}
	if other.Visibility != nil {
		merged.Visibility = other.Visibility
	}
	if other.Layout != nil {
		merged.Layout = other.Layout
	}
	if other.Dock != nil {
		merged.Dock = other.Dock
	}
	if other.OverflowX != nil {
		merged.OverflowX = other.OverflowX
	}
	if other.OverflowY != nil {
		merged.OverflowY = other.OverflowY
	}
	if other.Width != nil {
		merged.Width = other.Width
	}
	if other.Height != nil {
		merged.Height = other.Height
	}
	if other.MinWidth != nil {
		merged.MinWidth = other.MinWidth
	}
	if other.MinHeight != nil {
		merged.MinHeight = other.MinHeight
	}
	if other.MaxWidth != nil {
		merged.MaxWidth = other.MaxWidth
	}
	if other.MaxHeight != nil {
		merged.MaxHeight = other.MaxHeight
	}
	if other.Margin != nil {
		merged.Margin = other.Margin
	}
	if other.Padding != nil {
		merged.Padding = other.Padding
	}
	if other.Color != nil {
		merged.Color = other.Color
	}
	if other.Background != nil {
		merged.Background = other.Background
	}
	if other.TextAlign != nil {
		merged.TextAlign = other.TextAlign
	}
	if other.TextStyle != nil {
		merged.TextStyle = other.TextStyle
	}
	if other.Border != nil {
		merged.Border = other.Border
	}
	return merged
}

// IsZero reports whether no field is set.
func (s Styles) IsZero() bool {
	return s == Styles{}
}
