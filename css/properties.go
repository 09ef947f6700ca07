package css

import (
	"fmt"
	"maps"
	"slices"
)

// UnknownPropertyError reports a declaration naming a property outside the
// supported set.
type UnknownPropertyError struct {
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return "unknown property: " + e.Property
}

// InvalidValueError reports declaration values that do not fit the shape the
// property expects.
type InvalidValueError struct {
	Property string
	Message  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Property, e.Message)
}

func invalidValue(property, format string, args ...any) error {
	return &InvalidValueError{Property: property, Message: fmt.Sprintf(format, args...)}
}

// ParseScalar converts one declaration value into a Scalar: a bare number
// means cells, a dimension carries its own unit with px as an alias for
// cells, and the exact identifier "auto" means size to content. The property
// name is only used in error messages.
func ParseScalar(property string, v Value) (Scalar, error) {
	switch v.Kind {
	case ValueNumber:
		return Cells(v.Number), nil
	case ValueDimension:
		switch v.Unit {
		case "fr":
			return Fr(v.Number), nil
		case "%":
			return Percent(v.Number), nil
		case "vw":
			return Vw(v.Number), nil
		case "vh":
			return Vh(v.Number), nil
		case "px":
			return Cells(v.Number), nil
		}
		return Scalar{}, invalidValue(property, "unknown unit: %s", v.Unit)
	case ValueIdent:
		if v.Text == "auto" {
			return Auto(), nil
		}
	}
	return Scalar{}, invalidValue(property, "expected number, dimension, or 'auto', got: %s", v)
}

// ParseScalarBox expands the 1-4 value box shorthand:
//
//	1 value:  all four sides
//	2 values: vertical, horizontal
//	3 values: top, horizontal, bottom
//	4 values: top, right, bottom, left
func ParseScalarBox(property string, values []Value) (ScalarBox, error) {
	scalars := make([]Scalar, len(values))
	for i, v := range values {
		s, err := ParseScalar(property, v)
		if err != nil {
			return ScalarBox{}, err
		}
		scalars[i] = s
	}
	switch len(scalars) {
	case 1:
		return BoxAll(scalars[0]), nil
	case 2:
		return BoxSymmetric(scalars[0], scalars[1]), nil
	case 3:
		return Box(scalars[0], scalars[1], scalars[2], scalars[1]), nil
	case 4:
		return Box(scalars[0], scalars[1], scalars[2], scalars[3]), nil
	}
	return ScalarBox{}, invalidValue(property, "expected 1-4 values, got %d", len(values))
}

func singleIdent(property string, values []Value) (string, error) {
	if len(values) != 1 {
		return "", invalidValue(property, "expected 1 value, got %d", len(values))
	}
	if values[0].Kind != ValueIdent {
		return "", invalidValue(property, "expected identifier, got: %s", values[0])
	}
	return values[0].Text, nil
}

func singleScalar(property string, values []Value) (Scalar, error) {
	if len(values) != 1 {
		return Scalar{}, invalidValue(property, "expected 1 value, got %d", len(values))
	}
	return ParseScalar(property, values[0])
}

// colorName accepts either a named color, kept verbatim, or a hex color,
// kept with its '#' prefix so consumers can tell the two shapes apart.
func colorName(property string, values []Value) (string, error) {
	if len(values) != 1 {
		return "", invalidValue(property, "expected 1 color value, got %d", len(values))
	}
	switch values[0].Kind {
	case ValueIdent:
		return values[0].Text, nil
	case ValueColor:
		return "#" + values[0].Text, nil
	}
	return "", invalidValue(property, "expected color name or hex color, got: %s", values[0])
}

func parseOverflow(property, name string) (Overflow, error) {
	switch name {
	case "hidden":
		return OverflowHidden, nil
	case "scroll":
		return OverflowScroll, nil
	case "auto":
		return OverflowAuto, nil
	}
	return 0, invalidValue(property, "expected hidden|scroll|auto, got: %s", name)
}

// parseBorder reads "<kind>" or "<kind> <color>".
func parseBorder(values []Value) (Border, error) {
	if len(values) == 0 {
		return Border{}, invalidValue("border", "expected at least 1 value")
	}
	if values[0].Kind != ValueIdent {
		return Border{}, invalidValue("border", "expected border kind identifier, got: %s", values[0])
	}
	var kind BorderKind
	switch values[0].Text {
	case "none":
		kind = BorderNone
	case "thin":
		kind = BorderThin
	case "heavy":
		kind = BorderHeavy
	case "double":
		kind = BorderDouble
	case "round":
		kind = BorderRound
	case "ascii":
		kind = BorderAscii
	default:
		return Border{}, invalidValue("border", "unknown border kind: %s", values[0].Text)
	}
	border := Border{Kind: kind}
	if len(values) > 1 {
		switch values[1].Kind {
		case ValueIdent:
			border.Color = values[1].Text
		case ValueColor:
			border.Color = "#" + values[1].Text
		default:
			return Border{}, invalidValue("border", "expected color for border, got: %s", values[1])
		}
	}
	return border, nil
}

// parseTextStyle reads one or more attribute flags. The keyword "none"
// forces all six attributes to an explicit false, which is different from
// leaving them unset; flags after a "none" still apply on top of it.
func parseTextStyle(values []Value) (TextStyleFlags, error) {
	var flags TextStyleFlags
	on := func() *bool { v := true; return &v }
	off := func() *bool { v := false; return &v }
	for _, value := range values {
		if value.Kind != ValueIdent {
			return TextStyleFlags{}, invalidValue("text-style", "expected text style identifier, got: %s", value)
		}
		switch value.Text {
		case "bold":
			flags.Bold = on()
		case "dim":
			flags.Dim = on()
		case "italic":
			flags.Italic = on()
		case "underline":
			flags.Underline = on()
		case "strikethrough":
			flags.Strikethrough = on()
		case "reverse":
			flags.Reverse = on()
		case "none":
			flags = TextStyleFlags{
				Bold: off(), Dim: off(), Italic: off(),
				Underline: off(), Strikethrough: off(), Reverse: off(),
			}
		default:
			return TextStyleFlags{}, invalidValue("text-style", "unknown text style: %s", value.Text)
		}
	}
	return flags, nil
}

// applyFunc interprets one declaration's values and sets a field of Styles.
type applyFunc func(*Styles, []Value) error

func identEnum[T any](property string, parse func(property, name string) (T, error), set func(*Styles, T)) applyFunc {
	return func(s *Styles, values []Value) error {
		name, err := singleIdent(property, values)
		if err != nil {
			return err
		}
		v, err := parse(property, name)
		if err != nil {
			return err
		}
		set(s, v)
		return nil
	}
}

func scalarProp(property string, set func(*Styles, *Scalar)) applyFunc {
	return func(s *Styles, values []Value) error {
		v, err := singleScalar(property, values)
		if err != nil {
			return err
		}
		set(s, &v)
		return nil
	}
}

func boxProp(property string, set func(*Styles, *ScalarBox)) applyFunc {
	return func(s *Styles, values []Value) error {
		box, err := ParseScalarBox(property, values)
		if err != nil {
			return err
		}
		set(s, &box)
		return nil
	}
}

func colorProp(property string, set func(*Styles, *string)) applyFunc {
	return func(s *Styles, values []Value) error {
		name, err := colorName(property, values)
		if err != nil {
			return err
		}
		set(s, &name)
		return nil
	}
}

func parseDisplay(property, name string) (Display, error) {
	switch name {
	case "block":
		return DisplayBlock, nil
	case "none":
		return DisplayNone, nil
	}
	return 0, invalidValue(property, "expected block|none, got: %s", name)
}

func parseVisibility(property, name string) (Visibility, error) {
	switch name {
	case "visible":
		return VisibilityVisible, nil
	case "hidden":
		return VisibilityHidden, nil
	}
	return 0, invalidValue(property, "expected visible|hidden, got: %s", name)
}

func parseLayout(property, name string) (LayoutDirection, error) {
	switch name {
	case "vertical":
		return LayoutVertical, nil
	case "horizontal":
		return LayoutHorizontal, nil
	case "grid":
		return LayoutGrid, nil
	}
	return 0, invalidValue(property, "expected vertical|horizontal|grid, got: %s", name)
}

func parseDock(property, name string) (Dock, error) {
	switch name {
	case "top":
		return DockTop, nil
	case "right":
		return DockRight, nil
	case "bottom":
		return DockBottom, nil
	case "left":
		return DockLeft, nil
	}
	return 0, invalidValue(property, "expected top|right|bottom|left, got: %s", name)
}

func parseTextAlign(property, name string) (TextAlign, error) {
	switch name {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, invalidValue(property, "expected left|center|right, got: %s", name)
}

// knownProperties is the single authoritative table of supported property
// names. Both the runtime cascade and ahead-of-time validation go through
// it, so the two can never disagree on what is legal.
var knownProperties = map[string]applyFunc{
	"display":    identEnum("display", parseDisplay, func(s *Styles, v Display) { s.Display = &v }),
	"visibility": identEnum("visibility", parseVisibility, func(s *Styles, v Visibility) { s.Visibility = &v }),
	"layout":     identEnum("layout", parseLayout, func(s *Styles, v LayoutDirection) { s.Layout = &v }),
	"dock":       identEnum("dock", parseDock, func(s *Styles, v Dock) { s.Dock = &v }),
	"overflow": func(s *Styles, values []Value) error {
		name, err := singleIdent("overflow", values)
		if err != nil {
			return err
		}
		v, err := parseOverflow("overflow", name)
		if err != nil {
			return err
		}
		x, y := v, v
		s.OverflowX, s.OverflowY = &x, &y
		return nil
	},
	"overflow-x": identEnum("overflow-x", parseOverflow, func(s *Styles, v Overflow) { s.OverflowX = &v }),
	"overflow-y": identEnum("overflow-y", parseOverflow, func(s *Styles, v Overflow) { s.OverflowY = &v }),

	"width":      scalarProp("width", func(s *Styles, v *Scalar) { s.Width = v }),
	"height":     scalarProp("height", func(s *Styles, v *Scalar) { s.Height = v }),
	"min-width":  scalarProp("min-width", func(s *Styles, v *Scalar) { s.MinWidth = v }),
	"min-height": scalarProp("min-height", func(s *Styles, v *Scalar) { s.MinHeight = v }),
	"max-width":  scalarProp("max-width", func(s *Styles, v *Scalar) { s.MaxWidth = v }),
	"max-height": scalarProp("max-height", func(s *Styles, v *Scalar) { s.MaxHeight = v }),

	"margin":  boxProp("margin", func(s *Styles, v *ScalarBox) { s.Margin = v }),
	"padding": boxProp("padding", func(s *Styles, v *ScalarBox) { s.Padding = v }),

	"color":      colorProp("color", func(s *Styles, v *string) { s.Color = v }),
	"background": colorProp("background", func(s *Styles, v *string) { s.Background = v }),

	"text-align": identEnum("text-align", parseTextAlign, func(s *Styles, v TextAlign) { s.TextAlign = &v }),
	"text-style": func(s *Styles, values []Value) error {
		flags, err := parseTextStyle(values)
		if err != nil {
			return err
		}
		s.TextStyle = &flags
		return nil
	},

	"border": func(s *Styles, values []Value) error {
		border, err := parseBorder(values)
		if err != nil {
			return err
		}
		s.Border = &border
		return nil
	},
}

// KnownProperties returns the sorted list of supported property names.
func KnownProperties() []string {
	return slices.Sorted(maps.Keys(knownProperties))
}

// IsKnownProperty reports whether name is in the property table.
func IsKnownProperty(name string) bool {
	_, ok := knownProperties[name]
	return ok
}

// ApplyDeclaration interprets one declaration and writes the result into
// styles. Unknown property names and value shape mismatches are reported;
// styles is left untouched on error.
func ApplyDeclaration(styles *Styles, property string, values []Value) error {
	apply, ok := knownProperties[property]
	if !ok {
		return &UnknownPropertyError{Property: property}
	}
	return apply(styles, values)
}
