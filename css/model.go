package css

import (
	"strconv"
	"strings"
)

// ComponentKind discriminates the simple selectors a compound is built from.
type ComponentKind int

const (
	ComponentType        ComponentKind = iota // Button
	ComponentUniversal                        // *
	ComponentClass                            // .primary
	ComponentID                               // #sidebar
	ComponentPseudoClass                      // :hover
)

// SelectorComponent is one simple selector. Name is empty for the universal
// component and holds the bare name (no leading punctuation) for the rest.
type SelectorComponent struct {
	Kind ComponentKind
	Name string
}

func (c SelectorComponent) String() string {
	switch c.Kind {
	case ComponentUniversal:
		return "*"
	case ComponentClass:
		return "." + c.Name
	case ComponentID:
		return "#" + c.Name
	case ComponentPseudoClass:
		return ":" + c.Name
	}
	return c.Name
}

// Combinator relates two adjacent compound selectors.
type Combinator int

const (
	// Descendant is the implicit whitespace combinator: "A B" matches a B
	// anywhere below an A.
	Descendant Combinator = iota
	// Child is the ">" combinator: "A > B" matches only a B whose direct
	// parent is an A.
	Child
)

func (c Combinator) String() string {
	if c == Child {
		return ">"
	}
	return " "
}

// CompoundSelector is a run of components written without whitespace, all of
// which must hold on a single node, e.g. "Button.primary:hover".
type CompoundSelector struct {
	Components []SelectorComponent
}

// IsUniversal reports whether the compound is exactly the bare star.
func (c *CompoundSelector) IsUniversal() bool {
	return len(c.Components) == 1 && c.Components[0].Kind == ComponentUniversal
}

func (c *CompoundSelector) String() string {
	var sb strings.Builder
	for _, comp := range c.Components {
		sb.WriteString(comp.String())
	}
	return sb.String()
}

// SelectorPart is one element of a selector's part list: either a compound
// selector or a combinator between two compounds. Compound is nil for
// combinator parts.
type SelectorPart struct {
	Compound   *CompoundSelector
	Combinator Combinator
}

// Selector is an alternating sequence of compounds and combinators. The
// parser guarantees the list starts and ends with a compound and never puts
// two combinators back to back.
type Selector struct {
	Parts []SelectorPart
}

func (s *Selector) String() string {
	var sb strings.Builder
	for _, part := range s.Parts {
		if part.Compound != nil {
			sb.WriteString(part.Compound.String())
		} else if part.Combinator == Child {
			sb.WriteString(" > ")
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// ValueKind discriminates declaration values.
type ValueKind int

const (
	ValueIdent     ValueKind = iota // red, auto, bold
	ValueNumber                     // 10, 3.14
	ValueDimension                  // 1fr, 50%, 10vw
	ValueColor                      // #ff00aa
	ValueString                     // "DejaVu Sans"
	ValueVariable                   // $primary
)

// Value is one token of a declaration's value list. Number and Unit are set
// for numbers and dimensions; Text holds the payload of every other kind,
// stripped of its leading '#', '$' or surrounding quotes.
type Value struct {
	Kind   ValueKind
	Number float64
	Unit   string
	Text   string
}

func IdentValue(name string) Value    { return Value{Kind: ValueIdent, Text: name} }
func NumberValue(v float64) Value     { return Value{Kind: ValueNumber, Number: v} }
func ColorValue(hex string) Value     { return Value{Kind: ValueColor, Text: hex} }
func StringValue(s string) Value      { return Value{Kind: ValueString, Text: s} }
func VariableValue(name string) Value { return Value{Kind: ValueVariable, Text: name} }

func DimensionValue(v float64, unit string) Value {
	return Value{Kind: ValueDimension, Number: v, Unit: unit}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return formatNumber(v.Number)
	case ValueDimension:
		return formatNumber(v.Number) + v.Unit
	case ValueColor:
		return "#" + v.Text
	case ValueString:
		return strconv.Quote(v.Text)
	case ValueVariable:
		return "$" + v.Text
	}
	return v.Text
}

// formatNumber prints integral values without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Declaration is a single "property: values" entry inside a rule body.
type Declaration struct {
	Property  string
	Values    []Value
	Important bool
}

// RuleSet couples a comma-separated selector list with the declarations that
// apply when any of the selectors matches.
type RuleSet struct {
	Selectors    []Selector
	Declarations []Declaration
}

// StyleSheet is the parsed form of one stylesheet source, rules in source
// order. Parsing checks grammar only; value validation happens when rules
// are compiled, applied or explicitly validated.
type StyleSheet struct {
	Rules []RuleSet
}
