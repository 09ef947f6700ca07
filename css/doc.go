// Package css implements the styling engine of the widget toolkit: a CSS
// dialect parsed into typed rules, matched against a widget tree and folded
// into per-node style sets.
//
// # Selector types
//
//   - Type selectors: Button, Panel, Label (match the widget type name)
//   - Class selectors: .primary, .nav
//   - Id selectors: #sidebar, #main
//   - Universal: * (matches everything, adds no specificity)
//   - Pseudo-classes: :hover, :focus (parsed and counted, never matched yet)
//   - Compound: Button.primary#ok (all components on one node)
//   - Combinators: descendant (whitespace) and child (>)
//   - Grouped: Button, Label share one declaration block
//
// # Properties
//
// Layout:
//   - display: block | none
//   - visibility: visible | hidden
//   - layout: vertical | horizontal | grid
//   - dock: top | right | bottom | left
//   - overflow, overflow-x, overflow-y: hidden | scroll | auto
//
// Sizing (scalar values: cells, fr, %, vw, vh, px, auto):
//   - width, height, min-width, min-height, max-width, max-height
//   - margin, padding: 1-4 value box shorthand
//
// Appearance:
//   - color, background: named color or #hex
//   - text-align: left | center | right
//   - text-style: bold, dim, italic, underline, strikethrough, reverse, none
//   - border: kind (none|thin|heavy|double|round|ascii) with optional color
//
// # Cascade
//
// Every rule gets a six-field specificity: user-origin flag, !important
// flag, id count, class count, type count and source order, compared
// lexicographically in that order. Matching rules apply from lowest to
// highest rank and later values override earlier ones field by field.
//
// # Usage
//
//	parser := css.NewParser(logger)
//	sheet, err := parser.Parse(data)
//	if err != nil {
//	    return err
//	}
//	compiled := css.Compile(sheet, css.OriginUser)
//	styles := compiled.ComputeStyles(nodeID, tree)
package css
