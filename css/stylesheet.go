package css

import (
	"sort"

	"go.uber.org/zap"
)

// Origin identifies which stylesheet layer a rule came from. Any user rule
// outranks every default rule regardless of selector weight.
type Origin int

const (
	// OriginDefault marks built-in stylesheets shipped with widgets.
	OriginDefault Origin = iota
	// OriginUser marks stylesheets supplied by the application.
	OriginUser
)

func (o Origin) String() string {
	if o == OriginUser {
		return "user"
	}
	return "default"
}

// NodeID identifies a node in the widget tree. The zero value is never a
// valid node.
type NodeID uint64

// NodeInfo is the slice of a node's state that selector matching reads.
type NodeInfo struct {
	// Type is the widget type name, e.g. "Button".
	Type string
	// ID is the node's CSS id, empty when unset.
	ID string
	// Classes holds the node's CSS classes in no particular order.
	Classes []string
	// Visible and Disabled describe runtime state. Matching does not
	// consult them yet; they exist for pseudo-class support.
	Visible  bool
	Disabled bool
}

// HasClass reports whether the node carries the given class.
func (n NodeInfo) HasClass(name string) bool {
	for _, c := range n.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Tree is the read-only view of the widget tree the cascade walks. The dom
// package provides the canonical implementation.
type Tree interface {
	// Lookup returns the node data for id.
	Lookup(id NodeID) (NodeInfo, bool)
	// Parent returns the immediate parent of id.
	Parent(id NodeID) (NodeID, bool)
	// Ancestors returns ids ordered from the nearest ancestor to the root.
	Ancestors(id NodeID) []NodeID
}

// CompiledRule is one rule with its pre-computed rank.
type CompiledRule struct {
	Rule        *RuleSet
	Specificity Specificity
	SourceOrder int
}

// CompiledStylesheet is a StyleSheet prepared for matching: every rule
// carries its specificity so rank never has to be recomputed per node.
type CompiledStylesheet struct {
	rules []CompiledRule
}

// Compile computes the rank of every rule in the sheet. A rule's rank is
// deliberately coarse: the maximum specificity over its comma-separated
// selectors, with the important bit set if any declaration in the body has
// !important. Which selector actually matched a node does not change how the
// rule sorts.
func Compile(sheet *StyleSheet, origin Origin) *CompiledStylesheet {
	compiled := &CompiledStylesheet{rules: make([]CompiledRule, 0, len(sheet.Rules))}
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		important := false
		for _, decl := range rule.Declarations {
			if decl.Important {
				important = true
				break
			}
		}
		var best Specificity
		for si := range rule.Selectors {
			spec := SpecificityOf(&rule.Selectors[si], uint32(i), origin, important)
			if best.Less(spec) || si == 0 {
				best = spec
			}
		}
		compiled.rules = append(compiled.rules, CompiledRule{
			Rule:        rule,
			Specificity: best,
			SourceOrder: i,
		})
	}
	return compiled
}

// Len returns the number of compiled rules.
func (c *CompiledStylesheet) Len() int {
	return len(c.rules)
}

// ComputeStyles resolves the styles of one node against this sheet alone.
func (c *CompiledStylesheet) ComputeStyles(id NodeID, tree Tree) Styles {
	return computeStyles([]*CompiledStylesheet{c}, id, tree)
}

// Cascade folds any number of compiled stylesheets into per-node styles.
// Sheets passed earlier sort below later ones when specificity ties, which
// only matters between two sheets of the same origin; across origins the
// user bit already decides.
type Cascade struct {
	sheets []*CompiledStylesheet
	log    *zap.Logger
}

// NewCascade builds a cascade over the given sheets. Pass nil for log to
// disable logging.
func NewCascade(log *zap.Logger, sheets ...*CompiledStylesheet) *Cascade {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cascade{sheets: sheets, log: log.Named("css-cascade")}
}

// Styles resolves the styles of one node across all sheets.
func (c *Cascade) Styles(id NodeID, tree Tree) Styles {
	styles := computeStyles(c.sheets, id, tree)
	c.log.Debug("resolved node styles", zap.Uint64("node", uint64(id)))
	return styles
}

type candidate struct {
	spec  Specificity
	sheet int
	order int
	decls []Declaration
}

// computeStyles gathers every rule whose selector list matches the node,
// sorts the matches ascending by rank, and folds their declarations into a
// single Styles with the highest-ranked rule applied last. Declarations that
// fail to apply are skipped; their siblings in the same rule still count.
func computeStyles(sheets []*CompiledStylesheet, id NodeID, tree Tree) Styles {
	var matches []candidate
	for si, sheet := range sheets {
		for i := range sheet.rules {
			cr := &sheet.rules[i]
			for seli := range cr.Rule.Selectors {
				if Matches(&cr.Rule.Selectors[seli], id, tree) {
					matches = append(matches, candidate{
						spec:  cr.Specificity,
						sheet: si,
						order: cr.SourceOrder,
						decls: cr.Rule.Declarations,
					})
					break
				}
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if c := matches[i].spec.Compare(matches[j].spec); c != 0 {
			return c < 0
		}
		if matches[i].sheet != matches[j].sheet {
			return matches[i].sheet < matches[j].sheet
		}
		return matches[i].order < matches[j].order
	})

	var result Styles
	for _, m := range matches {
		var ruleStyles Styles
		for _, decl := range m.decls {
			// Invalid declarations drop out of the cascade silently.
			_ = ApplyDeclaration(&ruleStyles, decl.Property, decl.Values)
		}
		result = result.Merge(ruleStyles)
	}
	return result
}

// Matches reports whether sel matches the node. The walk is anchored on the
// right: the last compound must match the node itself, then each combinator
// moves leftward through the tree. Child demands the immediate parent;
// Descendant scans ancestors from nearest to farthest and commits to the
// first hit, with no backtracking if a later part then fails.
func Matches(sel *Selector, id NodeID, tree Tree) bool {
	parts := sel.Parts
	if len(parts) == 0 {
		return false
	}

	idx := len(parts) - 1
	last := parts[idx]
	if last.Compound == nil {
		return false
	}
	node, ok := tree.Lookup(id)
	if !ok || !matchesCompound(last.Compound, node) {
		return false
	}

	current := id
	for idx > 0 {
		idx--
		comb := parts[idx]
		if comb.Compound != nil || idx == 0 {
			return false
		}
		idx--
		compound := parts[idx].Compound
		if compound == nil {
			return false
		}

		switch comb.Combinator {
		case Child:
			parentID, ok := tree.Parent(current)
			if !ok {
				return false
			}
			parent, ok := tree.Lookup(parentID)
			if !ok || !matchesCompound(compound, parent) {
				return false
			}
			current = parentID
		case Descendant:
			found := false
			for _, ancestorID := range tree.Ancestors(current) {
				ancestor, ok := tree.Lookup(ancestorID)
				if ok && matchesCompound(compound, ancestor) {
					current = ancestorID
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// matchesCompound checks every component of the compound against one node.
// Pseudo-classes never match: they still parse and still count toward
// specificity, but satisfying them needs runtime state the matcher does not
// consult yet.
func matchesCompound(compound *CompoundSelector, node NodeInfo) bool {
	for _, comp := range compound.Components {
		switch comp.Kind {
		case ComponentType:
			if node.Type != comp.Name {
				return false
			}
		case ComponentClass:
			if !node.HasClass(comp.Name) {
				return false
			}
		case ComponentID:
			if node.ID != comp.Name {
				return false
			}
		case ComponentPseudoClass:
			return false
		}
	}
	return true
}
