package css

import "cmp"

// Specificity ranks competing rules. Comparison is lexicographic over the
// fields in declaration order, so the layering falls out of plain field
// comparison: user rules beat default rules, !important beats normal, then
// id, class and type counts, and finally later source order wins ties.
type Specificity struct {
	// IsUser is 1 for user stylesheet rules, 0 for built-in defaults.
	IsUser uint8
	// Important is 1 when any declaration in the rule carries !important.
	Important uint8
	// IDCount is the number of #id components across the selector.
	IDCount uint16
	// ClassCount counts .class and :pseudo-class components together.
	ClassCount uint16
	// TypeCount is the number of type components; the universal selector
	// contributes nothing anywhere.
	TypeCount uint16
	// SourceOrder is the rule's index in its stylesheet.
	SourceOrder uint32
}

// SpecificityOf computes the specificity of one selector. Pseudo-classes
// count into ClassCount even though matching never satisfies them.
func SpecificityOf(sel *Selector, sourceOrder uint32, origin Origin, important bool) Specificity {
	spec := Specificity{SourceOrder: sourceOrder}
	if origin == OriginUser {
		spec.IsUser = 1
	}
	if important {
		spec.Important = 1
	}
	for _, part := range sel.Parts {
		if part.Compound == nil {
			continue
		}
		for _, comp := range part.Compound.Components {
			switch comp.Kind {
			case ComponentID:
				spec.IDCount++
			case ComponentClass, ComponentPseudoClass:
				spec.ClassCount++
			case ComponentType:
				spec.TypeCount++
			}
		}
	}
	return spec
}

// Compare returns -1, 0 or 1 ordering s against other, field by field.
func (s Specificity) Compare(other Specificity) int {
	if c := cmp.Compare(s.IsUser, other.IsUser); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Important, other.Important); c != 0 {
		return c
	}
	if c := cmp.Compare(s.IDCount, other.IDCount); c != 0 {
		return c
	}
	if c := cmp.Compare(s.ClassCount, other.ClassCount); c != 0 {
		return c
	}
	if c := cmp.Compare(s.TypeCount, other.TypeCount); c != 0 {
		return c
	}
	return cmp.Compare(s.SourceOrder, other.SourceOrder)
}

// Less reports whether s ranks strictly below other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// IsDefault reports whether the specificity came from a built-in rule.
func (s Specificity) IsDefault() bool {
	return s.IsUser == 0
}
