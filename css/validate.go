package css

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateStylesheet checks every declaration in the sheet against the
// property table without keeping any of the results. The runtime cascade
// drops bad declarations silently; this is the loud counterpart for tooling,
// reporting all failures at once rather than stopping at the first.
func ValidateStylesheet(sheet *StyleSheet) error {
	var err error
	for ri := range sheet.Rules {
		rule := &sheet.Rules[ri]
		for di := range rule.Declarations {
			decl := &rule.Declarations[di]
			var scratch Styles
			if aerr := ApplyDeclaration(&scratch, decl.Property, decl.Values); aerr != nil {
				err = multierr.Append(err, fmt.Errorf("rule %d (%s): %w",
					ri+1, ruleLabel(rule), aerr))
			}
		}
	}
	return err
}

// ruleLabel renders the rule's selector list for error messages.
func ruleLabel(rule *RuleSet) string {
	label := ""
	for i := range rule.Selectors {
		if i > 0 {
			label += ", "
		}
		label += rule.Selectors[i].String()
	}
	return label
}
