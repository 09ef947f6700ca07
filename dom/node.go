// Package dom holds the retained widget tree that styling resolves against:
// node data, tree structure and an XML markup loader for view documents.
package dom

// NodeData describes one widget-tree node as styling sees it.
type NodeData struct {
	// Type is the widget type name, e.g. "Button".
	Type string
	// ID is the node's CSS id, unique per tree by convention but not
	// enforced here.
	ID string
	// Classes are the node's CSS classes.
	Classes []string
	// Visible, Focusable and Disabled carry runtime widget state.
	Visible   bool
	Focusable bool
	Disabled  bool
}

// NewNodeData creates node data for a widget type, visible by default.
func NewNodeData(widgetType string) NodeData {
	return NodeData{Type: widgetType, Visible: true}
}

// WithID returns a copy with the CSS id set.
func (d NodeData) WithID(id string) NodeData {
	d.ID = id
	return d
}

// WithClasses returns a copy with the given classes appended.
func (d NodeData) WithClasses(classes ...string) NodeData {
	d.Classes = append(d.Classes[:len(d.Classes):len(d.Classes)], classes...)
	return d
}

// WithFocusable returns a copy with the focusable flag set.
func (d NodeData) WithFocusable(focusable bool) NodeData {
	d.Focusable = focusable
	return d
}

// WithDisabled returns a copy with the disabled flag set.
func (d NodeData) WithDisabled(disabled bool) NodeData {
	d.Disabled = disabled
	return d
}

// HasClass reports whether the node carries the given class.
func (d NodeData) HasClass(name string) bool {
	for _, c := range d.Classes {
		if c == name {
			return true
		}
	}
	return false
}
