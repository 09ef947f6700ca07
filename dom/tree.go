package dom

import (
	"strings"

	"gilt/css"
)

// Tree is a flat-arena widget tree. Nodes are addressed by css.NodeID, ids
// start at 1 and are never reused; the zero id is invalid. Tree implements
// css.Tree so compiled stylesheets can resolve against it directly.
type Tree struct {
	nodes []node
}

type node struct {
	data     NodeData
	parent   css.NodeID // 0 for roots
	children []css.NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) node(id css.NodeID) *node {
	if id == 0 || int(id) > len(t.nodes) {
		return nil
	}
	return &t.nodes[id-1]
}

// Insert adds a parentless node and returns its id.
func (t *Tree) Insert(data NodeData) css.NodeID {
	t.nodes = append(t.nodes, node{data: data})
	return css.NodeID(len(t.nodes))
}

// InsertChild adds a node under parent. It returns 0 when parent is not a
// node of this tree.
func (t *Tree) InsertChild(parent css.NodeID, data NodeData) css.NodeID {
	p := t.node(parent)
	if p == nil {
		return 0
	}
	t.nodes = append(t.nodes, node{data: data, parent: parent})
	id := css.NodeID(len(t.nodes))
	// append may have moved the arena; re-resolve the parent.
	t.node(parent).children = append(t.node(parent).children, id)
	return id
}

// Get returns the full node data for id.
func (t *Tree) Get(id css.NodeID) (NodeData, bool) {
	n := t.node(id)
	if n == nil {
		return NodeData{}, false
	}
	return n.data, true
}

// Children returns the ids of the node's children in insertion order.
func (t *Tree) Children(id css.NodeID) []css.NodeID {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return n.children
}

// Lookup implements css.Tree.
func (t *Tree) Lookup(id css.NodeID) (css.NodeInfo, bool) {
	n := t.node(id)
	if n == nil {
		return css.NodeInfo{}, false
	}
	return css.NodeInfo{
		Type:     n.data.Type,
		ID:       n.data.ID,
		Classes:  n.data.Classes,
		Visible:  n.data.Visible,
		Disabled: n.data.Disabled,
	}, true
}

// Parent implements css.Tree.
func (t *Tree) Parent(id css.NodeID) (css.NodeID, bool) {
	n := t.node(id)
	if n == nil || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}

// Ancestors implements css.Tree: ids from the nearest ancestor up to the
// root.
func (t *Tree) Ancestors(id css.NodeID) []css.NodeID {
	var out []css.NodeID
	for {
		parent, ok := t.Parent(id)
		if !ok {
			return out
		}
		out = append(out, parent)
		id = parent
	}
}

// Walk visits id and its subtree depth-first in insertion order. Returning
// false from visit stops the walk.
func (t *Tree) Walk(id css.NodeID, visit func(css.NodeID, NodeData) bool) {
	t.walk(id, visit)
}

func (t *Tree) walk(id css.NodeID, visit func(css.NodeID, NodeData) bool) bool {
	n := t.node(id)
	if n == nil {
		return true
	}
	if !visit(id, n.data) {
		return false
	}
	for _, child := range n.children {
		if !t.walk(child, visit) {
			return false
		}
	}
	return true
}

// Path renders the chain from the root down to id for display, each node as
// the widget type followed by its id and classes, e.g.
// "Container#root/Panel#main.content/Button.primary".
func (t *Tree) Path(id css.NodeID) string {
	n := t.node(id)
	if n == nil {
		return ""
	}
	ancestors := t.Ancestors(id)
	var sb strings.Builder
	for i := len(ancestors) - 1; i >= 0; i-- {
		sb.WriteString(t.label(ancestors[i]))
		sb.WriteByte('/')
	}
	sb.WriteString(t.label(id))
	return sb.String()
}

func (t *Tree) label(id css.NodeID) string {
	data := t.node(id).data
	label := data.Type
	if data.ID != "" {
		label += "#" + data.ID
	}
	for _, c := range data.Classes {
		label += "." + c
	}
	return label
}
