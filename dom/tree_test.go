package dom

import (
	"testing"

	"gilt/css"
)

func buildTree(t *testing.T) (*Tree, map[string]css.NodeID) {
	t.Helper()
	tree := NewTree()
	ids := make(map[string]css.NodeID)
	ids["root"] = tree.Insert(NewNodeData("Container").WithID("root"))
	ids["main"] = tree.InsertChild(ids["root"], NewNodeData("Panel").WithID("main").WithClasses("content"))
	ids["sidebar"] = tree.InsertChild(ids["root"], NewNodeData("Panel").WithID("sidebar").WithClasses("nav"))
	ids["button"] = tree.InsertChild(ids["main"], NewNodeData("Button").WithClasses("primary", "btn").WithFocusable(true))
	ids["label"] = tree.InsertChild(ids["main"], NewNodeData("Label").WithID("title"))
	for name, id := range ids {
		if id == 0 {
			t.Fatalf("insert of %s failed", name)
		}
	}
	return tree, ids
}

func TestTreeInsertAndGet(t *testing.T) {
	tree, ids := buildTree(t)
	if tree.Len() != 5 {
		t.Errorf("Len = %d, want 5", tree.Len())
	}
	data, ok := tree.Get(ids["button"])
	if !ok {
		t.Fatal("Get(button) failed")
	}
	if data.Type != "Button" || !data.HasClass("primary") || !data.Focusable {
		t.Errorf("button data = %+v", data)
	}
	if !data.Visible {
		t.Error("nodes should be visible by default")
	}
	if _, ok := tree.Get(0); ok {
		t.Error("Get(0) should fail")
	}
	if _, ok := tree.Get(99); ok {
		t.Error("Get(99) should fail")
	}
}

func TestTreeInsertChildBadParent(t *testing.T) {
	tree := NewTree()
	if id := tree.InsertChild(42, NewNodeData("Button")); id != 0 {
		t.Errorf("InsertChild under missing parent = %d, want 0", id)
	}
}

func TestTreeParentAndChildren(t *testing.T) {
	tree, ids := buildTree(t)
	parent, ok := tree.Parent(ids["button"])
	if !ok || parent != ids["main"] {
		t.Errorf("Parent(button) = %d/%v, want %d", parent, ok, ids["main"])
	}
	if _, ok := tree.Parent(ids["root"]); ok {
		t.Error("root should have no parent")
	}
	children := tree.Children(ids["main"])
	if len(children) != 2 || children[0] != ids["button"] || children[1] != ids["label"] {
		t.Errorf("Children(main) = %v", children)
	}
}

func TestTreeAncestorsNearestFirst(t *testing.T) {
	tree, ids := buildTree(t)
	ancestors := tree.Ancestors(ids["button"])
	if len(ancestors) != 2 || ancestors[0] != ids["main"] || ancestors[1] != ids["root"] {
		t.Errorf("Ancestors(button) = %v, want [main root]", ancestors)
	}
	if got := tree.Ancestors(ids["root"]); len(got) != 0 {
		t.Errorf("Ancestors(root) = %v, want empty", got)
	}
}

func TestTreeWalkOrder(t *testing.T) {
	tree, ids := buildTree(t)
	var visited []css.NodeID
	tree.Walk(ids["root"], func(id css.NodeID, _ NodeData) bool {
		visited = append(visited, id)
		return true
	})
	want := []css.NodeID{ids["root"], ids["main"], ids["button"], ids["label"], ids["sidebar"]}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %d, want %d", i, visited[i], want[i])
		}
	}
}

func TestTreeWalkStops(t *testing.T) {
	tree, ids := buildTree(t)
	count := 0
	tree.Walk(ids["root"], func(css.NodeID, NodeData) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("visit count = %d, want 2", count)
	}
}

func TestTreePath(t *testing.T) {
	tree, ids := buildTree(t)
	if got := tree.Path(ids["button"]); got != "Container#root/Panel#main.content/Button.primary.btn" {
		t.Errorf("Path(button) = %q", got)
	}
	if got := tree.Path(ids["root"]); got != "Container#root" {
		t.Errorf("Path(root) = %q", got)
	}
}

func TestTreeImplementsCSSTree(t *testing.T) {
	tree, ids := buildTree(t)
	var view css.Tree = tree
	info, ok := view.Lookup(ids["sidebar"])
	if !ok || info.Type != "Panel" || info.ID != "sidebar" || !info.HasClass("nav") {
		t.Errorf("Lookup(sidebar) = %+v/%v", info, ok)
	}
}

func TestTreeStyling(t *testing.T) {
	tree, ids := buildTree(t)
	sheet, err := css.Parse(`
		Button { color: red }
		#main > .primary { color: blue; padding: 1 2 }
		#sidebar Button { color: green }
	`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	styles := css.Compile(sheet, css.OriginDefault).ComputeStyles(ids["button"], tree)
	if styles.Color == nil || *styles.Color != "blue" {
		t.Errorf("Color = %v, want blue", styles.Color)
	}
	want := css.Box(css.Cells(1), css.Cells(2), css.Cells(1), css.Cells(2))
	if styles.Padding == nil || *styles.Padding != want {
		t.Errorf("Padding = %v, want %v", styles.Padding, want)
	}
}
