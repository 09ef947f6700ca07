package dom

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

const testMarkup = `<?xml version="1.0"?>
<Container id="root">
    <Panel id="main" class="content">
        <Button class="primary btn" focusable="true"/>
        <Label id="title"/>
    </Panel>
    <Panel id="sidebar" class="nav" visible="false"/>
</Container>`

func TestParseMarkup(t *testing.T) {
	tree, root, err := ParseMarkup([]byte(testMarkup), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("ParseMarkup failed: %v", err)
	}
	if tree.Len() != 5 {
		t.Errorf("Len = %d, want 5", tree.Len())
	}

	data, ok := tree.Get(root)
	if !ok || data.Type != "Container" || data.ID != "root" {
		t.Errorf("root = %+v/%v", data, ok)
	}

	children := tree.Children(root)
	if len(children) != 2 {
		t.Fatalf("root children = %v", children)
	}

	main, _ := tree.Get(children[0])
	if main.Type != "Panel" || main.ID != "main" || !main.HasClass("content") {
		t.Errorf("main = %+v", main)
	}

	sidebar, _ := tree.Get(children[1])
	if sidebar.Visible {
		t.Error("sidebar should have visible=false")
	}

	grandchildren := tree.Children(children[0])
	if len(grandchildren) != 2 {
		t.Fatalf("main children = %v", grandchildren)
	}
	button, _ := tree.Get(grandchildren[0])
	if button.Type != "Button" || !button.HasClass("primary") || !button.HasClass("btn") || !button.Focusable {
		t.Errorf("button = %+v", button)
	}
}

func TestParseMarkupErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not xml", "Button { color: red }"},
		{"empty", ""},
		{"bad bool attribute", `<Panel visible="maybe"/>`},
		{"unclosed element", `<Container><Panel></Container>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseMarkup([]byte(tt.input), nil); err == nil {
				t.Errorf("ParseMarkup(%q) succeeded, want error", tt.input)
			}
		})
	}
}
