package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"gilt/css"
)

// XML view documents describe a widget tree declaratively: the element tag
// is the widget type, and the id, class, visible, focusable and disabled
// attributes map onto NodeData. Example:
//
//	<Container id="root">
//	    <Panel id="main" class="content">
//	        <Button class="primary btn" focusable="true"/>
//	        <Label id="title"/>
//	    </Panel>
//	</Container>

// ParseMarkup loads a widget tree from an XML view document and returns the
// tree together with the root node's id.
func ParseMarkup(data []byte, log *zap.Logger) (*Tree, css.NodeID, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("markup")

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, 0, fmt.Errorf("unable to read markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, 0, fmt.Errorf("markup has no root element")
	}

	tree := NewTree()
	rootData, err := nodeDataFromElement(root)
	if err != nil {
		return nil, 0, err
	}
	rootID := tree.Insert(rootData)
	if err := addChildren(tree, rootID, root); err != nil {
		return nil, 0, err
	}
	log.Debug("loaded view markup", zap.Int("nodes", tree.Len()))
	return tree, rootID, nil
}

func addChildren(tree *Tree, parent css.NodeID, el *etree.Element) error {
	for _, child := range el.ChildElements() {
		data, err := nodeDataFromElement(child)
		if err != nil {
			return err
		}
		id := tree.InsertChild(parent, data)
		if err := addChildren(tree, id, child); err != nil {
			return err
		}
	}
	return nil
}

func nodeDataFromElement(el *etree.Element) (NodeData, error) {
	data := NewNodeData(el.Tag)
	data.ID = el.SelectAttrValue("id", "")
	if classes := strings.Fields(el.SelectAttrValue("class", "")); len(classes) > 0 {
		data.Classes = classes
	}

	var err error
	if data.Visible, err = boolAttr(el, "visible", true); err != nil {
		return NodeData{}, err
	}
	if data.Focusable, err = boolAttr(el, "focusable", false); err != nil {
		return NodeData{}, err
	}
	if data.Disabled, err = boolAttr(el, "disabled", false); err != nil {
		return NodeData{}, err
	}
	return data, nil
}

func boolAttr(el *etree.Element, name string, def bool) (bool, error) {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("element %q: bad %s attribute %q", el.Tag, name, raw)
	}
	return v, nil
}
