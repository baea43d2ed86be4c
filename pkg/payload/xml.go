package payload

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/getmockd/fixturegen/pkg/model"
)

// DefaultRootName names the document element when none is given.
const DefaultRootName = "root"

// itemName names the children of a list that has no key to repeat.
const itemName = "item"

// WriteXML writes tree as an XML document under rootName. Object keys
// become child elements, a list under a key repeats that key, and the items
// of a top-level list are written as item elements. Empty values become
// empty elements.
func WriteXML(w io.Writer, tree *model.Value, rootName string) error {
	if rootName == "" {
		rootName = DefaultRootName
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootName)

	if err := fillXML(root, tree); err != nil {
		return err
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("payload: write xml: %w", err)
	}
	return nil
}

func fillXML(el *etree.Element, n any) error {
	switch v := n.(type) {
	case nil:
		return nil
	case *model.Value:
		if v == nil || v.IsEmpty() {
			return nil
		}
		return fillXML(el, v.Payload())
	case model.Leaf:
		el.SetText(v.Expr)
		return nil
	case *model.Object:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			if err := appendXML(el, key, child); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		return nil
	case *model.List:
		for _, item := range v.Items() {
			if err := fillXML(el.CreateElement(itemName), item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("payload: unexpected node %T", n)
	}
}

// appendXML adds the child stored under key to parent.
func appendXML(parent *etree.Element, key string, child any) error {
	if list := asList(child); list != nil {
		for _, item := range list.Items() {
			if err := fillXML(parent.CreateElement(key), item); err != nil {
				return err
			}
		}
		return nil
	}
	return fillXML(parent.CreateElement(key), child)
}

func asList(n any) *model.List {
	switch v := n.(type) {
	case *model.List:
		return v
	case *model.Value:
		if v != nil {
			return asList(v.Payload())
		}
	}
	return nil
}
