package vdom

import (
	"strings"

	"go.uber.org/multierr"

	"github.com/vango-dev/hoist/pkg/style"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// CreateElement creates a new element node with the given tag.
//
// Arguments can be: nil, Attr, []Attr, style.Rule, *style.Rule, *VNode,
// []*VNode, string (text child), EventScript, []EventScript or error.
// Attr values with key "class" extend the class list and "id" sets the id.
// Event scripts are bound after every other argument so an explicit ID
// is honored regardless of argument order.
func CreateElement(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    make([]Attr, 0),
		Classes:  make([]string, 0),
		Children: make([]*VNode, 0),
	}

	var events []EventScript
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case Attr:
			node.applyAttr(v)

		case []Attr:
			for _, a := range v {
				node.applyAttr(a)
			}

		case style.Rule:
			node.SetStyle(v)

		case *style.Rule:
			if v != nil {
				node.SetStyle(*v)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			node.Append(v...)

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))

		case EventScript:
			events = append(events, v)

		case []EventScript:
			events = append(events, v...)

		case error:
			node.Err = multierr.Append(node.Err, v)
		}
	}

	for _, e := range events {
		node.On(e.Event, e.Script)
	}

	return node
}

// applyAttr routes class and id attributes to their dedicated fields.
func (v *VNode) applyAttr(a Attr) {
	switch a.Key {
	case "":
		return
	case "class":
		v.AddClass(strings.Fields(a.Value)...)
	case "id":
		v.ID = a.Value
	default:
		v.SetAttr(a.Key, a.Value)
	}
}
