package vdom

import (
	"slices"

	"github.com/vango-dev/hoist/pkg/style"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Text leaf
	KindRaw                   // Raw HTML, never escaped
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is a node of the element tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Attrs    []Attr   // Attributes in insertion order, keys unique
	Classes  []string // Class names in insertion order, no duplicates
	ID       string   // Element id, synthesized by On when empty
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw

	// Generated is the hoisted inline style, if a style.Rule was attached.
	Generated *style.Generated

	// Script is the inline event-binding script set by On.
	Script string

	// Err records construction problems reported by Validate.
	Err error
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// SetAttr sets an attribute. An existing key keeps its position and takes
// the new value.
func (v *VNode) SetAttr(key, value string) *VNode {
	for i := range v.Attrs {
		if v.Attrs[i].Key == key {
			v.Attrs[i].Value = value
			return v
		}
	}
	v.Attrs = append(v.Attrs, Attr{Key: key, Value: value})
	return v
}

// GetAttr returns the value of an attribute and whether it is set.
func (v *VNode) GetAttr(key string) (string, bool) {
	for _, a := range v.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AddClass appends class names, skipping empty and already present ones.
func (v *VNode) AddClass(classes ...string) *VNode {
	for _, c := range classes {
		if c == "" || slices.Contains(v.Classes, c) {
			continue
		}
		v.Classes = append(v.Classes, c)
	}
	return v
}

// HasClass reports whether the class list contains c.
func (v *VNode) HasClass(c string) bool {
	return slices.Contains(v.Classes, c)
}

// SetStyle hoists r into a generated class. An element holds at most one
// generated style; a second call replaces the first. Empty rules are ignored.
func (v *VNode) SetStyle(r style.Rule) *VNode {
	if r.IsEmpty() {
		return v
	}
	gen := style.Generate(r)
	if v.Generated != nil && v.Generated.Class != gen.Class {
		v.Classes = slices.DeleteFunc(v.Classes, func(c string) bool {
			return c == v.Generated.Class
		})
	}
	v.Generated = &gen
	return v.AddClass(gen.Class)
}

// Append adds children to the node.
func (v *VNode) Append(children ...*VNode) *VNode {
	for _, c := range children {
		if c != nil {
			v.Children = append(v.Children, c)
		}
	}
	return v
}
