package vdom

import (
	"strconv"

	"github.com/vango-dev/hoist/pkg/style"
)

// Sink receives the styles and scripts collected by Aggregate.
type Sink interface {
	// RegisterStyle stores css under class. Repeated classes carry the
	// same content, so implementations may overwrite or skip.
	RegisterStyle(class, css string)

	// AppendScript appends an inline script in traversal order.
	AppendScript(script string)
}

// Aggregate walks the tree rooted at v in pre-order and reports every
// generated style and inline script to sink. Parents report before their
// children; siblings report in list order.
func (v *VNode) Aggregate(sink Sink) {
	if v == nil {
		return
	}
	if v.Kind == KindElement {
		if v.Generated != nil {
			sink.RegisterStyle(v.Generated.Class, v.Generated.CSS)
		}
		if v.Script != "" {
			sink.AppendScript(v.Script)
		}
	}
	for _, child := range v.Children {
		child.Aggregate(sink)
	}
}

// Assets is a standalone Sink: an insertion-ordered, class-keyed style
// registry plus a script list.
type Assets struct {
	Styles  []style.Generated
	Scripts []string

	index map[string]int
}

// NewAssets creates an empty Assets.
func NewAssets() *Assets {
	return &Assets{index: make(map[string]int)}
}

// RegisterStyle implements Sink. A class keeps its first position; a later
// registration for the same class overwrites the content.
func (a *Assets) RegisterStyle(class, css string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[class]; ok {
		a.Styles[i].CSS = css
		return
	}
	a.index[class] = len(a.Styles)
	a.Styles = append(a.Styles, style.Generated{Class: class, CSS: css})
}

// AppendScript implements Sink.
func (a *Assets) AppendScript(script string) {
	a.Scripts = append(a.Scripts, script)
}

// Collect aggregates the tree into a fresh Assets.
func Collect(root *VNode) *Assets {
	assets := NewAssets()
	if root != nil {
		root.Aggregate(assets)
	}
	return assets
}

// Walk visits root and its descendants in pre-order. fn receives each node
// and its path (e.g. "body > div[0] > p[1]"); returning false skips the
// node's children. Text and raw leaves are visited too.
func Walk(root *VNode, fn func(node *VNode, path string) bool) {
	if root == nil {
		return
	}
	walk(root, nodeLabel(root), fn)
}

func walk(node *VNode, path string, fn func(*VNode, string) bool) {
	if !fn(node, path) {
		return
	}
	for i, child := range node.Children {
		if child == nil {
			continue
		}
		walk(child, path+" > "+nodeLabel(child)+"["+strconv.Itoa(i)+"]", fn)
	}
}

func nodeLabel(node *VNode) string {
	switch node.Kind {
	case KindElement:
		return node.Tag
	case KindFragment:
		return "#fragment"
	case KindRaw:
		return "#raw"
	default:
		return "#text"
	}
}
