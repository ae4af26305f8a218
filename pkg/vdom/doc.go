// Package vdom provides the element tree for hoist.
//
// A VNode is one node of the markup tree: an element with a tag,
// ordered attributes, an ordered class set, an optional id and children,
// or a text, raw or fragment leaf. Trees are built with variadic factory
// functions:
//
//	CreateElement("div", Class("card"), ID("main"),
//	    style.Pairs("color", "red"),
//	    CreateElement("p", "hello"),
//	)
//
// The el package wraps CreateElement with one constructor per HTML tag.
//
// # Style hoisting
//
// Passing a style.Rule to a constructor hoists it: the element gets a
// content-addressed class name (see style.ClassName) and keeps the CSS
// body locally. Nothing is registered anywhere until the tree is
// aggregated.
//
// # Aggregation
//
// Aggregate walks a tree in pre-order (parent first, children in list
// order) and hands every generated style and inline script to a Sink.
// render.Document is the usual Sink; Collect gathers into a standalone
// Assets value.
//
// # Validation
//
// Constructors never fail. Problems such as a missing required attribute
// are recorded on the node and reported by Validate, which joins every
// node error found in the tree.
package vdom
