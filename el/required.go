// This file holds constructors for tags that take required or defaulted
// attributes as leading parameters.
package el

import (
	"strconv"

	"github.com/vango-dev/hoist/pkg/vdom"
)

// DefaultEnctype is the form encoding used by Form.
const DefaultEnctype = "multipart/form-data"

// build prepends lead to args so required attributes render first.
func build(tag string, lead []any, args []any) *VNode {
	all := make([]any, 0, len(lead)+len(args))
	all = append(all, lead...)
	all = append(all, args...)
	return vdom.CreateElement(tag, all...)
}

func required(tag, key, value string) any {
	return vdom.RequiredAttr(tag, key, value)
}

// A creates an anchor to href.
func A(href string, args ...any) *VNode {
	return build("a", []any{required("a", "href", href)}, args)
}

// Abbr creates an abbreviation whose expansion is title.
func Abbr(title string, args ...any) *VNode {
	return build("abbr", []any{required("abbr", "title", title)}, args)
}

// Audio creates an audio player for src. The source is emitted as a nested
// <source> element and controls are shown unless args set them.
func Audio(src string, args ...any) *VNode {
	lead := []any{}
	if src == "" {
		lead = append(lead, required("audio", "src", src))
	}
	node := build("audio", lead, args)
	node.Append(vdom.CreateElement("source", vdom.Src(src)))
	if _, ok := node.GetAttr("controls"); !ok {
		node.SetAttr("controls", "controls")
	}
	return node
}

// Button creates a button labeled title. Its type is "button"; pass
// Type("submit") to override.
func Button(title string, args ...any) *VNode {
	return build("button", []any{vdom.Type("button"), labelText("button", title)}, args)
}

// Canvas creates a drawing surface of the given size.
func Canvas(width, height int, args ...any) *VNode {
	return build("canvas", []any{vdom.Width(width), vdom.Height(height)}, args)
}

// Embed creates an embed of src with MIME type typ.
func Embed(src, typ string, args ...any) *VNode {
	return build("embed", []any{
		required("embed", "src", src),
		required("embed", "type", typ),
	}, args)
}

// Form creates a form submitting to action with method. The encoding
// defaults to DefaultEnctype.
func Form(method, action string, args ...any) *VNode {
	return build("form", []any{
		required("form", "method", method),
		required("form", "action", action),
		vdom.Enctype(DefaultEnctype),
	}, args)
}

// Img creates an image of src.
func Img(src string, args ...any) *VNode {
	return build("img", []any{required("img", "src", src)}, args)
}

// Input creates an input of type typ named name.
func Input(typ, name string, args ...any) *VNode {
	return build("input", []any{
		required("input", "type", typ),
		required("input", "name", name),
	}, args)
}

// Link creates a link element to href.
func Link(href string, args ...any) *VNode {
	return build("link", []any{required("link", "href", href)}, args)
}

// Optgroup creates an option group labeled label.
func Optgroup(label string, args ...any) *VNode {
	return build("optgroup", []any{required("optgroup", "label", label)}, args)
}

// Option creates a select option with value. An empty text leaves the
// option without content.
func Option(value, text string, args ...any) *VNode {
	lead := []any{required("option", "value", value)}
	if text != "" {
		lead = append(lead, text)
	}
	return build("option", lead, args)
}

// Param creates an object parameter.
func Param(name, value string, args ...any) *VNode {
	return build("param", []any{
		required("param", "name", name),
		required("param", "value", value),
	}, args)
}

// Progress creates a progress bar at value out of max.
func Progress(value, max int, args ...any) *VNode {
	return build("progress", []any{
		vdom.Value(strconv.Itoa(value)),
		vdom.Custom("max", strconv.Itoa(max)),
	}, args)
}

// Q creates an inline quotation from cite.
func Q(cite string, args ...any) *VNode {
	return build("q", []any{required("q", "cite", cite)}, args)
}

// Source creates a media source of src.
func Source(src string, args ...any) *VNode {
	return build("source", []any{required("source", "src", src)}, args)
}

// Video creates a video of src.
func Video(src string, args ...any) *VNode {
	return build("video", []any{required("video", "src", src)}, args)
}

// Script creates an external script element loading src.
func Script(src string, args ...any) *VNode {
	return build("script", []any{required("script", "src", src)}, args)
}

// ScriptText creates an inline script element. The code is written as raw
// markup so it is never escaped.
func ScriptText(code string, args ...any) *VNode {
	return build("script", []any{vdom.Raw(code)}, args)
}

// StyleTag creates an inline <style> element holding css.
func StyleTag(css string, args ...any) *VNode {
	return build("style", []any{vdom.Raw(css)}, args)
}

// labelText returns title as a text child, or a missing attribute error.
func labelText(tag, title string) any {
	if title == "" {
		return required(tag, "title", title)
	}
	return title
}
