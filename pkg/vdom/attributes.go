package vdom

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/hoist/internal/errors"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Custom creates an arbitrary attribute.
func Custom(key, value string) Attr { return attr(key, value) }

// Attrs converts a map of attributes into a sorted []Attr so that output
// stays deterministic.
func Attrs(m map[string]string) []Attr {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Attr, 0, len(keys))
	for _, k := range keys {
		out = append(out, attr(k, m[k]))
	}
	return out
}

// Identity attributes

// ID sets the id.
func ID(id string) Attr { return attr("id", id) }

// Class adds class names. Each argument may itself hold several
// space-separated names.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id='123'
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", strconv.Itoa(index)) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", strconv.Itoa(h)) }

// Media sets the media attribute.
func Media(query string) Attr { return attr("media", query) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Method sets the method attribute of a form.
func Method(m string) Attr { return attr("method", m) }

// Action sets the action attribute of a form.
func Action(url string) Attr { return attr("action", url) }

// Enctype sets the enctype attribute of a form.
func Enctype(enc string) Attr { return attr("enctype", enc) }

// Boolean attributes keep the attribute name as value, matching how the
// markup writes them (controls='controls').

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", "disabled") }

// Selected sets the selected attribute.
func Selected() Attr { return attr("selected", "selected") }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", "checked") }

// Controls sets the controls attribute.
func Controls() Attr { return attr("controls", "controls") }

// Open sets the open attribute.
func Open() Attr { return attr("open", "open") }

// Required sets the required attribute.
func Required() Attr { return attr("required", "required") }

// RequiredAttr returns the attribute when value is non-empty, or a
// missing-attribute error to be recorded on the node otherwise. Tag
// constructors pass the result straight to CreateElement.
func RequiredAttr(tag, key, value string) any {
	if value == "" {
		return errors.New(errors.CodeMissingRequiredAttribute).
			Wrap(&MissingAttrError{Tag: tag, Attr: key})
	}
	return attr(key, value)
}
