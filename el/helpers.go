package el

import (
	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

func Text(content string) *VNode {
	return vdom.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}
func Raw(html string) *VNode {
	return vdom.Raw(html)
}
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}

// Style builds an inline style rule from property/value pairs. Underscores
// in property names become dashes, so "font_size" and "font-size" are the
// same property.
func Style(kv ...string) Rule {
	return style.Pairs(kv...)
}

// Declare builds an inline style rule from declarations.
func Declare(decls ...Decl) Rule {
	return style.New(decls...)
}

// CSS parses declaration text such as "color: red; margin: 0" into a
// rule. A parse failure is returned as the value, so it is recorded on the
// element it is passed to.
func CSS(text string) any {
	r, err := style.Parse(text)
	if err != nil {
		return err
	}
	return r
}
