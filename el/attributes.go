package el

import "github.com/vango-dev/hoist/pkg/vdom"

func Custom(key, value string) Attr {
	return vdom.Custom(key, value)
}
func Attrs(m map[string]string) []Attr {
	return vdom.Attrs(m)
}
func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func AriaLabel(label string) Attr {
	return vdom.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return vdom.AriaHidden(hidden)
}
func TabIndex(index int) Attr {
	return vdom.TabIndex(index)
}
func TitleAttr(title string) Attr {
	return vdom.TitleAttr(title)
}
func Lang(lang string) Attr {
	return vdom.Lang(lang)
}
func Href(url string) Attr {
	return vdom.Href(url)
}
func Target(target string) Attr {
	return vdom.Target(target)
}
func Rel(rel string) Attr {
	return vdom.Rel(rel)
}
func Src(url string) Attr {
	return vdom.Src(url)
}
func Alt(text string) Attr {
	return vdom.Alt(text)
}
func Width(w int) Attr {
	return vdom.Width(w)
}
func Height(h int) Attr {
	return vdom.Height(h)
}
func Media(query string) Attr {
	return vdom.Media(query)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Value(value string) Attr {
	return vdom.Value(value)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Placeholder(text string) Attr {
	return vdom.Placeholder(text)
}
func For(id string) Attr {
	return vdom.For(id)
}
func Method(m string) Attr {
	return vdom.Method(m)
}
func Action(url string) Attr {
	return vdom.Action(url)
}
func Enctype(enc string) Attr {
	return vdom.Enctype(enc)
}

// CiteAttr sets the cite attribute of blockquote, q, del and ins.
func CiteAttr(url string) Attr {
	return vdom.Custom("cite", url)
}

func Disabled() Attr {
	return vdom.Disabled()
}
func Selected() Attr {
	return vdom.Selected()
}
func Checked() Attr {
	return vdom.Checked()
}
func Controls() Attr {
	return vdom.Controls()
}
func Open() Attr {
	return vdom.Open()
}
func Required() Attr {
	return vdom.Required()
}
