// This file holds constructors for tags without required attributes.
package el

import "github.com/vango-dev/hoist/pkg/vdom"

// Document

func Body(args ...any) *VNode {
	return vdom.CreateElement("body", args...)
}
func Main(args ...any) *VNode {
	return vdom.CreateElement("main", args...)
}
func Header(args ...any) *VNode {
	return vdom.CreateElement("header", args...)
}
func Footer(args ...any) *VNode {
	return vdom.CreateElement("footer", args...)
}
func Nav(args ...any) *VNode {
	return vdom.CreateElement("nav", args...)
}
func Section(args ...any) *VNode {
	return vdom.CreateElement("section", args...)
}
func Article(args ...any) *VNode {
	return vdom.CreateElement("article", args...)
}
func Aside(args ...any) *VNode {
	return vdom.CreateElement("aside", args...)
}
func Address(args ...any) *VNode {
	return vdom.CreateElement("address", args...)
}
func Hgroup(args ...any) *VNode {
	return vdom.CreateElement("hgroup", args...)
}
func Search(args ...any) *VNode {
	return vdom.CreateElement("search", args...)
}

// Headings

func H1(args ...any) *VNode {
	return vdom.CreateElement("h1", args...)
}
func H2(args ...any) *VNode {
	return vdom.CreateElement("h2", args...)
}
func H3(args ...any) *VNode {
	return vdom.CreateElement("h3", args...)
}
func H4(args ...any) *VNode {
	return vdom.CreateElement("h4", args...)
}
func H5(args ...any) *VNode {
	return vdom.CreateElement("h5", args...)
}
func H6(args ...any) *VNode {
	return vdom.CreateElement("h6", args...)
}

// Text content

func Div(args ...any) *VNode {
	return vdom.CreateElement("div", args...)
}
func P(args ...any) *VNode {
	return vdom.CreateElement("p", args...)
}
func Pre(args ...any) *VNode {
	return vdom.CreateElement("pre", args...)
}
func Blockquote(args ...any) *VNode {
	return vdom.CreateElement("blockquote", args...)
}
func Hr(args ...any) *VNode {
	return vdom.CreateElement("hr", args...)
}
func Br(args ...any) *VNode {
	return vdom.CreateElement("br", args...)
}
func Wbr(args ...any) *VNode {
	return vdom.CreateElement("wbr", args...)
}
func Ul(args ...any) *VNode {
	return vdom.CreateElement("ul", args...)
}
func Ol(args ...any) *VNode {
	return vdom.CreateElement("ol", args...)
}
func Li(args ...any) *VNode {
	return vdom.CreateElement("li", args...)
}
func Dl(args ...any) *VNode {
	return vdom.CreateElement("dl", args...)
}
func Dt(args ...any) *VNode {
	return vdom.CreateElement("dt", args...)
}
func Dd(args ...any) *VNode {
	return vdom.CreateElement("dd", args...)
}
func Figure(args ...any) *VNode {
	return vdom.CreateElement("figure", args...)
}
func Figcaption(args ...any) *VNode {
	return vdom.CreateElement("figcaption", args...)
}
func Details(args ...any) *VNode {
	return vdom.CreateElement("details", args...)
}
func Summary(args ...any) *VNode {
	return vdom.CreateElement("summary", args...)
}
func Dialog(args ...any) *VNode {
	return vdom.CreateElement("dialog", args...)
}
func Noscript(args ...any) *VNode {
	return vdom.CreateElement("noscript", args...)
}
func Template(args ...any) *VNode {
	return vdom.CreateElement("template", args...)
}

// Inline text

func Span(args ...any) *VNode {
	return vdom.CreateElement("span", args...)
}
func Strong(args ...any) *VNode {
	return vdom.CreateElement("strong", args...)
}
func Em(args ...any) *VNode {
	return vdom.CreateElement("em", args...)
}
func B(args ...any) *VNode {
	return vdom.CreateElement("b", args...)
}
func I(args ...any) *VNode {
	return vdom.CreateElement("i", args...)
}
func U(args ...any) *VNode {
	return vdom.CreateElement("u", args...)
}
func S(args ...any) *VNode {
	return vdom.CreateElement("s", args...)
}
func Small(args ...any) *VNode {
	return vdom.CreateElement("small", args...)
}
func Mark(args ...any) *VNode {
	return vdom.CreateElement("mark", args...)
}
func Code(args ...any) *VNode {
	return vdom.CreateElement("code", args...)
}
func Kbd(args ...any) *VNode {
	return vdom.CreateElement("kbd", args...)
}
func Samp(args ...any) *VNode {
	return vdom.CreateElement("samp", args...)
}
func Var(args ...any) *VNode {
	return vdom.CreateElement("var", args...)
}
func Sub(args ...any) *VNode {
	return vdom.CreateElement("sub", args...)
}
func Sup(args ...any) *VNode {
	return vdom.CreateElement("sup", args...)
}
func Cite(args ...any) *VNode {
	return vdom.CreateElement("cite", args...)
}
func Dfn(args ...any) *VNode {
	return vdom.CreateElement("dfn", args...)
}
func Time(args ...any) *VNode {
	return vdom.CreateElement("time", args...)
}
func Data_(args ...any) *VNode {
	return vdom.CreateElement("data", args...)
}
func Del(args ...any) *VNode {
	return vdom.CreateElement("del", args...)
}
func Ins(args ...any) *VNode {
	return vdom.CreateElement("ins", args...)
}
func Bdi(args ...any) *VNode {
	return vdom.CreateElement("bdi", args...)
}
func Bdo(args ...any) *VNode {
	return vdom.CreateElement("bdo", args...)
}
func Ruby(args ...any) *VNode {
	return vdom.CreateElement("ruby", args...)
}
func Rt(args ...any) *VNode {
	return vdom.CreateElement("rt", args...)
}
func Rp(args ...any) *VNode {
	return vdom.CreateElement("rp", args...)
}

// Tables

func Table(args ...any) *VNode {
	return vdom.CreateElement("table", args...)
}
func Caption(args ...any) *VNode {
	return vdom.CreateElement("caption", args...)
}
func Colgroup(args ...any) *VNode {
	return vdom.CreateElement("colgroup", args...)
}
func Col(args ...any) *VNode {
	return vdom.CreateElement("col", args...)
}
func Thead(args ...any) *VNode {
	return vdom.CreateElement("thead", args...)
}
func Tbody(args ...any) *VNode {
	return vdom.CreateElement("tbody", args...)
}
func Tfoot(args ...any) *VNode {
	return vdom.CreateElement("tfoot", args...)
}
func Tr(args ...any) *VNode {
	return vdom.CreateElement("tr", args...)
}
func Th(args ...any) *VNode {
	return vdom.CreateElement("th", args...)
}
func Td(args ...any) *VNode {
	return vdom.CreateElement("td", args...)
}

// Forms

func Fieldset(args ...any) *VNode {
	return vdom.CreateElement("fieldset", args...)
}
func Legend(args ...any) *VNode {
	return vdom.CreateElement("legend", args...)
}
func Label(args ...any) *VNode {
	return vdom.CreateElement("label", args...)
}
func Select(args ...any) *VNode {
	return vdom.CreateElement("select", args...)
}
func Textarea(args ...any) *VNode {
	return vdom.CreateElement("textarea", args...)
}
func Output(args ...any) *VNode {
	return vdom.CreateElement("output", args...)
}
func Datalist(args ...any) *VNode {
	return vdom.CreateElement("datalist", args...)
}
func Meter(args ...any) *VNode {
	return vdom.CreateElement("meter", args...)
}

// Embedded

func Picture(args ...any) *VNode {
	return vdom.CreateElement("picture", args...)
}
func Iframe(args ...any) *VNode {
	return vdom.CreateElement("iframe", args...)
}
func Object(args ...any) *VNode {
	return vdom.CreateElement("object", args...)
}
func Map(args ...any) *VNode {
	return vdom.CreateElement("map", args...)
}
func Area(args ...any) *VNode {
	return vdom.CreateElement("area", args...)
}
func Track(args ...any) *VNode {
	return vdom.CreateElement("track", args...)
}

// Metadata

func Title(args ...any) *VNode {
	return vdom.CreateElement("title", args...)
}
func Meta(args ...any) *VNode {
	return vdom.CreateElement("meta", args...)
}
func Base(args ...any) *VNode {
	return vdom.CreateElement("base", args...)
}
