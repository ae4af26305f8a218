package render

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/vango-dev/hoist/pkg/vdom"
)

// HeadConfig lists the caller-supplied parts of a document head.
type HeadConfig struct {
	// Title is the page title.
	Title string

	// StyleSheets are stylesheet URLs, linked in order.
	StyleSheets []string

	// Scripts are script URLs, included in order.
	Scripts []string

	// Meta holds one attribute list per extra meta tag.
	Meta [][]vdom.Attr

	// Escape HTML-escapes the title, meta values and URLs, matching
	// RendererConfig.Escape for the body.
	Escape bool
}

// Head is the <head> of a document. Its content is fixed when it is built:
// the stylesheet and script lists always end with the page's own URL
// carrying ?css=1 and ?js=1, so the browser fetches the generated payloads
// from the same route.
type Head struct {
	title       string
	styleSheets []string
	scripts     []string
	meta        [][]vdom.Attr
	escape      bool

	inlineStyles strings.Builder
	content      string
	closed       bool
}

// NewHead builds a head for the page served at selfURL.
func NewHead(selfURL string, cfg HeadConfig) *Head {
	h := &Head{
		title:       cfg.Title,
		styleSheets: append(append([]string(nil), cfg.StyleSheets...), SelfURL(selfURL, ModeStylesheet)),
		scripts:     append(append([]string(nil), cfg.Scripts...), SelfURL(selfURL, ModeScript)),
		meta:        make([][]vdom.Attr, 0, len(cfg.Meta)),
		escape:      cfg.Escape,
	}
	for _, m := range cfg.Meta {
		h.meta = append(h.meta, append([]vdom.Attr(nil), m...))
	}
	h.content = h.build()
	return h
}

// HeadFromRequest builds a head whose self references point at r's URL.
func HeadFromRequest(r *http.Request, cfg HeadConfig) *Head {
	self := "/"
	if r != nil && r.URL != nil {
		self = r.URL.RequestURI()
	}
	return NewHead(self, cfg)
}

// SelfURL returns rawURL with the query flag selecting mode. Existing css
// and js flags are removed first; ModeDocument returns the bare page URL.
func SelfURL(rawURL string, mode Mode) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if mode == ModeDocument {
			return rawURL
		}
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		return rawURL + sep + mode.String() + "=1"
	}

	q := u.Query()
	q.Del(QueryStylesheet)
	q.Del(QueryScript)
	switch mode {
	case ModeStylesheet:
		q.Set(QueryStylesheet, "1")
	case ModeScript:
		q.Set(QueryScript, "1")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Title returns the page title.
func (h *Head) Title() string { return h.title }

// StyleSheets returns the linked stylesheet URLs, self reference included.
func (h *Head) StyleSheets() []string { return append([]string(nil), h.styleSheets...) }

// Scripts returns the included script URLs, self reference included.
func (h *Head) Scripts() []string { return append([]string(nil), h.scripts...) }

// RegisterStyle adds raw CSS emitted in a <style> block at the end of the
// head. It has no effect once the head has been rendered.
func (h *Head) RegisterStyle(css string) {
	if h.closed {
		return
	}
	h.inlineStyles.WriteString(css)
}

// Render returns the complete head markup. The closing tag is appended on
// the first call only; later calls return the same string.
func (h *Head) Render() string {
	if h.closed {
		return h.content
	}
	var b strings.Builder
	b.WriteString(h.content)
	if h.inlineStyles.Len() > 0 {
		b.WriteString("<style>")
		b.WriteString(h.inlineStyles.String())
		b.WriteString("</style>")
	}
	b.WriteString("</head>")
	h.content = b.String()
	h.closed = true
	return h.content
}

// String returns the head markup without finalizing it.
func (h *Head) String() string {
	return h.content
}

func (h *Head) build() string {
	var b strings.Builder
	b.WriteString("<head>")
	b.WriteString(`<meta charset="UTF-8">`)
	b.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)

	for _, attrs := range h.meta {
		b.WriteString("<meta")
		for _, a := range attrs {
			if a.IsEmpty() {
				continue
			}
			b.WriteString(" " + a.Key + "='" + h.attr(a.Value) + "'")
		}
		b.WriteString(">")
	}

	b.WriteString("<title>" + h.text(h.title) + "</title>")

	for _, href := range h.styleSheets {
		b.WriteString(`<link rel="stylesheet" href="` + h.attr(href) + `">`)
	}
	for _, src := range h.scripts {
		b.WriteString(`<script src="` + h.attr(src) + `"></script>`)
	}
	return b.String()
}

func (h *Head) text(s string) string {
	if h.escape {
		return escapeHTML(s)
	}
	return s
}

func (h *Head) attr(s string) string {
	if h.escape {
		return escapeAttr(s)
	}
	return s
}
