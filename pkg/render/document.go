package render

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/vango-dev/hoist/internal/errors"
	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

// DefaultLang is the lang attribute used when none is configured.
const DefaultLang = "en"

// Document is one page render. It owns the head, the style registry and
// the script buffer collected from the body tree. A Document is built per
// request and must not be shared between requests.
type Document struct {
	head     *Head
	lang     string
	renderer *Renderer

	assets     *vdom.Assets
	aggregated bool
}

// Option configures a Document.
type Option func(*Document)

// WithLang sets the document language. Valid BCP 47 tags are
// canonicalized ("en-us" becomes "en-US"); anything else is used as given.
func WithLang(lang string) Option {
	return func(d *Document) {
		if lang = strings.TrimSpace(lang); lang != "" {
			d.lang = canonicalLang(lang)
		}
	}
}

// WithRenderer sets the renderer used for the body.
func WithRenderer(r *Renderer) Option {
	return func(d *Document) {
		if r != nil {
			d.renderer = r
		}
	}
}

// NewDocument creates a document with the given head.
func NewDocument(head *Head, opts ...Option) *Document {
	d := &Document{
		head:     head,
		lang:     DefaultLang,
		renderer: NewRenderer(RendererConfig{}),
		assets:   vdom.NewAssets(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.head == nil {
		d.head = NewHead("/", HeadConfig{})
	}
	return d
}

func canonicalLang(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// Lang returns the document language.
func (d *Document) Lang() string { return d.lang }

// Head returns the document head.
func (d *Document) Head() *Head { return d.head }

// RegisterStyle implements vdom.Sink. Hosts may also call it before
// rendering to ship extra classes in the stylesheet payload.
func (d *Document) RegisterStyle(class, css string) {
	d.assets.RegisterStyle(class, css)
}

// AppendScript implements vdom.Sink. Hosts may also call it before
// rendering to ship extra code in the script payload.
func (d *Document) AppendScript(script string) {
	d.assets.AppendScript(script)
}

// Styles returns the registered styles in registration order.
func (d *Document) Styles() []style.Generated {
	return append([]style.Generated(nil), d.assets.Styles...)
}

// Scripts returns the buffered scripts in registration order.
func (d *Document) Scripts() []string {
	return append([]string(nil), d.assets.Scripts...)
}

// Aggregate collects styles and scripts from body into the document. Only
// the first call walks the tree.
func (d *Document) Aggregate(body *vdom.VNode) {
	if d.aggregated {
		return
	}
	d.aggregated = true
	if body != nil {
		body.Aggregate(d)
	}
}

// Stylesheet returns the stylesheet payload: one block per registered class.
func (d *Document) Stylesheet() string {
	var b strings.Builder
	for _, g := range d.assets.Styles {
		b.WriteString(g.Block())
	}
	return b.String()
}

// ScriptText returns the script payload: every buffered script, wrapped
// once in a DOMContentLoaded handler.
func (d *Document) ScriptText() string {
	var b strings.Builder
	b.WriteString("document.addEventListener('DOMContentLoaded', function() {\n")
	for _, s := range d.assets.Scripts {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString("});\n")
	return b.String()
}

// Render produces the payload for mode. The body is validated first; a
// tree carrying construction errors is not rendered in any mode. Styles
// and scripts are collected in every mode, but markup is only produced
// for ModeDocument.
func (d *Document) Render(body *vdom.VNode, mode Mode) (Response, error) {
	if err := vdom.Validate(body); err != nil {
		return Response{}, err
	}

	switch mode {
	case ModeStylesheet:
		d.Aggregate(body)
		return newResponse(mode, d.Stylesheet()), nil
	case ModeScript:
		d.Aggregate(body)
		return newResponse(mode, d.ScriptText()), nil
	case ModeDocument:
		d.Aggregate(body)
		markup, err := d.markup(body)
		if err != nil {
			return Response{}, err
		}
		return newResponse(mode, markup), nil
	default:
		return Response{}, errors.New(errors.CodeUnknownMode).
			WithDetail("mode " + mode.String())
	}
}

// markup assembles the full HTML document around body.
func (d *Document) markup(body *vdom.VNode) (string, error) {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="` + d.lang + `">`)
	b.WriteString(d.head.Render())

	wrap := body == nil || body.Kind != vdom.KindElement || body.Tag != "body"
	if wrap {
		b.WriteString("<body>")
	}
	if err := d.renderer.RenderToWriter(&b, body); err != nil {
		return "", err
	}
	if wrap {
		b.WriteString("</body>")
	}
	b.WriteString("</html>")
	return b.String(), nil
}
