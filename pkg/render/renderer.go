package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/vango-dev/hoist/internal/errors"
	"github.com/vango-dev/hoist/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Compact drops the separator spaces of empty attribute, class and id
	// segments and omits closing tags of void elements. When false the
	// opening tag always has the shape "<tag {attrs} {class} {id}>", so an
	// element with nothing set renders as "<p   ></p>".
	Compact bool

	// Escape HTML-escapes text children and attribute values. Raw nodes
	// are never escaped. Off by default: content is emitted verbatim.
	Escape bool
}

// Renderer serializes VNode trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter writes a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node)
	default:
		return errors.New(errors.CodeUnknownNodeKind).
			WithDetail("node kind " + node.Kind.String())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, r.openTag(node)); err != nil {
		return err
	}

	if r.config.Compact && vdom.IsVoidElement(node.Tag) {
		return nil
	}

	if err := r.renderChildren(w, node); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderText writes a text node, escaping it only when configured to.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	text := node.Text
	if r.config.Escape {
		text = escapeHTML(text)
	}
	_, err := io.WriteString(w, text)
	return err
}

// openTag builds "<tag {attrs} {class} {id}>".
func (r *Renderer) openTag(node *vdom.VNode) string {
	segments := [3]string{
		r.attrSegment(node.Attrs),
		r.classSegment(node.Classes),
		r.idSegment(node.ID),
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(node.Tag)
	for _, seg := range segments {
		if r.config.Compact && seg == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(seg)
	}
	b.WriteByte('>')
	return b.String()
}

// attrSegment renders key='value' pairs in insertion order.
func (r *Renderer) attrSegment(attrs []vdom.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.IsEmpty() {
			continue
		}
		parts = append(parts, a.Key+"='"+r.attrValue(a.Value)+"'")
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) classSegment(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	return "class='" + r.attrValue(strings.Join(classes, " ")) + "'"
}

func (r *Renderer) idSegment(id string) string {
	if id == "" {
		return ""
	}
	return "id='" + r.attrValue(id) + "'"
}

func (r *Renderer) attrValue(v string) string {
	if r.config.Escape {
		return escapeAttr(v)
	}
	return v
}
