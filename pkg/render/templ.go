package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vango-dev/hoist/pkg/vdom"
)

// Component adapts a tree to templ.Component so it can be embedded in templ
// templates. A nil renderer uses the default configuration. The tree's
// styles and scripts are not collected; aggregate it into the owning
// Document separately.
func Component(node *vdom.VNode, r *Renderer) templ.Component {
	if r == nil {
		r = NewRenderer(RendererConfig{})
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return r.RenderToWriter(w, node)
	})
}
