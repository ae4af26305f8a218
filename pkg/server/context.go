package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/hoist/pkg/middleware"
	"github.com/vango-dev/hoist/pkg/render"
	"github.com/vango-dev/hoist/pkg/vdom"
)

// Ctx is the per-request context handed to a page. It carries the render
// mode resolved for the request and the head under construction.
type Ctx struct {
	w      http.ResponseWriter
	r      *http.Request
	mode   render.Mode
	logger *slog.Logger

	lang     string
	renderer *render.Renderer
	head     render.HeadConfig
	doc      *render.Document
}

func newCtx(s *Server, w http.ResponseWriter, r *http.Request) *Ctx {
	base := s.config.Head
	head := render.HeadConfig{
		Title:       base.Title,
		StyleSheets: append([]string(nil), base.StyleSheets...),
		Scripts:     append([]string(nil), base.Scripts...),
		Meta:        append([][]vdom.Attr(nil), base.Meta...),
		Escape:      base.Escape || s.config.Render.Escape,
	}

	mode := render.ModeFromRequest(r)
	logger := s.logger.With("path", r.URL.Path, "mode", mode.String())
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		logger = logger.With("request_id", id)
	}

	return &Ctx{
		w:        w,
		r:        r,
		mode:     mode,
		logger:   logger,
		lang:     s.config.Lang,
		renderer: s.renderer,
		head:     head,
	}
}

// Request returns the underlying HTTP request.
func (c *Ctx) Request() *http.Request { return c.r }

// Context returns the request context.
func (c *Ctx) Context() context.Context { return c.r.Context() }

// ResponseWriter returns the underlying response writer, for headers such
// as caching policy. Pages must not write the body themselves.
func (c *Ctx) ResponseWriter() http.ResponseWriter { return c.w }

// Mode returns the render mode of this request.
func (c *Ctx) Mode() render.Mode { return c.mode }

// Logger returns a logger annotated with the request.
func (c *Ctx) Logger() *slog.Logger { return c.logger }

// Param returns a route parameter.
func (c *Ctx) Param(key string) string { return chi.URLParam(c.r, key) }

// Query returns a query parameter.
func (c *Ctx) Query(key string) string { return c.r.URL.Query().Get(key) }

// SetTitle sets the page title. Like the other head setters it must be
// called before Document.
func (c *Ctx) SetTitle(title string) {
	if c.headFixed("SetTitle") {
		return
	}
	c.head.Title = title
}

// SetLang overrides the document language for this page.
func (c *Ctx) SetLang(lang string) {
	if c.headFixed("SetLang") {
		return
	}
	c.lang = lang
}

// AddStyleSheet links an extra stylesheet.
func (c *Ctx) AddStyleSheet(url string) {
	if c.headFixed("AddStyleSheet") {
		return
	}
	c.head.StyleSheets = append(c.head.StyleSheets, url)
}

// AddScript includes an extra script.
func (c *Ctx) AddScript(url string) {
	if c.headFixed("AddScript") {
		return
	}
	c.head.Scripts = append(c.head.Scripts, url)
}

// AddMeta adds a meta tag with the given attributes.
func (c *Ctx) AddMeta(attrs ...vdom.Attr) {
	if c.headFixed("AddMeta") {
		return
	}
	c.head.Meta = append(c.head.Meta, attrs)
}

// Document returns the document for this request, building its head on
// the first call. Pages use it to register extra styles or scripts.
func (c *Ctx) Document() *render.Document {
	if c.doc == nil {
		head := render.HeadFromRequest(c.r, c.head)
		c.doc = render.NewDocument(head,
			render.WithLang(c.lang),
			render.WithRenderer(c.renderer),
		)
	}
	return c.doc
}

func (c *Ctx) headFixed(op string) bool {
	if c.doc == nil {
		return false
	}
	c.logger.Warn("head already built, ignoring change", "op", op)
	return true
}
