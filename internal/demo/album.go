// Package demo contains the album example page served by `hoist serve`.
package demo

import (
	"github.com/vango-dev/hoist/el"
	"github.com/vango-dev/hoist/pkg/render"
	"github.com/vango-dev/hoist/pkg/server"
)

const (
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.2.2/dist/css/bootstrap.min.css"
	bootstrapJS  = "https://cdn.jsdelivr.net/npm/bootstrap@5.2.2/dist/js/bootstrap.bundle.min.js"
	jqueryJS     = "https://code.jquery.com/jquery-3.6.1.min.js"
)

// CardCount is the number of cards in the album grid.
const CardCount = 9

type menuItem struct {
	label string
	href  string
}

var menu = []menuItem{
	{"Home", "/"},
	{"About", "/about"},
	{"Contact", "/contact"},
	{"Blog", "/blog"},
}

// Head returns the head configuration shared by the demo pages.
func Head() render.HeadConfig {
	return render.HeadConfig{
		Title:       "Album example",
		StyleSheets: []string{bootstrapCSS},
		Scripts:     []string{jqueryJS, bootstrapJS},
		Meta:        [][]el.Attr{{el.Name("description"), el.Custom("content", "hoist album example")}},
	}
}

// Register mounts the demo pages on s.
func Register(s *server.Server) {
	s.Page("/", Album)
}

// Album builds the album page. The search form submits back to it; the
// query is not echoed into the markup.
func Album(ctx *server.Ctx) (*el.VNode, error) {
	ctx.SetTitle("Album example")
	return Page(), nil
}

// Page returns the album page body.
func Page() *el.VNode {
	return el.Body(el.ID("body_id"),
		header(),
		el.Main(hero(), album()),
		footer(),
	)
}

func header() *el.VNode {
	items := make([]*el.VNode, 0, len(menu))
	for _, m := range menu {
		items = append(items, el.Li(el.Class("nav-item"),
			el.A(m.href, el.Class("nav-link", "px-2", "text-light"), m.label),
		))
	}

	return el.Header(el.Class("p-3", "text-bg-dark"),
		el.Div(el.Class("container"),
			el.Div(el.Class("d-flex", "flex-wrap", "align-items-center", "justify-content-center", "justify-content-lg-start"),
				el.Ul(el.Class("nav", "col-12", "col-lg-auto", "me-lg-auto", "mb-2", "justify-content-center", "mb-md-0"), items),
				el.Form("GET", "/", el.Class("col-12", "col-lg-auto", "mb-3", "mb-lg-0"), el.Role("search"),
					el.Input("search", "search", el.ID("search"),
						el.Class("form-control", "form-control-dark", "text-bg-dark"),
						el.Placeholder("Search..."),
					),
				),
				el.Div(el.Class("text-end"),
					el.Button("Login", el.Class("btn", "btn-outline-light", "me-2"), el.OnClick("alert('Login')")),
					el.Button("Sign-up", el.Class("btn", "btn-warning")),
				),
			),
		),
	)
}

func hero() *el.VNode {
	return el.Section(el.Class("py-5", "text-center", "container"),
		el.Div(el.Class("row", "py-lg-5"),
			el.Div(el.Class("col-lg-6", "col-md-8", "mx-auto"),
				el.H1(el.Class("fw-light"), "Album example"),
				el.P(el.Class("lead", "text-muted"),
					"Something short and leading about the collection below, its contents, the creator, etc. "+
						"Make it short and sweet, but not too short so folks don't simply skip over it entirely."),
				el.P(
					el.A("#", el.Class("btn", "btn-primary", "my-2"), "Main call to action"),
					el.A("#", el.Class("btn", "btn-secondary", "my-2"), "Secondary action"),
				),
			),
		),
	)
}

// card is rebuilt per column; every copy hoists the same rules into the
// same classes.
func card() *el.VNode {
	return el.Div(el.Class("card", "shadow-sm"), el.Style("border-radius", "0.5rem"),
		el.Img("https://picsum.photos/300/150", el.Class("card-img-top"), el.Alt("thumbnail")),
		el.Div(el.Class("card-body"),
			el.P(el.Class("card-text"),
				"Some quick example text to build on the card title and make up the bulk of the card content."),
			el.Div(el.Class("d-flex", "justify-content-between", "align-items-center"),
				el.Div(el.Class("btn-group"),
					el.Button("View", el.Class("btn", "btn-sm", "btn-outline-secondary")),
					el.Button("Edit", el.Class("btn", "btn-sm", "btn-outline-secondary")),
				),
				el.Small(el.Class("text-muted"), el.Style("font_style", "italic"), "9 mins"),
			),
		),
	)
}

func album() *el.VNode {
	cols := make([]*el.VNode, 0, CardCount)
	for i := 0; i < CardCount; i++ {
		cols = append(cols, el.Div(el.Class("col"), card()))
	}

	return el.Div(el.Class("album", "py-5", "bg-light"),
		el.Div(el.Class("container"),
			el.Div(el.Class("row", "row-cols-1", "row-cols-sm-2", "row-cols-md-3", "g-4"), cols),
		),
	)
}

func footer() *el.VNode {
	return el.Footer(el.Class("text-muted", "py-5"),
		el.Div(el.Class("container"),
			el.P(el.Class("float-end", "mb-1"), el.A("#", "Back to top")),
			el.P(el.Class("mb-1"),
				el.Raw("Album example is &copy; Bootstrap, but please download and customize it for yourself!")),
			el.P(el.Class("mb-0"), "New to Bootstrap? ",
				el.A("https://getbootstrap.com/", "Visit the homepage")),
		),
	)
}
