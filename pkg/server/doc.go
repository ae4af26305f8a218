// Package server hosts hoist pages over HTTP.
//
// A page is a function from a request context to an element tree. The
// server resolves the render mode from the query string once per request,
// builds the document head, calls the page and renders the payload the
// mode asks for. The same route therefore serves the document, its
// stylesheet (?css=1) and its event script (?js=1).
//
//	srv := server.New(server.DefaultServerConfig())
//	srv.Page("/album", func(ctx *server.Ctx) (*vdom.VNode, error) {
//	    ctx.SetTitle("Album")
//	    return el.Div(el.Style("display", "grid"), cards...), nil
//	})
//	srv.Run(context.Background())
//
// The router is chi; request ids, structured request logging, panic
// recovery, OpenTelemetry spans and Prometheus metrics are installed from
// ServerConfig.
package server
