package demo

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/hoist/pkg/render"
	"github.com/vango-dev/hoist/pkg/server"
	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

func newServer() *server.Server {
	cfg := server.DefaultServerConfig()
	cfg.Head = Head()
	s := server.New(cfg)
	Register(s)
	return s
}

func get(t *testing.T, s http.Handler, target string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d", target, rec.Code)
	}
	return rec.Body.String()
}

func TestAlbumDocument(t *testing.T) {
	body := get(t, newServer(), "/")

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var cards, bodies int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "body":
				bodies++
			case "img":
				cards++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if bodies != 1 {
		t.Errorf("got %d body elements, want 1", bodies)
	}
	if cards != CardCount {
		t.Errorf("got %d cards, want %d", cards, CardCount)
	}
	for _, want := range []string{
		"<title>Album example</title>",
		bootstrapCSS,
		`href="/?css=1"`,
		`src="/?js=1"`,
		"id='body_id'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestAlbumStylesheetDeduplicated(t *testing.T) {
	css := get(t, newServer(), "/?css=1")

	radius := style.ClassName(style.Pairs("border-radius", "0.5rem"))
	italic := style.ClassName(style.Pairs("font-style", "italic"))
	for _, class := range []string{radius, italic} {
		if n := strings.Count(css, "."+class+" {"); n != 1 {
			t.Errorf("class %s emitted %d times, want 1", class, n)
		}
	}
	if strings.Count(css, "{") != 2 {
		t.Errorf("unexpected stylesheet:\n%s", css)
	}
}

func TestAlbumScript(t *testing.T) {
	js := get(t, newServer(), "/?js=1")
	if !strings.HasPrefix(js, "document.addEventListener('DOMContentLoaded', function() {\n") {
		t.Errorf("missing DOMContentLoaded wrapper:\n%s", js)
	}
	if strings.Count(js, "addEventListener('click'") != 1 {
		t.Errorf("expected one click binding:\n%s", js)
	}
	if !strings.Contains(js, "alert('Login')") {
		t.Errorf("login handler missing:\n%s", js)
	}
}

func TestAlbumSearchNotReflected(t *testing.T) {
	const payload = "</title><script>alert(1)</script>"
	target := "/?search=" + url.QueryEscape(payload)

	for _, escape := range []bool{false, true} {
		cfg := server.DefaultServerConfig()
		cfg.Head = Head()
		cfg.Render.Escape = escape
		s := server.New(cfg)
		Register(s)

		body := get(t, s, target)
		if strings.Contains(body, "<script>alert(1)</script>") {
			t.Errorf("escape=%v: search query reflected into markup", escape)
		}
		if !strings.Contains(body, "<title>Album example</title>") {
			t.Errorf("escape=%v: unexpected title", escape)
		}
	}
}

func TestPageCollect(t *testing.T) {
	assets := vdom.Collect(Page())
	if len(assets.Styles) != 2 {
		t.Errorf("got %d styles, want 2", len(assets.Styles))
	}
	if len(assets.Scripts) != 1 {
		t.Errorf("got %d scripts, want 1", len(assets.Scripts))
	}

	doc := render.NewDocument(render.NewHead("/", Head()))
	resp, err := doc.Render(Page(), render.ModeDocument)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := strings.Count(resp.Body, "<body"); n != 1 {
		t.Errorf("got %d body tags, want 1", n)
	}
}
