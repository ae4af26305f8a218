package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

func albumPage(ctx *Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("Album")
	return vdom.CreateElement("div",
		style.Pairs("display", "grid"),
		vdom.CreateElement("button", "Play", vdom.OnClick("play()")),
	), nil
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageServesThreeModes(t *testing.T) {
	srv := New(nil)
	srv.Page("/album", albumPage)

	html := get(t, srv, "/album")
	if html.Code != http.StatusOK {
		t.Fatalf("html status %d: %s", html.Code, html.Body.String())
	}
	if ct := html.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("html content type %q", ct)
	}
	body := html.Body.String()
	for _, want := range []string{
		"<title>Album</title>",
		`href="/album?css=1"`,
		`src="/album?js=1"`,
		"class='" + style.ClassName(style.Pairs("display", "grid")) + "'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %q:\n%s", want, body)
		}
	}

	css := get(t, srv, "/album?css=1")
	if ct := css.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("css content type %q", ct)
	}
	if !strings.Contains(css.Body.String(), "display:grid;") || strings.Contains(css.Body.String(), "<") {
		t.Errorf("unexpected stylesheet: %q", css.Body.String())
	}

	js := get(t, srv, "/album?js=1")
	if ct := js.Header().Get("Content-Type"); ct != "text/javascript; charset=utf-8" {
		t.Errorf("js content type %q", ct)
	}
	if !strings.Contains(js.Body.String(), "addEventListener('click', function() { play() });") {
		t.Errorf("unexpected script: %q", js.Body.String())
	}
}

func TestPageErrors(t *testing.T) {
	srv := New(nil)
	srv.Page("/missing", func(*Ctx) (*vdom.VNode, error) { return nil, ErrNotFound })
	srv.Page("/broken", func(*Ctx) (*vdom.VNode, error) { return nil, errors.New("db down") })
	srv.Page("/invalid", func(*Ctx) (*vdom.VNode, error) {
		return vdom.CreateElement("img", vdom.RequiredAttr("img", "src", "")), nil
	})

	if rec := get(t, srv, "/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("/missing status %d", rec.Code)
	}
	if rec := get(t, srv, "/broken"); rec.Code != http.StatusInternalServerError {
		t.Errorf("/broken status %d", rec.Code)
	}
	rec := get(t, srv, "/invalid?css=1")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("/invalid status %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "img") {
		t.Errorf("error details leaked: %q", rec.Body.String())
	}
}

func TestCtxHeadSetters(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Head.StyleSheets = []string{"/static/base.css"}
	srv := New(cfg)
	srv.Page("/p/{id}", func(ctx *Ctx) (*vdom.VNode, error) {
		ctx.SetTitle("Item " + ctx.Param("id"))
		ctx.SetLang("de")
		ctx.AddStyleSheet("/static/item.css")
		ctx.AddMeta(vdom.Name("description"), vdom.Custom("content", "item"))
		ctx.Document().AppendScript("init();")
		ctx.SetTitle("ignored")
		return vdom.CreateElement("p", ctx.Query("q")), nil
	})

	body := get(t, srv, "/p/42?q=hello").Body.String()
	for _, want := range []string{
		`<html lang="de">`,
		"<title>Item 42</title>",
		`href="/static/base.css"`,
		`href="/static/item.css"`,
		"<meta name='description' content='item'>",
		">hello</p>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %q:\n%s", want, body)
		}
	}

	js := get(t, srv, "/p/42?js=1").Body.String()
	if !strings.Contains(js, "init();") {
		t.Errorf("preregistered script missing: %q", js)
	}

	// The shared head config is not modified by pages.
	if len(cfg.Head.StyleSheets) != 1 {
		t.Errorf("server head config modified: %v", cfg.Head.StyleSheets)
	}
}

func TestEscapeCoversHead(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Render.Escape = true
	srv := New(cfg)
	srv.Page("/", func(ctx *Ctx) (*vdom.VNode, error) {
		ctx.SetTitle(ctx.Query("q"))
		return vdom.CreateElement("p", ctx.Query("q")), nil
	})

	body := get(t, srv, "/?q="+url.QueryEscape("<script>alert(1)</script>")).Body.String()
	if strings.Contains(body, "<script>alert(1)") {
		t.Errorf("query reflected unescaped:\n%s", body)
	}
	if !strings.Contains(body, "<title>&lt;script&gt;alert(1)&lt;/script&gt;</title>") {
		t.Errorf("title not escaped:\n%s", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Metrics = true
	cfg.MetricsRegistry = prometheus.NewRegistry()
	srv := New(cfg)
	srv.Page("/album", albumPage)

	get(t, srv, "/album")
	get(t, srv, "/album?css=1")

	rec := get(t, srv, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status %d", rec.Code)
	}
	out := rec.Body.String()
	for _, want := range []string{
		`hoist_requests_total{mode="css",status="200"} 1`,
		`hoist_requests_total{mode="html",status="200"} 1`,
		"hoist_hoisted_styles_count 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestHealthzAndRequestID(t *testing.T) {
	srv := New(nil)
	rec := get(t, srv, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultServerConfig()
	cfg.StaticDir = dir
	srv := New(cfg)

	rec := get(t, srv, "/static/app.css")
	if rec.Code != http.StatusOK || rec.Body.String() != "body{}" {
		t.Errorf("static = %d %q", rec.Code, rec.Body.String())
	}
}

func TestUseMiddleware(t *testing.T) {
	srv := New(nil)
	srv.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "1")
			next.ServeHTTP(w, r)
		})
	})
	srv.Page("/", albumPage)

	if got := get(t, srv, "/").Header().Get("X-Test"); got != "1" {
		t.Errorf("middleware not applied, X-Test=%q", got)
	}
}

func TestServeShutdown(t *testing.T) {
	srv := New(nil)
	srv.Page("/", albumPage)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/?css=1"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
