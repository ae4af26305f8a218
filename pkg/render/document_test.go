package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/dop251/goja"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

func albumBody() *vdom.VNode {
	return vdom.CreateElement("div",
		style.Pairs("color", "red"),
		vdom.CreateElement("p", "hi"),
		vdom.CreateElement("button", "Play", vdom.OnClick("alert(1)")),
	)
}

func newTestDocument() *Document {
	return NewDocument(NewHead("/album", HeadConfig{Title: "Album"}))
}

func TestDocumentStylesheetMode(t *testing.T) {
	doc := newTestDocument()
	resp, err := doc.Render(albumBody(), ModeStylesheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	class := style.ClassName(style.Pairs("color", "red"))
	want := "." + class + " {\ncolor:red;\n}\n"
	if resp.Body != want {
		t.Errorf("got %q, want %q", resp.Body, want)
	}
	if resp.ContentType != "text/css; charset=utf-8" {
		t.Errorf("content type %q", resp.ContentType)
	}
	if strings.Contains(resp.Body, "<") {
		t.Errorf("stylesheet contains markup: %q", resp.Body)
	}
}

func TestDocumentScriptMode(t *testing.T) {
	doc := newTestDocument()
	body := albumBody()
	resp, err := doc.Render(body, ModeScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	button := body.Children[2]
	binding := "document.getElementById('" + button.ID + "').addEventListener('click', function() { alert(1) });"
	if !strings.Contains(resp.Body, binding) {
		t.Errorf("script payload missing binding:\n%s", resp.Body)
	}
	if !strings.HasPrefix(resp.Body, "document.addEventListener('DOMContentLoaded', function() {") {
		t.Errorf("script payload not wrapped: %q", resp.Body)
	}
	if strings.Contains(resp.Body, "<p") {
		t.Errorf("script payload contains markup: %q", resp.Body)
	}
	if resp.ContentType != "text/javascript; charset=utf-8" {
		t.Errorf("content type %q", resp.ContentType)
	}

	if _, err := goja.Compile("page.js", resp.Body, false); err != nil {
		t.Errorf("script payload does not compile: %v\n%s", err, resp.Body)
	}
}

func TestDocumentEmptyScriptCompiles(t *testing.T) {
	doc := newTestDocument()
	resp, err := doc.Render(vdom.CreateElement("p"), ModeScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := goja.Compile("empty.js", resp.Body, true); err != nil {
		t.Errorf("empty payload does not compile: %v", err)
	}
}

func TestDocumentMarkup(t *testing.T) {
	doc := newTestDocument()
	resp, err := doc.Render(albumBody(), ModeDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(resp.Body, `<!DOCTYPE html><html lang="en"><head>`) {
		t.Errorf("unexpected prefix: %q", resp.Body)
	}
	if !strings.HasSuffix(resp.Body, "</div></body></html>") {
		t.Errorf("unexpected suffix: %q", resp.Body)
	}
	if strings.Count(resp.Body, "<head>") != 1 || strings.Count(resp.Body, "<body>") != 1 {
		t.Errorf("expected exactly one head and body: %q", resp.Body)
	}

	root, err := html.Parse(strings.NewReader(resp.Body))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	counts := map[atom.Atom]int{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.DataAtom]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if counts[atom.Head] != 1 || counts[atom.Body] != 1 {
		t.Errorf("parsed head=%d body=%d", counts[atom.Head], counts[atom.Body])
	}
	if counts[atom.Div] != 1 || counts[atom.P] != 1 || counts[atom.Button] != 1 {
		t.Errorf("body content lost: %v", counts)
	}
}

func TestDocumentBodyRootNotWrapped(t *testing.T) {
	doc := NewDocument(NewHead("/", HeadConfig{}), WithRenderer(NewRenderer(RendererConfig{Compact: true})))
	body := vdom.CreateElement("body", vdom.CreateElement("p", "x"))

	resp, err := doc.Render(body, ModeDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(resp.Body, "<body") != 1 {
		t.Errorf("body nested: %q", resp.Body)
	}
	if !strings.HasSuffix(resp.Body, "</head><body><p>x</p></body></html>") {
		t.Errorf("unexpected markup: %q", resp.Body)
	}
}

func TestDocumentAggregatesOnce(t *testing.T) {
	doc := newTestDocument()
	body := albumBody()

	doc.Aggregate(body)
	if _, err := doc.Render(body, ModeScript); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(doc.Scripts()); got != 1 {
		t.Errorf("scripts registered %d times, want 1", got)
	}
	if got := len(doc.Styles()); got != 1 {
		t.Errorf("styles registered %d, want 1", got)
	}
}

func TestDocumentDeduplicatesStyles(t *testing.T) {
	doc := newTestDocument()
	rule := style.Pairs("padding", "4px")
	body := vdom.CreateElement("ul",
		vdom.CreateElement("li", rule, "a"),
		vdom.CreateElement("li", rule, "b"),
		vdom.CreateElement("li", vdom.CreateElement("span", rule)),
	)

	resp, err := doc.Render(body, ModeStylesheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(resp.Body, "."+style.ClassName(rule)+" {"); got != 1 {
		t.Errorf("class emitted %d times:\n%s", got, resp.Body)
	}
}

func TestDocumentPreregistered(t *testing.T) {
	doc := newTestDocument()
	doc.AppendScript("console.log('ready');")
	doc.RegisterStyle("ohost", "display:none;\n")

	js, err := doc.Render(vdom.CreateElement("p"), ModeScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(js.Body, "console.log('ready');") {
		t.Errorf("preregistered script missing: %q", js.Body)
	}
	if !strings.Contains(doc.Stylesheet(), ".ohost {\ndisplay:none;\n}\n") {
		t.Errorf("preregistered style missing: %q", doc.Stylesheet())
	}
}

func TestDocumentDeterministic(t *testing.T) {
	render := func(mode Mode) string {
		resp, err := newTestDocument().Render(albumBody(), mode)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return resp.Body
	}

	for _, mode := range []Mode{ModeDocument, ModeStylesheet, ModeScript} {
		if a, b := render(mode), render(mode); a != b {
			t.Errorf("%v output differs between identical builds:\n%s\n%s", mode, a, b)
		}
	}
}

func TestDocumentValidationError(t *testing.T) {
	bad := vdom.CreateElement("div",
		vdom.CreateElement("img", vdom.RequiredAttr("img", "src", "")),
	)

	for _, mode := range []Mode{ModeDocument, ModeStylesheet, ModeScript} {
		_, err := newTestDocument().Render(bad, mode)
		if !errors.Is(err, vdom.ErrMissingRequiredAttribute) {
			t.Errorf("%v: expected missing attribute error, got %v", mode, err)
		}
	}
}

func TestDocumentUnknownMode(t *testing.T) {
	if _, err := newTestDocument().Render(vdom.CreateElement("p"), Mode(9)); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestWithLang(t *testing.T) {
	tests := map[string]string{
		"":      "en",
		"fr":    "fr",
		"en-us": "en-US",
		"??":    "??",
	}
	for in, want := range tests {
		doc := NewDocument(nil, WithLang(in))
		if doc.Lang() != want {
			t.Errorf("WithLang(%q) = %q, want %q", in, doc.Lang(), want)
		}
	}
}
