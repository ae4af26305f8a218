package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	herrors "github.com/vango-dev/hoist/internal/errors"
	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

func TestRenderEmptyElementKeepsSeparators(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.CreateElement("p"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p   ></p>" {
		t.Errorf("got %q, want %q", html, "<p   ></p>")
	}
}

func TestRenderStyledElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	rule := style.Pairs("color", "red")
	class := style.ClassName(rule)

	node := vdom.CreateElement("div", rule, vdom.CreateElement("p", "hi"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<div  class='" + class + "' ><p   >hi</p></div>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderSegments(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "attrs only",
			node: vdom.CreateElement("a", vdom.Href("/x"), vdom.Target("_blank")),
			want: "<a href='/x' target='_blank'  ></a>",
		},
		{
			name: "id only",
			node: vdom.CreateElement("section", vdom.ID("main")),
			want: "<section   id='main'></section>",
		},
		{
			name: "all segments",
			node: vdom.CreateElement("span", vdom.Role("note"), vdom.Class("a b"), vdom.ID("s")),
			want: "<span role='note' class='a b' id='s'></span>",
		},
		{
			name: "void element keeps closing tag",
			node: vdom.CreateElement("img", vdom.Src("a.png")),
			want: "<img src='a.png'  ></img>",
		},
		{
			name: "fragment",
			node: vdom.Fragment("a", vdom.CreateElement("b"), "c"),
			want: "a<b   ></b>c",
		},
	}

	renderer := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCompact(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Compact: true})
	rule := style.Pairs("margin", "0")

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"empty", vdom.CreateElement("p", "hi"), "<p>hi</p>"},
		{"void", vdom.CreateElement("img", vdom.Src("a.png")), "<img src='a.png'>"},
		{"class", vdom.CreateElement("div", rule), "<div class='" + style.ClassName(rule) + "'></div>"},
		{"id", vdom.CreateElement("div", vdom.ID("x")), "<div id='x'></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "  ") || strings.Contains(got, "class=''") {
				t.Errorf("compact output has stray whitespace or empty class: %q", got)
			}
		})
	}
}

func TestRenderVerbatimByDefault(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.CreateElement("p", vdom.TitleAttr("a<b"), "<em>x</em>")
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p title='a<b'  ><em>x</em></p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEscape(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Escape: true, Compact: true})

	node := vdom.CreateElement("p",
		vdom.TitleAttr("it's"),
		"<script>alert('xss')</script>",
		vdom.Raw("<br>"),
	)
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p title='it&#39;s'>&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;<br></p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.CreateElement("div", &vdom.VNode{Kind: vdom.VKind(42)})
	_, err := renderer.RenderToString(node)
	if err == nil {
		t.Fatal("expected error")
	}

	var he *herrors.HoistError
	if !errors.As(err, &he) || he.Code != herrors.CodeUnknownNodeKind {
		t.Errorf("expected %s, got %v", herrors.CodeUnknownNodeKind, err)
	}
}

func TestRenderToWriterMatchesString(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.CreateElement("ul",
		vdom.CreateElement("li", "one"),
		vdom.CreateElement("li", "two"),
	)

	s, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := renderer.RenderToWriter(&buf, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != s {
		t.Errorf("writer output %q differs from string output %q", buf.String(), s)
	}
}

func TestRenderNil(t *testing.T) {
	got, err := NewRenderer(RendererConfig{}).RenderToString(nil)
	if err != nil || got != "" {
		t.Errorf("got (%q, %v), want empty output", got, err)
	}
}
