// Package render turns element trees into the three payloads of a page.
//
// A page is served from one URL in three modes. The default mode returns
// the HTML document; ?css=1 returns the stylesheet hoisted from inline
// styles in the tree; ?js=1 returns the event bindings. The document's head
// links the other two modes back to the same URL, so a handler only has to
// build its tree and call Document.Render with the request's mode.
//
// # Basic Usage
//
//	head := render.HeadFromRequest(r, render.HeadConfig{Title: "Album"})
//	doc := render.NewDocument(head, render.WithLang("en"))
//	resp, err := doc.Render(body, render.ModeFromRequest(r))
//	if err != nil {
//	    // construction errors such as missing required attributes
//	}
//	resp.Write(w)
//
// # Markup Shape
//
// Elements render as <tag {attrs} {class} {id}>children</tag> with
// single-quoted attribute values. By default the separator spaces are kept
// even when a segment is empty, so an empty paragraph is "<p   ></p>".
// RendererConfig.Compact collapses empty segments and omits closing tags
// of void elements. Text is written verbatim unless RendererConfig.Escape
// is set.
package render
