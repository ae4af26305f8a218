package render

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/vango-dev/hoist/internal/errors"
)

// Mode selects which payload a page request produces. Every page URL serves
// three payloads: the markup itself, and the stylesheet and script
// collected from it, requested with ?css=1 and ?js=1.
type Mode uint8

const (
	ModeDocument   Mode = iota // text/html
	ModeStylesheet             // text/css, requested with ?css
	ModeScript                 // text/javascript, requested with ?js
)

// Query parameters that select the side-channel payloads.
const (
	QueryStylesheet = "css"
	QueryScript     = "js"
)

// String returns the short name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDocument:
		return "html"
	case ModeStylesheet:
		return "css"
	case ModeScript:
		return "js"
	default:
		return "unknown"
	}
}

// ContentType returns the Content-Type header value for the mode.
func (m Mode) ContentType() string {
	switch m {
	case ModeStylesheet:
		return "text/css; charset=utf-8"
	case ModeScript:
		return "text/javascript; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// ModeFromQuery resolves the mode from query values. A non-empty css value
// wins over js; anything else is a document request.
func ModeFromQuery(q url.Values) Mode {
	if q.Get(QueryStylesheet) != "" {
		return ModeStylesheet
	}
	if q.Get(QueryScript) != "" {
		return ModeScript
	}
	return ModeDocument
}

// ModeFromRequest resolves the mode of an inbound request.
func ModeFromRequest(r *http.Request) Mode {
	if r == nil || r.URL == nil {
		return ModeDocument
	}
	return ModeFromQuery(r.URL.Query())
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html", "document":
		return ModeDocument, nil
	case "css", "stylesheet":
		return ModeStylesheet, nil
	case "js", "script", "javascript":
		return ModeScript, nil
	}
	return ModeDocument, errors.New(errors.CodeUnknownMode).
		WithDetail("mode " + s).
		WithSuggestion("Use one of: html, css, js")
}
