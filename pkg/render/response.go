package render

import (
	"io"
	"net/http"
	"strconv"
)

// Response is a rendered payload ready to be written to a client.
type Response struct {
	Mode        Mode
	ContentType string
	Body        string
}

func newResponse(mode Mode, body string) Response {
	return Response{Mode: mode, ContentType: mode.ContentType(), Body: body}
}

// Write sends the response with status 200.
func (r Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	h.Set("Content-Type", r.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(r.Body)))
	w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(w, r.Body)
	return err
}
