package server

import "errors"

// ErrNotFound is returned by a page to answer 404.
var ErrNotFound = errors.New("server: not found")
