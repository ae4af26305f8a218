package vdom

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredAttribute is matched by every MissingAttrError.
var ErrMissingRequiredAttribute = errors.New("missing required attribute")

// MissingAttrError reports a tag constructor called without a required
// attribute value.
type MissingAttrError struct {
	Tag  string
	Attr string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("<%s> requires %q", e.Tag, e.Attr)
}

// Is lets errors.Is(err, ErrMissingRequiredAttribute) succeed.
func (e *MissingAttrError) Is(target error) bool {
	return target == ErrMissingRequiredAttribute
}
