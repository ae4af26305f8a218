package vdom

import (
	"go.uber.org/multierr"

	"github.com/vango-dev/hoist/internal/errors"
)

// Validate walks the tree and joins every error recorded on its nodes.
// Structured errors are annotated with the node's path in the tree.
// It returns nil for a clean tree.
func Validate(root *VNode) error {
	var result error
	Walk(root, func(node *VNode, path string) bool {
		for _, err := range multierr.Errors(node.Err) {
			result = multierr.Append(result, locate(err, path))
		}
		return true
	})
	return result
}

// locate returns err with path attached when it is a HoistError without one.
func locate(err error, path string) error {
	he, ok := err.(*errors.HoistError)
	if !ok || he.Path != "" {
		return err
	}
	located := *he
	located.Path = path
	return &located
}
