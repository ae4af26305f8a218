package vdom

import (
	"fmt"

	"github.com/vango-dev/hoist/pkg/style"
)

// EventScript binds a snippet of JavaScript to a DOM event. Pass it to a
// constructor or call VNode.On directly.
type EventScript struct {
	Event  string // "click", "submit", etc.
	Script string // Function body
}

// event creates an EventScript for the given DOM event.
func event(name, script string) EventScript {
	return EventScript{Event: name, Script: script}
}

// OnEvent binds script to an arbitrary DOM event.
func OnEvent(name, script string) EventScript { return event(name, script) }

// OnClick binds script to click events.
func OnClick(script string) EventScript { return event("click", script) }

// OnChange binds script to change events.
func OnChange(script string) EventScript { return event("change", script) }

// OnInput binds script to input events.
func OnInput(script string) EventScript { return event("input", script) }

// OnSubmit binds script to submit events.
func OnSubmit(script string) EventScript { return event("submit", script) }

// OnMouseEnter binds script to mouseenter events.
func OnMouseEnter(script string) EventScript { return event("mouseenter", script) }

// OnMouseLeave binds script to mouseleave events.
func OnMouseLeave(script string) EventScript { return event("mouseleave", script) }

// OnKeyDown binds script to keydown events.
func OnKeyDown(script string) EventScript { return event("keydown", script) }

// On binds script to event on this element and returns the element.
//
// Elements without an id get one derived from tag, event and script. The
// binding is stored on the node and only reaches a page when the tree is
// aggregated. Calling On again replaces the previous binding.
func (v *VNode) On(event, script string) *VNode {
	if v.ID == "" {
		v.ID = style.ElementID(v.Tag, event, script)
	}
	v.Script = listenerScript(v.ID, event, script)
	return v
}

// listenerScript renders an addEventListener registration for id.
func listenerScript(id, event, script string) string {
	return fmt.Sprintf("document.getElementById('%s').addEventListener('%s', function() { %s });",
		id, event, script)
}
