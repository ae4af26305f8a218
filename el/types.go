package el

import (
	"github.com/vango-dev/hoist/pkg/style"
	"github.com/vango-dev/hoist/pkg/vdom"
)

// Type aliases for the primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Attr = vdom.Attr
type EventScript = vdom.EventScript
type Rule = style.Rule
type Decl = style.Decl
