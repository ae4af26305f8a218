// Package el is the markup DSL: one constructor per HTML tag plus the
// attribute, event and style helpers from pkg/vdom and pkg/style.
//
// Constructors take the same variadic arguments as vdom.CreateElement.
// Tags with required attributes take them as leading parameters; an empty
// value records a MissingRequiredAttribute error on the node, reported
// when the tree is validated or rendered.
//
// Typical usage:
//
//	import . "github.com/vango-dev/hoist/el"
//
//	body := Div(Style("display", "flex"),
//	    Img("/cover.png", Alt("cover")),
//	    Button("Play").On("click", "player.play()"),
//	)
package el
