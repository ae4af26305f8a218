package el

import "github.com/vango-dev/hoist/pkg/vdom"

func On(event, script string) EventScript {
	return vdom.OnEvent(event, script)
}
func OnClick(script string) EventScript {
	return vdom.OnClick(script)
}
func OnChange(script string) EventScript {
	return vdom.OnChange(script)
}
func OnInput(script string) EventScript {
	return vdom.OnInput(script)
}
func OnSubmit(script string) EventScript {
	return vdom.OnSubmit(script)
}
func OnMouseEnter(script string) EventScript {
	return vdom.OnMouseEnter(script)
}
func OnMouseLeave(script string) EventScript {
	return vdom.OnMouseLeave(script)
}
func OnKeyDown(script string) EventScript {
	return vdom.OnKeyDown(script)
}
