package js

import (
	"github.com/dop251/goja"

	"github.com/liuxd6825/whosetit/js/common"
)

// GlobalName is the name Register installs the wrap function under.
const GlobalName = "whoSetIt"

// Exports returns the handle as a script object with the properties proxy,
// locations (a live, read-only array of {property, filename, line, column})
// and revoke (a function returning the target).
func (h *Handle) Exports() *goja.Object {
	rt := h.rt
	o := rt.NewObject()
	_ = o.Set("proxy", h.proxy)
	_ = o.Set("locations", rt.NewDynamicArray(locationsArray{h: h}))
	_ = o.Set("revoke", func(goja.FunctionCall) goja.Value {
		return h.Revoke()
	})
	return o
}

// Register installs a global whoSetIt(obj) function in rt returning the
// exports of a new handle over obj.
func Register(rt *goja.Runtime, opts Options) error {
	return rt.Set(GlobalName, func(call goja.FunctionCall) goja.Value {
		target, ok := call.Argument(0).(*goja.Object)
		if !ok {
			panic(rt.NewTypeError("%s needs an object to wrap", GlobalName))
		}
		h, err := Wrap(rt, target, opts)
		if err != nil {
			common.Throw(rt, err)
		}
		return h.Exports()
	})
}
