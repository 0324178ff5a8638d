// Package common contains helpers for handing Go values and errors to the
// goja runtime.
package common

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// Throw a JS error; avoids re-wrapping GoErrors.
func Throw(rt *goja.Runtime, err error) {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		panic(ex)
	}
	panic(rt.NewGoError(err))
}

// Builtin returns the function at path (e.g. "Reflect", "has") starting from
// the global object of rt.
func Builtin(rt *goja.Runtime, path ...string) (goja.Callable, goja.Value, error) {
	var (
		this goja.Value = rt.GlobalObject()
		cur  goja.Value = this
	)
	for _, name := range path {
		if cur == nil || goja.IsUndefined(cur) || goja.IsNull(cur) {
			return nil, nil, fmt.Errorf("builtin %v is not available", path)
		}
		this = cur
		cur = cur.ToObject(rt).Get(name)
	}
	fn, ok := goja.AssertFunction(cur)
	if !ok {
		return nil, nil, fmt.Errorf("builtin %v is not a function", path)
	}
	return fn, this, nil
}

// FreezeObject replicates the JavaScript Object.freeze function, applied
// recursively to every object value.
func FreezeObject(rt *goja.Runtime, obj goja.Value) error {
	freeze, objCtor, err := Builtin(rt, "Object", "freeze")
	if err != nil {
		return err
	}
	return deepFreeze(freeze, objCtor, obj, make(map[*goja.Object]struct{}))
}

func deepFreeze(freeze goja.Callable, this, val goja.Value, seen map[*goja.Object]struct{}) error {
	o, ok := val.(*goja.Object)
	if !ok {
		return nil
	}
	if _, ok := seen[o]; ok {
		return nil
	}
	seen[o] = struct{}{}

	if _, err := freeze(this, o); err != nil {
		return err
	}
	for _, key := range o.Keys() {
		if err := deepFreeze(freeze, this, o.Get(key), seen); err != nil {
			return err
		}
	}
	return nil
}
