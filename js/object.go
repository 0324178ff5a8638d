package js

import (
	"github.com/dop251/goja"

	"github.com/liuxd6825/whosetit"
)

// object presents the wrapped goja object to the core handle. Checks and
// writes go through Reflect so they keep the semantics of the in operator
// and of a plain assignment. Exceptions raised by the target (for instance
// by its own proxy traps) are panicked with, which rethrows them in the
// script.
type object struct {
	h *Handle
}

var _ whosetit.Object = (*object)(nil)

func (o *object) Get(property string) (any, bool) {
	v := o.h.target.Get(property)
	if v == nil {
		return nil, false
	}
	return v, true
}

func (o *object) Has(property string) bool {
	res, err := o.h.reflectHas(o.h.reflect, o.h.target, o.h.rt.ToValue(property))
	if err != nil {
		panic(err)
	}
	return res.ToBoolean()
}

func (o *object) Set(property string, value any) error {
	ok, err := o.h.forward(o.h.rt.ToValue(property), o.h.rt.ToValue(value))
	if err != nil {
		return err
	}
	if !ok {
		return errRejected
	}
	return nil
}

func (o *object) Delete(property string) error {
	res, err := o.h.reflectDelete(o.h.reflect, o.h.target, o.h.rt.ToValue(property))
	if err != nil {
		return err
	}
	if !res.ToBoolean() {
		return errRejected
	}
	return nil
}

func (o *object) Keys() []string {
	return o.h.target.Keys()
}

var _ goja.DynamicArray = locationsArray{}

// locationsArray exposes the records of a handle to scripts as a read-only
// array that keeps growing. Reading an index twice gives the same object.
type locationsArray struct {
	h *Handle
}

func (a locationsArray) Len() int {
	return a.h.Locations().Len()
}

func (a locationsArray) Get(idx int) goja.Value {
	if idx < 0 || idx >= a.Len() {
		return goja.Undefined()
	}
	for len(a.h.records) <= idx {
		loc := a.h.Locations().At(len(a.h.records))
		rec := a.h.rt.NewObject()
		_ = rec.Set("property", loc.Property)
		_ = rec.Set("filename", loc.Filename)
		_ = rec.Set("line", loc.Line)
		_ = rec.Set("column", loc.Column)
		a.h.records = append(a.h.records, rec)
	}
	return a.h.records[idx]
}

func (a locationsArray) Set(int, goja.Value) bool {
	return false
}

func (a locationsArray) SetLen(int) bool {
	return false
}
