// Package js wraps goja objects in revocable proxies that record where new
// properties were assigned from.
package js

import (
	"errors"
	"fmt"
	"io"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/whosetit"
	"github.com/liuxd6825/whosetit/errext"
	"github.com/liuxd6825/whosetit/js/common"
)

// errRejected is how the target object refusing a write is passed back to
// the set trap, which reports it as a falsy result.
var errRejected = errors.New("write rejected by the target object")

// errNoScriptFrame is returned when a write came from Go code only, with no
// script on the call stack.
var errNoScriptFrame = errors.New("no script frame on the call stack")

// Options configure Wrap. The zero value is usable.
type Options struct {
	Config whosetit.Config
	Logger logrus.FieldLogger
}

// Handle is a revocable JS proxy over a target object.
type Handle struct {
	rt     *goja.Runtime
	target *goja.Object
	proxy  *goja.Object
	revoke goja.Callable
	core   *whosetit.Handle
	logger logrus.FieldLogger

	evalFilename string
	// records holds the script objects handed out for Locations, by index.
	records []*goja.Object

	reflect       goja.Value
	reflectHas    goja.Callable
	reflectSet    goja.Callable
	reflectDelete goja.Callable
}

// Wrap creates a revocable proxy over target, which must belong to rt. The
// proxy only traps property assignment.
func Wrap(rt *goja.Runtime, target *goja.Object, opts Options) (*Handle, error) {
	conf := whosetit.NewConfig().Apply(opts.Config)
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	h := &Handle{
		rt:           rt,
		target:       target,
		logger:       logger,
		evalFilename: conf.EvalFilename.String,
	}

	var err error
	if h.reflectHas, h.reflect, err = common.Builtin(rt, "Reflect", "has"); err != nil {
		return nil, err
	}
	if h.reflectSet, _, err = common.Builtin(rt, "Reflect", "set"); err != nil {
		return nil, err
	}
	if h.reflectDelete, _, err = common.Builtin(rt, "Reflect", "deleteProperty"); err != nil {
		return nil, err
	}
	revocable, proxyCtor, err := common.Builtin(rt, "Proxy", "revocable")
	if err != nil {
		return nil, err
	}

	handler := rt.NewObject()
	if err = handler.Set("set", h.trapSet); err != nil {
		return nil, err
	}
	res, err := revocable(proxyCtor, target, handler)
	if err != nil {
		return nil, err
	}
	pair := res.ToObject(rt)
	h.proxy = pair.Get("proxy").ToObject(rt)
	revoke, ok := goja.AssertFunction(pair.Get("revoke"))
	if !ok {
		return nil, errors.New("revocable proxy has no revoke function")
	}
	h.revoke = revoke

	h.core = whosetit.WrapWithOptions(&object{h: h}, whosetit.Options{
		Config:   conf,
		Logger:   logger,
		CallSite: h.callSite,
	})
	return h, nil
}

// Proxy returns the proxy object to hand out in place of the target.
func (h *Handle) Proxy() *goja.Object {
	return h.proxy
}

// Locations returns the live list of records.
func (h *Handle) Locations() *whosetit.Locations {
	return h.core.Locations()
}

// Revoked reports whether Revoke has been called.
func (h *Handle) Revoked() bool {
	return h.core.Revoked()
}

// Revoke revokes the proxy, so that every later operation on it throws a
// TypeError, and returns the target. Only the first call does anything.
func (h *Handle) Revoke() *goja.Object {
	if h.core.Revoked() {
		return h.target
	}
	if _, err := h.revoke(goja.Undefined()); err != nil {
		errext.Log(h.logger, logrus.WarnLevel, fmt.Errorf("revoking the proxy: %w", err))
	}
	h.core.Revoke()
	return h.target
}

func (h *Handle) trapSet(call goja.FunctionCall) goja.Value {
	key, value := call.Argument(1), call.Argument(2)

	if _, ok := key.(*goja.Symbol); ok {
		// Symbol keys have no name to record.
		ok, err := h.forward(key, value)
		if err != nil {
			common.Throw(h.rt, err)
		}
		return h.rt.ToValue(ok)
	}

	err := h.core.Proxy().Set(key.String(), value)
	switch {
	case err == nil:
		return h.rt.ToValue(true)
	case errors.Is(err, errRejected):
		return h.rt.ToValue(false)
	default:
		common.Throw(h.rt, err)
		return nil
	}
}

// forward performs the write on the target itself, ignoring the receiver.
func (h *Handle) forward(key, value goja.Value) (bool, error) {
	res, err := h.reflectSet(h.reflect, h.target, key, value)
	if err != nil {
		return false, err
	}
	return res.ToBoolean(), nil
}

// callSite returns the position of the innermost script frame, which is the
// statement doing the assignment.
func (h *Handle) callSite() (whosetit.CallSite, error) {
	var buf [8]goja.StackFrame
	frames := h.rt.CaptureCallStack(0, buf[:0])
	for i := range frames {
		f := &frames[i]
		if f.SrcName() == "<native>" {
			continue
		}
		pos := f.Position()
		name := pos.Filename
		if name == "" {
			name = h.evalFilename
		}
		return whosetit.CallSite{Filename: name, Line: pos.Line, Column: pos.Column}, nil
	}
	return whosetit.CallSite{}, errNoScriptFrame
}
