// Package sandbox evaluates scripts in isolated goja runtimes, the way code
// under observation is usually run: through eval, or in a fresh context with
// or without a file name.
package sandbox

import (
	"errors"
	"fmt"
	"io"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/liuxd6825/whosetit/internal/fsext"
)

// DefaultFilename names code run in a context without a file name.
const DefaultFilename = "evalmachine.<anonymous>"

// ErrScriptNotFound is returned by RunFile for a path that doesn't exist.
var ErrScriptNotFound = errors.New("script not found")

// Options configure a new Context.
type Options struct {
	// Logger receives the output of the console object.
	Logger logrus.FieldLogger
	// FS is where RunFile reads scripts from, the OS filesystem if nil. It is
	// only ever read.
	FS afero.Fs
	// Globals are set on the global object before anything runs.
	Globals map[string]interface{}
}

// Context is a goja runtime of its own. It shares nothing with other
// contexts, so objects from one can't be used in another.
type Context struct {
	rt     *goja.Runtime
	fs     afero.Fs
	logger logrus.FieldLogger
}

// RunOptions are per-run settings.
type RunOptions struct {
	// Filename is reported in stack frames; DefaultFilename if empty.
	Filename string
}

// NewContext returns a fresh context with a console and opts.Globals.
func NewContext(opts Options) (*Context, error) {
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	fs := opts.FS
	if fs == nil {
		fs = fsext.NewOsFs()
	}

	rt := goja.New()
	rt.SetFieldNameMapper(goja.UncapFieldNameMapper())
	if err := rt.Set("console", newConsole(logger)); err != nil {
		return nil, err
	}

	c := &Context{rt: rt, fs: fsext.NewReadOnlyFs(fs), logger: logger}
	for name, v := range opts.Globals {
		if err := c.Set(name, v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Runtime returns the runtime of the context, for creating objects in it.
func (c *Context) Runtime() *goja.Runtime {
	return c.rt
}

// Set assigns a global variable.
func (c *Context) Set(name string, value interface{}) error {
	return c.rt.Set(name, value)
}

// Run runs code in the global scope of the context.
func (c *Context) Run(code string, opts RunOptions) (goja.Value, error) {
	name := opts.Filename
	if name == "" {
		name = DefaultFilename
	}
	c.logger.WithField("filename", name).Debug("Running script")
	return c.rt.RunScript(name, code)
}

// RunFile reads filename from the context's filesystem and runs it under
// that name.
func (c *Context) RunFile(filename string) (goja.Value, error) {
	ok, err := fsext.Exists(c.fs, filename)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, filename)
	}
	src, err := fsext.ReadFile(c.fs, filename)
	if err != nil {
		return nil, err
	}
	return c.Run(string(src), RunOptions{Filename: filename})
}

// Eval runs code through a direct eval, in a function scope where target is
// bound to the name "target".
func Eval(rt *goja.Runtime, target goja.Value, code string) error {
	v, err := rt.RunString(`(function (target, code) { eval(code); })`)
	if err != nil {
		return err
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		panic("eval wrapper is not a function")
	}
	_, err = fn(goja.Undefined(), target, rt.ToValue(code))
	return err
}
