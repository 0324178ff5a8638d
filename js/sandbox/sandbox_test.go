package sandbox

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/liuxd6825/whosetit/internal/fsext"
	"github.com/liuxd6825/whosetit/internal/testutils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestContextIsIsolated(t *testing.T) {
	t.Parallel()

	a, err := NewContext(Options{Globals: map[string]interface{}{"shared": 1}})
	require.NoError(t, err)
	b, err := NewContext(Options{})
	require.NoError(t, err)

	_, err = a.Run("var leaked = shared + 1;", RunOptions{})
	require.NoError(t, err)

	v, err := b.Run("typeof leaked + ' ' + typeof shared", RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "undefined undefined", v.String())

	v, err = a.Run("leaked", RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ToInteger())
}

func TestRunReportsFilename(t *testing.T) {
	t.Parallel()

	ctx, err := NewContext(Options{})
	require.NoError(t, err)

	_, err = ctx.Run("\nthrow new Error('boom');", RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), DefaultFilename+":2")

	_, err = ctx.Run("throw new Error('boom');", RunOptions{Filename: "named.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "named.js:1")
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	fs := fsext.NewMemMapFs()
	require.NoError(t, fsext.WriteFile(fs, "/scripts/a.js", []byte("var x = 40 + 2; x"), 0o644))

	ctx, err := NewContext(Options{FS: fs, Logger: testutils.NewLogger(t)})
	require.NoError(t, err)

	v, err := ctx.RunFile("/scripts/a.js")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.ToInteger())

	_, err = ctx.RunFile("/scripts/missing.js")
	require.ErrorIs(t, err, ErrScriptNotFound)
	assert.Contains(t, err.Error(), "/scripts/missing.js")

	// Scripts can't write to the filesystem they were loaded from.
	require.Error(t, fsext.WriteFile(ctx.fs, "/scripts/b.js", []byte("1"), 0o644))
}

func TestRunLogsFilename(t *testing.T) {
	t.Parallel()

	logger, hook := testutils.NewHookedLogger()
	ctx, err := NewContext(Options{Logger: logger})
	require.NoError(t, err)

	_, err = ctx.Run(`console.log("hi")`, RunOptions{Filename: "hi.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Running script", "hi"}, hook.Lines())
	assert.Empty(t, hook.Drain())
}

func TestEval(t *testing.T) {
	t.Parallel()

	rt := goja.New()
	target := rt.NewObject()
	require.NoError(t, Eval(rt, target, "target.bar = 42;"))
	assert.Equal(t, int64(42), target.Get("bar").ToInteger())

	require.Error(t, Eval(rt, target, "target.bar = ;"))
	require.Error(t, Eval(rt, target, "throw new Error('nope')"))
}

func TestConsole(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx, err := NewContext(Options{Logger: logger})
	require.NoError(t, err)

	tests := []struct {
		code  string
		level logrus.Level
		msg   string
	}{
		{code: `console.log("a", 1)`, level: logrus.InfoLevel, msg: "a 1"},
		{code: `console.debug({b: 2})`, level: logrus.DebugLevel, msg: `{"b":2}`},
		{code: `console.warn(function () {})`, level: logrus.WarnLevel, msg: functionLog},
		{code: `console.error(new Error("c"))`, level: logrus.ErrorLevel, msg: "Error: c"},
		{code: `console.info("d")`, level: logrus.InfoLevel, msg: "d"},
	}
	for _, tc := range tests {
		_, err := ctx.Run(tc.code, RunOptions{})
		require.NoError(t, err, tc.code)
		entry := hook.LastEntry()
		require.NotNil(t, entry, tc.code)
		assert.Equal(t, tc.level, entry.Level, tc.code)
		assert.Equal(t, tc.msg, entry.Message, tc.code)
		assert.Equal(t, "console", entry.Data["source"], tc.code)
	}
}
