package js

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	rt := goja.New()
	require.NoError(t, Register(rt, Options{}))

	v, err := rt.RunScript("register.js", `var original = {foo: 1};
var w = whoSetIt(original);
var t = w.proxy;
t.foo = 2;
t.bar = 3;
var locs = w.locations, n1 = locs.length;
t.baz = 4;
var back = w.revoke();
var threw = false;
try { t.qux = 1; } catch (e) { threw = e instanceof TypeError; }
back.qux = 5;
JSON.stringify({
	n1: n1,
	n2: locs.length,
	first: locs[0].property,
	file: locs[1].filename,
	line: locs[1].line,
	stable: locs[0] === locs[0] && w.locations[1] === locs[1],
	same: back === original && w.revoke() === original,
	threw: threw,
	keys: Object.keys(original).join(","),
})`)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"n1": 1,
		"n2": 2,
		"first": "bar",
		"file": "register.js",
		"line": 7,
		"stable": true,
		"same": true,
		"threw": true,
		"keys": "foo,bar,baz,qux"
	}`, v.String())
}

func TestRegisterNeedsAnObject(t *testing.T) {
	t.Parallel()

	rt := goja.New()
	require.NoError(t, Register(rt, Options{}))

	v, err := rt.RunString(`
		var name = '';
		try { whoSetIt(1); } catch (e) { name = e.name; }
		name
	`)
	require.NoError(t, err)
	assert.Equal(t, "TypeError", v.String())
}
