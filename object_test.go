package whosetit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainObject(t *testing.T) {
	t.Parallel()

	proto := NewObject(nil)
	require.NoError(t, proto.Set("greeting", "hi"))

	o := NewObject(proto)
	assert.Same(t, proto, o.Prototype())
	assert.True(t, o.Has("greeting"))
	assert.False(t, o.HasOwn("greeting"))
	v, ok := o.Get("greeting")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	require.NoError(t, o.Set("b", 1))
	require.NoError(t, o.Set("a", 2))
	require.NoError(t, o.Set("b", 3))
	assert.Equal(t, []string{"b", "a"}, o.Keys())

	require.NoError(t, o.Delete("b"))
	require.NoError(t, o.Delete("missing"))
	assert.Equal(t, []string{"a"}, o.Keys())
	_, ok = o.Get("b")
	assert.False(t, ok)

	// Keys is a copy.
	keys := o.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, o.Keys())
}

func TestPlainObjectFreeze(t *testing.T) {
	t.Parallel()

	o := NewObject(nil)
	require.NoError(t, o.Set("a", 1))
	o.Freeze()
	assert.True(t, o.Frozen())

	require.ErrorIs(t, o.Set("a", 2), ErrFrozen)
	require.ErrorIs(t, o.Set("b", 2), ErrFrozen)
	require.ErrorIs(t, o.Delete("a"), ErrFrozen)
	v, _ := o.Get("a")
	assert.Equal(t, 1, v)
	assert.False(t, o.Has("b"))
}

func TestMap(t *testing.T) {
	t.Parallel()

	m := Map{"z": 1, "a": 2}
	assert.Equal(t, []string{"a", "z"}, m.Keys())
	assert.False(t, m.Has("b"))
	require.NoError(t, m.Set("b", 3))
	assert.True(t, m.Has("b"))
	require.NoError(t, m.Delete("z"))
	_, ok := m.Get("z")
	assert.False(t, ok)
}
