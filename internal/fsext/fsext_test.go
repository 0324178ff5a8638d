package fsext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheOnReadFs(t *testing.T) {
	t.Parallel()

	base := NewMemMapFs()
	require.NoError(t, WriteFile(base, "/src/a.go", []byte("package a\n"), 0o644))

	cached := NewCacheOnReadFs(base, 0)
	data, err := ReadFile(cached, "/src/a.go")
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))

	ok, err := Exists(cached, "/src/missing.go")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadOnlyFs(t *testing.T) {
	t.Parallel()

	ro := NewReadOnlyFs(NewMemMapFs())
	require.Error(t, WriteFile(ro, "/x", []byte("x"), 0o644))
}
