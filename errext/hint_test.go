package errext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHint(t *testing.T) {
	t.Parallel()

	require.NoError(t, WithHint(nil, "nothing"))

	base := errors.New("base")
	err := WithHint(base, "inner")
	err = WithHint(fmt.Errorf("wrapped: %w", err), "outer")

	var herr HasHint
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "outer (inner)", herr.Hint())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "wrapped: base", err.Error())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	msg, fields := Format(nil)
	assert.Empty(t, msg)
	assert.Nil(t, fields)

	msg, fields = Format(WithHint(errors.New("oops"), "try again"))
	assert.Equal(t, "oops", msg)
	assert.Equal(t, map[string]interface{}{"hint": "try again"}, fields)

	msg, fields = Format(errors.New("plain"))
	assert.Equal(t, "plain", msg)
	assert.Empty(t, fields)
}

func TestLog(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	Log(logger, logrus.WarnLevel, WithHint(errors.New("oops"), "try again"))
	Log(logger, logrus.WarnLevel, nil)

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "oops", entries[0].Message)
	assert.Equal(t, "try again", entries[0].Data["hint"])
}
