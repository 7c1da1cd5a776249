package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHandler(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := CurrentHandler()
	SetHandler(NewHandler(buf))
	t.Cleanup(func() { SetHandler(prev) })
	return buf
}

func TestDefaultThreshold(t *testing.T) {
	buf := withHandler(t)

	Debug("debug %s", "hidden")
	Info("info hidden")
	Warning("careful with %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "careful with 42")
	assert.Contains(t, out, "logging_test.go:", "caller should point at the logging call")

	assert.Contains(t, Tail(), "debug hidden", "tail keeps messages below the threshold")
}

func TestVerbose(t *testing.T) {
	buf := withHandler(t)
	CurrentHandler().SetVerbose(true)
	require.True(t, CurrentHandler().Verbose())

	Debug("now %s", "visible")
	assert.Contains(t, buf.String(), "now visible")

	CurrentHandler().SetVerbose(false)
	assert.False(t, CurrentHandler().Verbose())
}

func TestLazyArgs(t *testing.T) {
	buf := withHandler(t)
	Warning("value: %s", func() interface{} { return "computed" })
	assert.Contains(t, buf.String(), "value: computed")
}

func TestLevelFromString(t *testing.T) {
	l, err := LevelFromString(" warn ")
	require.NoError(t, err)
	assert.Equal(t, WARNING, l)

	l, err = LevelFromString("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, l)

	_, err = LevelFromString("loud")
	assert.Error(t, err)
}
