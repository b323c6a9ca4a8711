package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		assert.NotNil(t, parseLevel(lvl), lvl)
	}
	assert.Nil(t, parseLevel("verbose"))
}

func TestNew(t *testing.T) {
	l, err := New("debug", false)
	require.NoError(t, err)
	assert.NotNil(t, l)

	l, err = New("", true)
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(String("tab", "1"))

	l.Info("loaded", Int("status", 200))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "loaded", entry.Message)
	assert.Equal(t, "1", entry.ContextMap()["tab"])
	assert.EqualValues(t, 200, entry.ContextMap()["status"])
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Debugf("x %d", 1)
		l.Error("y", Error(assert.AnError))
	})
}
