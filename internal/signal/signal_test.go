package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit_CallsHandlersInOrder(t *testing.T) {
	var s Signal[string]
	var got []string

	s.Connect(func(v string) { got = append(got, "a:"+v) })
	s.Connect(func(v string) { got = append(got, "b:"+v) })
	s.Emit("x")

	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestDisconnect(t *testing.T) {
	var s Signal[int]
	calls := 0

	disconnect := s.Connect(func(int) { calls++ })
	s.Emit(1)
	disconnect()
	s.Emit(2)
	disconnect()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestEmit_DisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	calls := 0

	var disconnect func()
	disconnect = s.Connect(func(int) {
		calls++
		disconnect()
	})
	s.Connect(func(int) { calls++ })

	s.Emit(1)
	s.Emit(2)

	assert.Equal(t, 3, calls)
}

func TestEmit_NoHandlers(t *testing.T) {
	var s Signal[struct{}]
	assert.NotPanics(t, func() { s.Emit(struct{}{}) })
}
