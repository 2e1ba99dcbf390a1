package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TT_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when set", func(t *testing.T) {
		t.Setenv("TT_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})

	t.Run("any non-empty value enables", func(t *testing.T) {
		t.Setenv("TT_DEBUG", "yes")
		assert.True(t, DebugEnabled())
	})
}

func TestDebugfDoesNotPanicWhenDisabled(t *testing.T) {
	t.Setenv("TT_DEBUG", "")
	Debugf("value: %d\n", 42)
	Debugln("a", "b")
}
