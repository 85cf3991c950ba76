package adapter

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewPicker(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	t.Run("TTY mode returns the interactive picker", func(t *testing.T) {
		picker := NewPicker(cmd, true)
		assert.IsType(t, &TUIPicker{}, picker)
	})

	t.Run("non-TTY mode falls back to the plain prompt", func(t *testing.T) {
		picker := NewPicker(cmd, false)
		assert.IsType(t, &SimplePicker{}, picker)
	})
}

func TestIsTTY(t *testing.T) {
	t.Run("a buffer is not a TTY", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})
}
