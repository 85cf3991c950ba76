package adapter

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewPicker creates a Picker based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUIPicker (Bubble Tea).
// When useTTY is false, it falls back to a SimplePicker (plain prompt).
func NewPicker(cmd *cobra.Command, useTTY bool) Picker {
	if useTTY {
		return NewTUIPicker(cmd.OutOrStdout())
	}

	return NewSimplePicker(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
