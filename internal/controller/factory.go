package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool, opts ...Option) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), opts...)
	}

	return NewSimpleUI(cmd, opts...)
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}
