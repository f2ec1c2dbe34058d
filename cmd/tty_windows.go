//go:build windows

package cmd

import (
	"os"

	"golang.org/x/sys/windows"
)

// isTerminal reports whether f is attached to a console.
//
// Redirected handles and pipes (including mintty/MSYS pipes) fail
// GetConsoleMode, so piped input runs without the banner.
func isTerminal(f *os.File) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(f.Fd()), &mode) == nil
}
