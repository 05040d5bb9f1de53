//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// EnableColorOutput checks if colorized output is possible on stream.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
