//go:build !windows

package commands

import (
	"fmt"
	"io"
)

// clearScreen moves the cursor home and erases the display
func clearScreen(out io.Writer) error {
	_, err := fmt.Fprint(out, "\033[H\033[2J")
	return err
}
