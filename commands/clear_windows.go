//go:build windows

package commands

import (
	"io"
	"os"
	"os/exec"
)

// clearScreen runs the console's own cls; ANSI erase is unreliable on older consoles
func clearScreen(_ io.Writer) error {
	cmd := exec.Command("cmd", "/c", "cls")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}
