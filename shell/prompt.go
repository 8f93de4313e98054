package shell

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/n3xus/n3xus/config"
)

// ANSI SGR sequences
const (
	ansiCyan  = "\033[0;36m"
	ansiGreen = "\033[0;32m"
	ansiReset = "\033[0m"
)

// RenderPrompt returns `HOST::<cwd> $ `, colored when color is set
func RenderPrompt(host, cwd string, color bool) string {
	if !color {
		return host + "::" + cwd + " $ "
	}
	return ansiCyan + host + ansiReset + "::" + ansiGreen + cwd + ansiReset + " $ "
}

// UseColor decides whether prompts written to out carry ANSI codes
func UseColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Stdout returns an ANSI-capable writer for f. Outside Windows consoles
// it is f itself.
func Stdout(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}
