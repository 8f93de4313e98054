package shell

import (
	"bufio"
	"errors"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/n3xus/n3xus/config"
	"github.com/n3xus/n3xus/internal/util"
	"golang.org/x/term"
)

// ErrEscape is returned by a [LineReader] when the user pressed ESC
var ErrEscape = errors.New("escape pressed")

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyEscape    = 27
	keyDelete    = 127
)

// LineReader yields one line of user input without its terminator.
// It returns io.EOF when input is exhausted and [ErrEscape] on ESC.
type LineReader interface {
	ReadLine() (string, error)
}

// cookedReader reads lines already edited by the terminal
type cookedReader struct {
	r *bufio.Reader
}

// NewCookedReader returns a LineReader over buffered line input. A line
// holding only the ESC byte counts as ESC. A final line without a newline
// is still returned before io.EOF.
func NewCookedReader(r io.Reader) LineReader {
	return &cookedReader{r: bufio.NewReader(r)}
}

func (c *cookedReader) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == string(rune(keyEscape)) {
		return "", ErrEscape
	}
	return line, nil
}

// rawReader edits the line itself one byte at a time, echoing to echo.
// When fd is a terminal it is switched to raw mode for the duration of
// each ReadLine so command output keeps normal line discipline.
type rawReader struct {
	in   io.Reader
	echo io.Writer
	fd   int
}

// NewRawReader returns a LineReader that handles keys itself. fd is the
// terminal to put in raw mode, or -1 to read in as is.
func NewRawReader(in io.Reader, echo io.Writer, fd int) LineReader {
	return &rawReader{in: in, echo: echo, fd: fd}
}

func (r *rawReader) ReadLine() (string, error) {
	if r.fd >= 0 {
		state, err := term.MakeRaw(r.fd)
		if err != nil {
			logger := util.GetLogger("Shell.RawReader")
			logger.Debug().Err(err).Int("fd", r.fd).Msg("Could not enter raw mode")
		} else {
			defer term.Restore(r.fd, state) // nolint:errcheck
		}
	}

	var line []byte
	b := make([]byte, 1)
	for {
		n, err := r.in.Read(b)
		if n == 0 {
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		switch c := b[0]; {
		case c == keyEscape:
			return "", ErrEscape
		case c == '\r' || c == '\n':
			io.WriteString(r.echo, "\r\n") // nolint:errcheck
			return string(line), nil
		case c == keyBackspace || c == keyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				io.WriteString(r.echo, "\b \b") // nolint:errcheck
			}
		case c == keyCtrlC:
		case c >= 32 && c < keyDelete:
			line = append(line, c)
			r.echo.Write(b) // nolint:errcheck
		}
	}
}

// UseRawInput decides whether mode reads keys in raw mode given whether
// stdin is a terminal
func UseRawInput(mode config.InputMode, stdinIsTerminal bool) bool {
	switch mode {
	case config.InputRaw:
		return true
	case config.InputLine:
		return false
	default:
		return runtime.GOOS == "windows" && stdinIsTerminal
	}
}

// NewLineReader picks the reader for mode over stdin, echoing raw input to echo
func NewLineReader(mode config.InputMode, stdin *os.File, echo io.Writer) LineReader {
	fd := int(stdin.Fd())
	isTerm := term.IsTerminal(fd)
	if !UseRawInput(mode, isTerm) {
		return NewCookedReader(stdin)
	}
	if !isTerm {
		fd = -1
	}
	return NewRawReader(stdin, echo, fd)
}
