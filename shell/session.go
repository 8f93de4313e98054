package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/n3xus/n3xus/commands"
	"github.com/n3xus/n3xus/config"
	"github.com/n3xus/n3xus/filesystem"
	"github.com/n3xus/n3xus/internal/util"
	"github.com/n3xus/n3xus/parser"
)

// State of a [Session]
type State int

const (
	StateRunning State = iota
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session runs the prompt, read, dispatch loop for one user over one tree
type Session struct {
	id       uuid.UUID
	cfg      *config.Config
	fs       *filesystem.FileSystem
	registry *commands.Registry
	env      *commands.Env
	in       LineReader
	out      io.Writer
	color    bool
	state    State
}

// New creates a Session over fs. A nil registry means every built-in
// command.
func New(cfg *config.Config, fs *filesystem.FileSystem, registry *commands.Registry, in LineReader, out io.Writer) *Session {
	if registry == nil {
		registry = commands.NewDefaultRegistry()
	}
	return &Session{
		id:       uuid.New(),
		cfg:      cfg,
		fs:       fs,
		registry: registry,
		env:      commands.NewEnv(fs, out, registry),
		in:       in,
		out:      out,
		color:    UseColor(cfg.Prompt.Color, out),
		state:    StateRunning,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Env exposes the handler environment so callers can replace host hooks
func (s *Session) Env() *commands.Env {
	return s.env
}

// Run loops until EOF, ESC or an exit command, then prints the farewell.
// Command failures never end the session; only a failing reader does,
// and its error is returned.
func (s *Session) Run() error {
	logger := util.GetLogger("Session.Run").With().Str("session", s.id.String()).Logger()
	logger.Debug().Str("input", string(s.cfg.InputMode)).Bool("color", s.color).Msg("Session started")

	if s.cfg.Banner {
		io.WriteString(s.out, bannerText) // nolint:errcheck
	}

	var runErr error
	for s.state == StateRunning {
		io.WriteString(s.out, RenderPrompt(s.cfg.Prompt.Host, s.fs.CurrentPath(), s.color)) // nolint:errcheck

		line, err := s.in.ReadLine()
		switch {
		case errors.Is(err, ErrEscape):
			logger.Debug().Msg("ESC pressed")
			io.WriteString(s.out, escapeNotice) // nolint:errcheck
			s.state = StateExiting
			continue
		case errors.Is(err, io.EOF):
			logger.Debug().Msg("End of input")
			s.state = StateExiting
			continue
		case err != nil:
			logger.Error().Err(err).Msg("Failed to read input")
			runErr = fmt.Errorf("failed to read input: %w", err)
			s.state = StateExiting
			continue
		}

		cmd := parser.Parse(line)
		ok := s.registry.Execute(s.env, cmd)
		logger.Trace().Str("line", line).Bool("success", ok).Str("cwd", s.fs.CurrentPath()).Msg("Line processed")

		if s.env.ExitRequested() {
			s.state = StateExiting
		}
	}

	io.WriteString(s.out, farewellText) // nolint:errcheck
	logger.Debug().Msg("Session ended")
	return runErr
}
