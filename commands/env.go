package commands

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/n3xus/n3xus"
)

// HostInfo is what `userinfo` reports about the machine running the session
type HostInfo struct {
	Username string
	HomeDir  string
	Hostname string
}

// LookupHostInfo queries the operating system for the current user and host.
// Fields that cannot be determined are left empty.
func LookupHostInfo() HostInfo {
	var info HostInfo
	if u, err := user.Current(); err == nil {
		info.Username = u.Username
		info.HomeDir = u.HomeDir
	}
	if h, err := os.Hostname(); err == nil {
		info.Hostname = h
	}
	return info
}

// Env is everything a [Handler] may touch: the filesystem, the output
// stream, the registry (for help) and a few host hooks that tests replace.
type Env struct {
	FS       n3xus.FileSystemOperator
	Out      io.Writer
	Registry *Registry
	Now      func() time.Time
	Host     func() HostInfo
	Clear    func(out io.Writer) error

	exitRequested bool
}

// NewEnv returns an Env wired to the real host
func NewEnv(fs n3xus.FileSystemOperator, out io.Writer, registry *Registry) *Env {
	return &Env{
		FS:       fs,
		Out:      out,
		Registry: registry,
		Now:      time.Now,
		Host:     LookupHostInfo,
		Clear:    clearScreen,
	}
}

// RequestExit asks the session to stop before the next prompt
func (e *Env) RequestExit() {
	e.exitRequested = true
}

func (e *Env) ExitRequested() bool {
	return e.exitRequested
}

func (e *Env) printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

func (e *Env) println(a ...any) {
	fmt.Fprintln(e.Out, a...)
}
