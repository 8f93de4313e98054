package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var (
	n3xusBin string
	projRoot string
	testEnv  *E2ETestEnvironment
)

func TestMain(m *testing.M) {
	var err error

	// Build the binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "n3xus-bin")
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := os.RemoveAll(tmpBinDir); err != nil {
			panic(err)
		}
	}()

	n3xusBin = filepath.Join(tmpBinDir, "n3xus")
	if runtime.GOOS == "windows" {
		n3xusBin += ".exe"
	}

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")
	src := filepath.Join(projRoot, "cmd", "main.go")

	// Build with debug symbols
	cmd := exec.Command("go", "build", "-o", n3xusBin, "-gcflags=all=-N -l", src)
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	testEnv, err = NewE2ETestEnvironment(n3xusBin)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	testEnv.Close()
	os.Exit(code)
}

const prompt = "N3XUS::"

func TestE2EPwdOnFreshSession(t *testing.T) {
	res := testEnv.Run(t, "pwd\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "N3XUS::/ $ /\n", "Goodbye!")
}

func TestE2EMkdirThenLs(t *testing.T) {
	res := testEnv.Run(t, "mkdir docs\nls\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "Directory created: docs\n", "N3XUS::/ $ docs\n")
}

func TestE2ENestedCd(t *testing.T) {
	res := testEnv.Run(t, "mkdir a\ncd a\nmkdir b\npwd\ncd ..\npwd\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "N3XUS::/a $ /a\n", "N3XUS::/ $ /\n")
}

func TestE2ECopyDirectory(t *testing.T) {
	res := testEnv.Run(t, "mkdir x\ncp x y\nls\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "Copied: x -> y\n", "x\ny\n")
}

func TestE2ERemoveCursorRefused(t *testing.T) {
	res := testEnv.Run(t, "mkdir d\ncd d\nrm /d\ncd /\nrm /d\nls\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "Error: Cannot remove '/d'", "Removed: /d\n", "(empty)\n")
}

func TestE2EQuotedArguments(t *testing.T) {
	res := testEnv.Run(t, "mkdir \"a b\"\ncp \"a b\" \"c d\"\nls\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "a b\nc d\n")
}

func TestE2EExitStopsReading(t *testing.T) {
	res := testEnv.Run(t, "exit\nmkdir never\n")

	res.ExpectExit(t, 0)
	if strings.Contains(res.Stdout, "never") {
		t.Fatalf("command after exit was run:\n%s", res.Stdout)
	}
	res.ExpectInOrder(t, "[*] Terminating connection...", "[*] N3XUS-OS session ended", "Goodbye!")
}

func TestE2EEscapeLine(t *testing.T) {
	res := testEnv.Run(t, "\x1b\nmkdir never\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "[*] ESC pressed - Exiting terminal...", "Goodbye!")
	if strings.Contains(res.Stdout, "never") {
		t.Fatalf("command after ESC was run:\n%s", res.Stdout)
	}
}

func TestE2EUnknownCommand(t *testing.T) {
	res := testEnv.Run(t, "teleport home\npwd\n")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "Command not found: teleport\n", "N3XUS::/ $ /\n")
}

func TestE2EBannerAndHost(t *testing.T) {
	res := testEnv.RunArgs(t, "", "--color", "never", "--host", "LAB")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "[*] Virtual File System ready", "Type 'help' for available commands or 'exit' to quit.", "LAB::/ $ ")
}

func TestE2EColorAlways(t *testing.T) {
	res := testEnv.RunArgs(t, "", "--no-banner", "--color", "always")

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "\033[0;36mN3XUS\033[0m::\033[0;32m/\033[0m $ ")
}

func TestE2ENodesFile(t *testing.T) {
	nodes := testEnv.WriteFile(t, "nodes.json", `[
		{"type": "dir", "path": "/projects/n3xus"},
		{"type": "file", "path": "/projects/n3xus/README.md"},
		{"type": "file", "path": "/notes.txt"},
		{"type": "socket", "path": "/ignored"}
	]`)

	res := testEnv.Run(t, "ls\ndir /projects/n3xus\n", "--nodes", nodes)

	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "notes.txt\nprojects\n", "[FILE] README.md\n")
}

func TestE2EConfigFile(t *testing.T) {
	cfg := testEnv.WriteFile(t, "n3xus.yaml", "host: FILE\ncolor: never\nbanner: false\n")

	res := testEnv.RunArgs(t, "pwd\n", "--config", cfg)
	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "FILE::/ $ /\n")

	// flags win over the file
	res = testEnv.RunArgs(t, "pwd\n", "--config", cfg, "--host", "FLAG")
	res.ExpectExit(t, 0)
	res.ExpectInOrder(t, "FLAG::/ $ /\n")
}

func TestE2EVerboseLogsToStderr(t *testing.T) {
	res := testEnv.Run(t, "mkdir a\n", "-v", "5")

	res.ExpectExit(t, 0)
	if !strings.Contains(res.Stderr, "Command executed") {
		t.Fatalf("expected trace logs on stderr, got:\n%s", res.Stderr)
	}
	if strings.Contains(res.Stdout, "Command executed") {
		t.Fatalf("logs leaked into stdout:\n%s", res.Stdout)
	}
}

func TestE2EStartupFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing nodes file", []string{"--nodes", filepath.Join(testEnv.BaseDir, "missing.json")}},
		{"missing config file", []string{"--config", filepath.Join(testEnv.BaseDir, "missing.yaml")}},
		{"bad color", []string{"--color", "sometimes"}},
		{"bad input mode", []string{"--input-mode", "telepathy"}},
		{"unexpected argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testEnv.RunArgs(t, "", tt.args...)
			res.ExpectExit(t, 1)
			if strings.Contains(res.Stdout, prompt) {
				t.Fatalf("session started despite start-up failure:\n%s", res.Stdout)
			}
		})
	}
}

// E2ETestEnvironment holds the built binary and a scratch dir for input files
type E2ETestEnvironment struct {
	Bin     string
	BaseDir string
}

// RunResult is the outcome of one binary invocation
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewE2ETestEnvironment creates a shared test environment
func NewE2ETestEnvironment(bin string) (*E2ETestEnvironment, error) {
	baseDir, err := os.MkdirTemp("", "n3xus-e2e-tests")
	if err != nil {
		return nil, err
	}
	return &E2ETestEnvironment{Bin: bin, BaseDir: baseDir}, nil
}

// Close cleans up the test environment
func (env *E2ETestEnvironment) Close() {
	if env.BaseDir != "" {
		_ = os.RemoveAll(env.BaseDir) // Best effort cleanup
	}
}

// WriteFile writes a test-specific input file and returns its path
func (env *E2ETestEnvironment) WriteFile(t *testing.T, name, content string) string {
	testID := strings.ReplaceAll(t.Name(), "/", "_")
	dir := filepath.Join(env.BaseDir, testID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Run feeds stdin to a banner-less, colorless session with extra args
func (env *E2ETestEnvironment) Run(t *testing.T, stdin string, args ...string) *RunResult {
	return env.RunArgs(t, stdin, append([]string{"--no-banner", "--color", "never", "--input-mode", "line"}, args...)...)
}

// RunArgs feeds stdin to the binary invoked with exactly args
func (env *E2ETestEnvironment) RunArgs(t *testing.T, stdin string, args ...string) *RunResult {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, env.Bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := &RunResult{}
	err := cmd.Run()
	res.Stdout, res.Stderr = stdout.String(), stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("Failed to run n3xus %v: %v\nstderr:\n%s", args, err, res.Stderr)
	}
	if ctx.Err() != nil {
		t.Fatalf("n3xus %v did not exit in time\nstdout:\n%s", args, res.Stdout)
	}
	return res
}

// ExpectExit fails the test unless the process exited with code
func (r *RunResult) ExpectExit(t *testing.T, code int) {
	if r.ExitCode != code {
		t.Fatalf("exit code mismatch: expected %d, got %d\nstdout:\n%s\nstderr:\n%s", code, r.ExitCode, r.Stdout, r.Stderr)
	}
}

// ExpectInOrder fails the test unless each fragment follows the previous one on stdout
func (r *RunResult) ExpectInOrder(t *testing.T, fragments ...string) {
	rest := r.Stdout
	for _, f := range fragments {
		i := strings.Index(rest, f)
		if i < 0 {
			t.Fatalf("missing %q in output:\n%s", f, r.Stdout)
		}
		rest = rest[i+len(f):]
	}
}
