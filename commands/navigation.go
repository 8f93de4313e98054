package commands

import (
	"github.com/n3xus/n3xus/parser"
)

const emptyListing = "(empty)"

func runPwd(env *Env, _ *parser.ParsedCommand) bool {
	env.println(env.FS.CurrentPath())
	return true
}

func runCd(env *Env, cmd *parser.ParsedCommand) bool {
	path := cmd.Arg(0)
	if err := env.FS.ChangeDirectory(path); err != nil {
		env.printf("Error: Cannot change to directory '%s': %s\n", path, reason(err))
		return false
	}
	return true
}

// listing resolves the names for ls/dir, printing the diagnostic itself.
// A missing path or a file is an error; an empty directory is not.
func listing(env *Env, path string) ([]string, bool) {
	names, err := env.FS.ListDirectory(path)
	if err != nil {
		env.printf("Error: Cannot access '%s': %s\n", path, reason(err))
		return nil, false
	}
	if len(names) == 0 {
		env.println(emptyListing)
	}
	return names, true
}

func runLs(env *Env, cmd *parser.ParsedCommand) bool {
	names, ok := listing(env, cmd.Arg(0))
	if !ok {
		return false
	}
	for _, name := range names {
		env.println(name)
	}
	return true
}

func runDir(env *Env, cmd *parser.ParsedCommand) bool {
	path := cmd.Arg(0)
	names, ok := listing(env, path)
	if !ok || len(names) == 0 {
		return ok
	}

	dir, err := env.FS.Resolve(path)
	if err != nil || !dir.IsDir() {
		env.println("Error: Invalid directory")
		return false
	}
	for _, name := range names {
		child, found := dir.Child(name)
		switch {
		case !found:
			env.printf("       %s\n", name)
		case child.IsDir():
			env.printf("[DIR]  %s\n", name)
		default:
			env.printf("[FILE] %s\n", name)
		}
	}
	return true
}
