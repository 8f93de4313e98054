package commands

import (
	"github.com/n3xus/n3xus/parser"
)

// eachPath applies op to every argument, reporting per path. It succeeds
// only if every path succeeds.
func eachPath(env *Env, cmd *parser.ParsedCommand, usage string, op func(path string) bool) bool {
	if len(cmd.Arguments) == 0 {
		env.println(usage)
		return false
	}
	ok := true
	for _, path := range cmd.Arguments {
		if !op(path) {
			ok = false
		}
	}
	return ok
}

func runMkdir(env *Env, cmd *parser.ParsedCommand) bool {
	return eachPath(env, cmd, "Usage: mkdir <directory_name>...", func(path string) bool {
		if err := env.FS.CreateDirectory(path); err != nil {
			env.printf("Error: Cannot create directory '%s': %s\n", path, reason(err))
			return false
		}
		env.printf("Directory created: %s\n", path)
		return true
	})
}

func runTouch(env *Env, cmd *parser.ParsedCommand) bool {
	return eachPath(env, cmd, "Usage: touch <file_name>...", func(path string) bool {
		if err := env.FS.CreateFile(path); err != nil {
			env.printf("Error: Cannot create file '%s': %s\n", path, reason(err))
			return false
		}
		env.printf("File created: %s\n", path)
		return true
	})
}

func runRm(env *Env, cmd *parser.ParsedCommand) bool {
	return eachPath(env, cmd, "Usage: rm <path>...", func(path string) bool {
		if err := env.FS.RemoveNode(path); err != nil {
			env.printf("Error: Cannot remove '%s': %s\n", path, reason(err))
			return false
		}
		env.printf("Removed: %s\n", path)
		return true
	})
}

func runCp(env *Env, cmd *parser.ParsedCommand) bool {
	if len(cmd.Arguments) < 2 {
		env.println("Usage: cp <source> <destination>")
		env.println("       Copy a file or directory to another location.")
		return false
	}

	source, destination := cmd.Arguments[0], cmd.Arguments[1]
	if err := env.FS.CopyNode(source, destination); err != nil {
		env.printf("Error: Cannot copy '%s' to '%s': %s\n", source, destination, reason(err))
		return false
	}
	env.printf("Copied: %s -> %s\n", source, destination)
	return true
}
