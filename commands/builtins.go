package commands

type BuiltinName = string

const (
	HelpCommand     BuiltinName = "help"
	LsCommand       BuiltinName = "ls"
	DirCommand      BuiltinName = "dir"
	CdCommand       BuiltinName = "cd"
	PwdCommand      BuiltinName = "pwd"
	MkdirCommand    BuiltinName = "mkdir"
	TouchCommand    BuiltinName = "touch"
	RmCommand       BuiltinName = "rm"
	CpCommand       BuiltinName = "cp"
	StatCommand     BuiltinName = "stat"
	UserInfoCommand BuiltinName = "userinfo"
	ClearCommand    BuiltinName = "clear"
	ExitCommand     BuiltinName = "exit"
)

// builtinAliases maps alias -> target
var builtinAliases = map[string]BuiltinName{
	"copy": CpCommand,
	"quit": ExitCommand,
}

func builtinCommands() []*Command {
	return []*Command{
		{Name: HelpCommand, Summary: "Display this help message", Handler: runHelp},
		{Name: LsCommand, Usage: "[path]", Summary: "List directory contents", Handler: runLs},
		{Name: DirCommand, Usage: "[path]", Summary: "List directory contents with types", Handler: runDir},
		{Name: CdCommand, Usage: "[path]", Summary: "Change current directory (no path: root)", Handler: runCd},
		{Name: PwdCommand, Summary: "Print current working directory", Handler: runPwd},
		{Name: MkdirCommand, Usage: "<path>...", Summary: "Create directories", Handler: runMkdir},
		{Name: TouchCommand, Usage: "<path>...", Summary: "Create empty files", Handler: runTouch},
		{Name: RmCommand, Usage: "<path>...", Summary: "Remove files or directories (recursive)", Handler: runRm},
		{Name: CpCommand, Usage: "<src> <dst>", Summary: "Copy file or directory", Handler: runCp},
		{Name: StatCommand, Usage: "[path]", Summary: "Show node details", Handler: runStat},
		{Name: UserInfoCommand, Summary: "Display user information", Handler: runUserInfo},
		{Name: ClearCommand, Summary: "Clear the terminal screen", Handler: runClear},
		{Name: ExitCommand, Summary: "End the session", Handler: runExit},
	}
}

// RegisterBuiltins registers all built-in commands (and their aliases) by
// default or only the specific ones if names are provided
func RegisterBuiltins(r *Registry, names ...BuiltinName) {
	include := func(string) bool { return true }
	if len(names) > 0 {
		wanted := make(map[string]bool, len(names))
		for _, name := range names {
			wanted[name] = true
		}
		include = func(name string) bool { return wanted[name] }
	}

	for _, cmd := range builtinCommands() {
		if include(cmd.Name) {
			r.Register(cmd)
		}
	}
	for alias, target := range builtinAliases {
		if include(target) {
			// ignore: only fails if the target was filtered out or alias taken
			_ = r.Alias(alias, target)
		}
	}
}

// NewDefaultRegistry returns a registry holding every built-in command
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}
