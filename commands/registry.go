package commands

import (
	"fmt"
	"slices"
	"sync"

	"github.com/n3xus/n3xus/internal/util"
	"github.com/n3xus/n3xus/parser"
)

// Handler runs one parsed command. It prints its own output to env.Out and
// reports success.
type Handler func(env *Env, cmd *parser.ParsedCommand) bool

// Command is a registered handler plus the text `help` shows for it
type Command struct {
	Name    string
	Usage   string // Argument synopsis, e.g. "<src> <dst>"
	Summary string
	Aliases []string
	Handler Handler
}

// Registry maps lowercased command names to commands. Aliases point at the
// same *Command as their target.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
	order    []string // primary names in registration order
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd under cmd.Name, replacing any command already bound to
// that name. Registration is allowed at any time. Aliases of a replaced
// command keep pointing at the old one.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, exists := r.commands[cmd.Name]; !exists || prev.Name != cmd.Name {
		r.order = append(r.order, cmd.Name)
		if exists {
			// name was an alias; it now belongs to cmd
			prev.Aliases = slices.DeleteFunc(prev.Aliases, func(a string) bool { return a == cmd.Name })
		}
	}
	r.commands[cmd.Name] = cmd
}

// Alias binds alias to the command currently registered as target
func (r *Registry) Alias(alias, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd, ok := r.commands[target]
	if !ok {
		return fmt.Errorf("no command %q to alias as %q", target, alias)
	}
	if _, taken := r.commands[alias]; taken {
		return fmt.Errorf("command name %q already registered", alias)
	}
	r.commands[alias] = cmd
	cmd.Aliases = append(cmd.Aliases, alias)
	return nil
}

// Lookup returns the command bound to name
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns the primary commands in registration order
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmd := r.commands[name]
		// a name re-pointed by Alias is not primary anymore
		if cmd.Name == name {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Execute looks up and runs cmd. Blank input is a successful no-op; an
// unknown name prints a not-found notice and fails.
func (r *Registry) Execute(env *Env, cmd *parser.ParsedCommand) bool {
	logger := util.GetLogger("Registry.Execute")

	if cmd.Empty() {
		return true
	}
	c, ok := r.Lookup(cmd.Command)
	if !ok {
		logger.Debug().Str("command", cmd.Command).Msg("Unknown command")
		env.printf("Command not found: %s\n", cmd.Command)
		env.println("Type 'help' for a list of available commands.")
		return false
	}

	success := c.Handler(env, cmd)
	logger.Debug().
		Str("command", cmd.Command).
		Strs("args", cmd.Arguments).
		Bool("success", success).
		Msg("Command executed")
	return success
}
