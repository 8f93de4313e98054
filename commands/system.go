package commands

import (
	"strings"

	"github.com/n3xus/n3xus/parser"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04:05"

func runHelp(env *Env, _ *parser.ParsedCommand) bool {
	env.println()
	env.println("Available Commands:")
	env.println()

	table := tablewriter.NewWriter(env.Out)
	table.SetHeader([]string{"Command", "Arguments", "Description"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, cmd := range env.Registry.Commands() {
		names := append([]string{cmd.Name}, cmd.Aliases...)
		table.Append([]string{strings.Join(names, ", "), cmd.Usage, cmd.Summary})
	}
	table.Render()
	env.println()
	return true
}

func runStat(env *Env, cmd *parser.ParsedCommand) bool {
	path := cmd.Arg(0)
	node, err := env.FS.Resolve(path)
	if err != nil {
		env.printf("Error: Cannot stat '%s': %s\n", path, reason(err))
		return false
	}

	env.printf("  Name:    %s\n", node.Name())
	env.printf("  Type:    %s\n", node.Kind())
	env.printf("  Path:    %s\n", node.Path())
	env.printf("  ID:      %s\n", node.ID())
	if node.IsDir() {
		env.printf("  Entries: %d\n", node.ChildCount())
	}
	return true
}

func runUserInfo(env *Env, _ *parser.ParsedCommand) bool {
	info := env.Host()
	unknown := func(s string) string {
		if s == "" {
			return "(unknown)"
		}
		return s
	}

	env.println()
	env.println("=== User Information ===")
	env.printf("Username: %s\n", unknown(info.Username))
	if info.HomeDir != "" {
		env.printf("Home Directory: %s\n", info.HomeDir)
	}
	if info.Hostname != "" {
		env.printf("Hostname: %s\n", info.Hostname)
	}
	env.printf("Current Time: %s\n", env.Now().Format(timeLayout))
	env.println("========================")
	env.println()
	return true
}

func runClear(env *Env, _ *parser.ParsedCommand) bool {
	if err := env.Clear(env.Out); err != nil {
		env.printf("Error: Cannot clear screen: %v\n", err)
		return false
	}
	return true
}

func runExit(env *Env, _ *parser.ParsedCommand) bool {
	env.RequestExit()
	return true
}
