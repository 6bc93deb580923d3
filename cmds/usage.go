package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil {
			continue
		}
		// aliases are listed beside the primary name
		if slices.Contains(command.Aliases, name) {
			continue
		}
		label := strings.Join(append([]string{name}, command.Aliases...), ", ")
		if args := command.ArgNames(); args != "" {
			label += " " + args
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%-28s %s\n", indent, label, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
