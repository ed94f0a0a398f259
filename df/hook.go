package df

import (
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/ocmd"
)

// Hook registers a command with dragonfly's command registry that forwards
// every execution to the handler passed. name, description and aliases
// describe the parent command as dragonfly shows it.
func Hook(h *ocmd.Handler, name, description string, aliases []string, perms PermissionFunc) {
	cmd.Register(cmd.New(name, description, aliases, hook{h: h, command: name, perms: perms}))
}

// hook is the dragonfly Runnable bridging to an ocmd.Handler.
type hook struct {
	h       *ocmd.Handler
	command string
	perms   PermissionFunc

	// Args swallows all provided arguments so dragonfly's own parser does
	// not reject the command for having leftover input. The tokens are
	// split and dispatched by the handler instead.
	Args cmd.Varargs
}

// Run tokenizes the raw input and dispatches it.
func (c hook) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	c.h.Dispatch(c.command, c.source(src, o), strings.Fields(string(c.Args)))
}

// DescribeParams exposes the subcommand names to dragonfly so clients
// render completions for the first argument.
func (c hook) DescribeParams(src cmd.Source) []cmd.ParamInfo {
	return []cmd.ParamInfo{
		{Name: "subcommand", Value: subcommandEnum{hook: c}},
		{Name: "args", Value: cmd.Varargs(""), Optional: true},
	}
}

// source adapts a dragonfly command source to an ocmd.Source.
func (c hook) source(src cmd.Source, o *cmd.Output) ocmd.Source {
	if p, ok := src.(*player.Player); ok {
		return NewPlayerSource(p, c.perms)
	}
	name := "CONSOLE"
	if n, ok := src.(interface{ Name() string }); ok {
		name = n.Name()
	}
	return NewOutputSource(name, o)
}

// subcommandEnum is a dragonfly command enum listing the subcommand names
// of a handler that are visible to the source asking.
type subcommandEnum struct {
	hook
}

func (e subcommandEnum) Type() string {
	return "ocmd:" + e.command + "_subcommand"
}

func (e subcommandEnum) Options(src cmd.Source) []string {
	var o cmd.Output
	viewer := e.source(src, &o)
	names := make([]string, 0, len(e.h.Subcommands()))
	for _, sub := range e.h.Subcommands() {
		if !sub.VisibleTo(viewer) {
			continue
		}
		names = append(names, sub.Name)
	}
	return names
}
