package completion

import (
	"github.com/oomph-ac/ocmd"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Append adds an entry for the handler's parent command to the
// AvailableCommands packet, so clients render completions for it. Each
// subcommand visible to src becomes one overload: a single-value enum for
// the subcommand name (the way vanilla encodes sub-command flows), followed
// by the subcommand's completion hints as a soft enum when it has any.
func Append(pk *packet.AvailableCommands, command, description string, aliases []string, src ocmd.Source, h *ocmd.Handler) {
	overloads := make([]protocol.CommandOverload, 0, len(h.Subcommands()))
	for _, sub := range h.Subcommands() {
		if !sub.VisibleTo(src) {
			continue
		}
		names := append([]string{sub.Name}, sub.Aliases...)
		params := []protocol.CommandParameter{
			enumParam(sub.Name, enumIndex(pk, "ocmd:"+command+"_"+sub.Name, names), false, false),
		}
		switch {
		case len(sub.TabComplete) > 0:
			idx := dynamicEnumIndex(pk, "ocmd:"+command+"_"+sub.Name+"_hints", sub.TabComplete)
			params = append(params, enumParam("value", idx, true, sub.MinArgs == 0))
		case sub.Parameters != "":
			params = append(params, textParam("args", sub.MinArgs == 0))
		}
		overloads = append(overloads, protocol.CommandOverload{Parameters: params})
	}
	// Don't bother sending the command at all if the source may run none of
	// its subcommands.
	if len(overloads) == 0 {
		return
	}

	aliasesOffset := ^uint32(0) // MaxUint32 (no aliases)
	if len(aliases) > 0 {
		aliasesOffset = enumIndex(pk, command+"CmdAliases", append([]string{command}, aliases...))
	}
	pk.Commands = append(pk.Commands, protocol.Command{
		Name:                     command,
		Description:              description,
		Flags:                    0,
		PermissionLevel:          0,
		AliasesOffset:            aliasesOffset,
		ChainedSubcommandOffsets: []uint16{},
		Overloads:                overloads,
	})
}
