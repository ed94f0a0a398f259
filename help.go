package ocmd

// HelpCommand returns a ready-made "help" subcommand for the handler
// passed. Without arguments it lists every registered subcommand the source
// is allowed to see, in registration order; with a subcommand name it
// prints that subcommand's help menu.
func HelpCommand(h *Handler) *Subcommand {
	return &Subcommand{
		Name:        "help",
		Aliases:     []string{"?"},
		Description: "Displays a list of available sub-commands",
		Parameters:  "[subcommand]",
		Run: func(ctx *Context) error {
			if len(ctx.Args) == 0 {
				listSubcommands(ctx, h)
				return nil
			}
			sub, ok := h.Lookup(ctx.Args[0])
			if !ok || !sub.VisibleTo(ctx.Source) {
				return Failf("&cUnknown sub-command: &e%s&c.", ctx.Args[0])
			}
			if len(sub.HelpMenu) == 0 {
				ctx.Reply("&e/%s %s &d%s &7- %s", ctx.Command, sub.Name, sub.Parameters, sub.Description)
				return nil
			}
			for _, line := range sub.HelpMenu {
				ctx.Reply("%s", line)
			}
			return nil
		},
	}
}

func listSubcommands(ctx *Context, h *Handler) {
	ctx.Reply("&6Commands of /%s:", ctx.Command)
	for _, sub := range h.Subcommands() {
		if !sub.VisibleTo(ctx.Source) {
			continue
		}
		ctx.Reply("&e/%s %s &d%s &7- %s", ctx.Command, sub.Name, sub.Parameters, sub.Description)
	}
}
