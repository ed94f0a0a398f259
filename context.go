package ocmd

import "fmt"

// Context carries everything a subcommand callback needs for a single
// invocation. A Context is created per dispatch and must not be retained
// after the callback returns.
type Context struct {
	// Source is the entity that executed the command.
	Source Source
	// Args holds the arguments passed to the subcommand, excluding the
	// subcommand name itself.
	Args []string
	// Command is the name of the parent command as executed by the host,
	// used in formatted replies such as the invalid usage message.
	Command string
	// Sub is the subcommand resolved for this invocation. It is nil when
	// the first token did not match any registered name or alias.
	Sub *Subcommand

	h *Handler
}

// Reply sends a formatted message to the source, translating '&' colour
// codes first.
func (ctx *Context) Reply(format string, args ...interface{}) {
	ctx.Source.SendMessage(Colourize(fmt.Sprintf(format, args...)))
}

// Player returns the source as a Player, or false if the command was not
// executed by an in-game player.
func (ctx *Context) Player() (Player, bool) {
	p, ok := ctx.Source.(Player)
	return p, ok
}

// RequirePlayer returns a Failure if the source is not an in-game player.
func (ctx *Context) RequirePlayer() error {
	if _, ok := ctx.Source.(Player); !ok {
		return ctx.h.notPlayer(ctx)
	}
	return nil
}

// RequireArgs returns a Failure carrying the invalid usage message if fewer
// than min arguments were passed.
func (ctx *Context) RequireArgs(min int) error {
	if len(ctx.Args) < min {
		return ctx.h.invalidUsage(ctx)
	}
	return nil
}

// CheckPermission returns a Failure if the source does not hold the
// permission passed.
func (ctx *Context) CheckPermission(permission string) error {
	if permission != "" && !ctx.Source.HasPermission(permission) {
		return ctx.h.noPermission(ctx)
	}
	return nil
}
