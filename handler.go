package ocmd

import (
	"errors"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/ocmd/oerror"
	"github.com/sirupsen/logrus"
)

// Handler routes sub-command input for a single parent command to the
// subcommands registered on it. Registration is expected to happen during
// server startup; once the host starts feeding input to Dispatch, the
// registry is only read.
type Handler struct {
	log *logrus.Logger

	commands map[string]*Subcommand
	names    *orderedmap.OrderedMap[string, *Subcommand]

	resolvers *Resolvers

	prefix string
	strict bool

	invalidCommand func(ctx *Context)
	notPlayer      func(ctx *Context) *Failure
	invalidUsage   func(ctx *Context) *Failure
	noPermission   func(ctx *Context) *Failure
	resolverFail   func(ctx *Context, kind, arg string) *Failure
}

// Option configures a Handler on creation.
type Option func(h *Handler)

// WithPrefix sets the messaging prefix prepended to prefixable failure
// messages. Colour codes in the prefix are translated immediately.
func WithPrefix(prefix string) Option {
	return func(h *Handler) { h.prefix = Colourize(prefix) }
}

// WithStrictRegistration makes registering a subcommand whose name or alias
// is already taken panic, instead of silently overwriting the earlier
// registration.
func WithStrictRegistration() Option {
	return func(h *Handler) { h.strict = true }
}

// WithInvalidCommand replaces the reply sent when the first token does not
// match any registered subcommand.
func WithInvalidCommand(f func(ctx *Context)) Option {
	return func(h *Handler) { h.invalidCommand = f }
}

// WithNotPlayer replaces the failure returned when a player-only subcommand
// is executed by a source that is not a player.
func WithNotPlayer(f func(ctx *Context) *Failure) Option {
	return func(h *Handler) { h.notPlayer = f }
}

// WithInvalidUsage replaces the failure returned when too few arguments are
// passed to a subcommand.
func WithInvalidUsage(f func(ctx *Context) *Failure) Option {
	return func(h *Handler) { h.invalidUsage = f }
}

// WithNoPermission replaces the failure returned when the source lacks a
// subcommand's permission.
func WithNoPermission(f func(ctx *Context) *Failure) Option {
	return func(h *Handler) { h.noPermission = f }
}

// WithResolverFallback replaces the failure produced when an argument
// cannot be resolved to the requested kind.
func WithResolverFallback(f func(ctx *Context, kind, arg string) *Failure) Option {
	return func(h *Handler) { h.resolverFail = f }
}

// New creates a Handler logging through log.
func New(log *logrus.Logger, opts ...Option) *Handler {
	h := &Handler{
		log:       log,
		commands:  make(map[string]*Subcommand),
		names:     orderedmap.NewOrderedMap[string, *Subcommand](),
		resolvers: newResolvers(),

		invalidCommand: func(ctx *Context) {
			ctx.Reply("&cInvalid sub-command. Run &e/%s help &cfor a list of commands.", ctx.Command)
		},
		notPlayer: func(ctx *Context) *Failure {
			return Failf("&cYou must be a player to use this command!")
		},
		invalidUsage: func(ctx *Context) *Failure {
			return Failf("&cInvalid usage. Try &e/%s %s &d%s&c.", ctx.Command, ctx.Sub.Name, ctx.Sub.Parameters)
		},
		noPermission: func(ctx *Context) *Failure {
			return Failf("&cYou do not have permission to run this command!")
		},
		resolverFail: func(ctx *Context, kind, arg string) *Failure {
			ctx.Reply("&cInvalid %s: &e%s", kind, arg)
			return Silent()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetPrefix sets the messaging prefix prepended to prefixable failure
// messages, translating colour codes immediately. It must not be called
// concurrently with Dispatch.
func (h *Handler) SetPrefix(prefix string) {
	h.prefix = Colourize(prefix)
}

// Prefix returns the messaging prefix of the handler.
func (h *Handler) Prefix() string {
	return h.prefix
}

// Resolvers returns the argument resolvers of the handler. Additional kinds
// may be registered on it during startup.
func (h *Handler) Resolvers() *Resolvers {
	return h.resolvers
}

// Dispatch resolves the first token of args to a registered subcommand,
// validates its preconditions and runs it. command is the name of the
// parent command as executed by the host, echoed in formatted replies. All
// observable effects are messages sent back through src.
func (h *Handler) Dispatch(command string, src Source, args []string) {
	var (
		sub       *Subcommand
		remaining []string
	)
	// Zero tokens leave no subcommand name to look up, which is treated
	// the same as a lookup miss.
	if len(args) > 0 {
		sub = h.commands[args[0]]
		remaining = args[1:]
	}
	ctx := &Context{Source: src, Args: remaining, Command: command, Sub: sub, h: h}

	err := h.run(ctx)
	if err == nil {
		return
	}
	var f *Failure
	if !errors.As(err, &f) {
		// Not a dispatch failure: the callback itself went wrong. The
		// source is not told about these.
		h.log.Errorf("ocmd: subcommand %s of /%s failed: %v", sub.Name, command, err)
		sentry.CaptureException(err)
		return
	}
	if f.msg == "" {
		return
	}
	msg := Colourize(f.msg)
	if f.prefix {
		msg = h.prefix + msg
	}
	src.SendMessage(msg)
}

// run checks the preconditions of the resolved subcommand in order and
// invokes its callback. The order of the checks is user-visible: a source
// violating several preconditions at once is told about the first one here.
func (h *Handler) run(ctx *Context) (err error) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(error)
			if !ok {
				e = oerror.New("%v", v)
			}
			name := "<unknown>"
			if ctx.Sub != nil {
				name = ctx.Sub.Name
			}
			h.log.Errorf("ocmd: panic running subcommand %s of /%s: %v", name, ctx.Command, e)
			sentry.CaptureException(e)
			err = Failf("&cAn internal error occurred while running this command.")
		}
	}()

	if ctx.Sub == nil {
		h.invalidCommand(ctx)
		return Silent()
	}
	sub := ctx.Sub
	if sub.PlayerOnly {
		if err := ctx.RequirePlayer(); err != nil {
			return err
		}
	}
	if err := ctx.RequireArgs(sub.MinArgs); err != nil {
		return err
	}
	switch {
	case sub.Permission == "" || sub.Access == AccessEveryone:
	case sub.Access == AccessNobody:
		return h.noPermission(ctx)
	default:
		if err := ctx.CheckPermission(sub.Permission); err != nil {
			return err
		}
	}
	return sub.Run(ctx)
}
