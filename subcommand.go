package ocmd

// Access is the default audience of a permission-gated subcommand. It
// decides what happens when the permission store does not grant the
// subcommand's permission to a source explicitly.
type Access uint8

const (
	// AccessOperator denies sources that do not hold the permission. This
	// is the default for a zero Subcommand.
	AccessOperator Access = iota
	// AccessEveryone treats the permission as granted by default, making
	// it effectively informational.
	AccessEveryone
	// AccessNobody denies every source, even those holding the permission.
	// Useful for temporarily disabling a subcommand without unregistering
	// it.
	AccessNobody
)

// Subcommand describes a single sub-command of a parent command: its names,
// the preconditions checked before it runs, and the callback that runs it.
// A Subcommand must not be modified after it has been registered.
type Subcommand struct {
	// Name is the canonical name the subcommand is invoked by. It must not
	// be empty.
	Name string
	// Description is a short description shown in help listings.
	Description string
	// Parameters is the human readable usage string of the subcommand's
	// arguments, e.g. "<player> [amount]". It is echoed in the invalid
	// usage message.
	Parameters string
	// Aliases are alternate names that resolve to this subcommand.
	Aliases []string
	// HelpMenu holds the lines printed when help is requested for this
	// subcommand specifically. Colour codes are translated when printed.
	HelpMenu []string
	// Permission is the permission required to run the subcommand. An
	// empty string means no permission is required.
	Permission string
	// Access is the default audience of Permission.
	Access Access
	// MinArgs is the minimum amount of arguments the subcommand requires,
	// not counting the subcommand name itself.
	MinArgs int
	// PlayerOnly restricts the subcommand to sources backed by an in-game
	// player.
	PlayerOnly bool
	// TabComplete holds completion hints for the subcommand's first
	// argument, sent to clients through the completion package.
	TabComplete []string
	// Run is the callback executed once all preconditions have passed. A
	// returned *Failure is relayed to the source; any other error is
	// logged and reported, but not shown to the source.
	Run func(ctx *Context) error
}

// VisibleTo reports whether the subcommand should be shown to the source in
// help listings and client-side completions. It mirrors the permission
// precondition checked on dispatch.
func (sub *Subcommand) VisibleTo(src Source) bool {
	switch {
	case sub.Permission == "" || sub.Access == AccessEveryone:
		return true
	case sub.Access == AccessNobody:
		return false
	default:
		return src.HasPermission(sub.Permission)
	}
}

// Container may be implemented to register a group of related subcommands
// in a single call through Handler.RegisterContainer.
type Container interface {
	// Subcommands returns the subcommands the container provides.
	Subcommands() []*Subcommand
}
