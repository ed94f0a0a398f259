package ocmd

import "github.com/oomph-ac/ocmd/assert"

// Register registers the subcommands passed, making each resolvable by its
// canonical name and by every one of its aliases. A subcommand missing
// required metadata makes Register panic: that is a defect in the program,
// not a runtime condition. Unless the handler was created with
// WithStrictRegistration, a name or alias that is already taken silently
// overwrites the earlier registration.
func (h *Handler) Register(subs ...*Subcommand) {
	for _, sub := range subs {
		h.register(sub)
	}
}

// RegisterContainer registers every subcommand provided by the container
// passed.
func (h *Handler) RegisterContainer(c Container) {
	h.Register(c.Subcommands()...)
}

func (h *Handler) register(sub *Subcommand) {
	assert.IsTrue(sub != nil, "ocmd: Register called with a nil subcommand")
	assert.NotEmpty(sub.Name, "ocmd: subcommand has no name")
	assert.IsTrue(sub.Run != nil, "ocmd: subcommand %s has no Run callback", sub.Name)
	assert.IsTrue(sub.MinArgs >= 0, "ocmd: subcommand %s has a negative minimum argument count", sub.Name)
	for _, alias := range sub.Aliases {
		assert.NotEmpty(alias, "ocmd: subcommand %s has an empty alias", sub.Name)
	}

	if h.strict {
		h.assertFree(sub.Name)
		for _, alias := range sub.Aliases {
			h.assertFree(alias)
		}
	}
	h.commands[sub.Name] = sub
	h.names.Set(sub.Name, sub)
	for _, alias := range sub.Aliases {
		h.commands[alias] = sub
	}
	h.log.Debugf("ocmd: registered subcommand %s (aliases: %v)", sub.Name, sub.Aliases)
}

func (h *Handler) assertFree(name string) {
	_, taken := h.commands[name]
	assert.IsTrue(!taken, "ocmd: subcommand name %q is already registered", name)
}

// Lookup returns the subcommand registered under the name or alias passed.
func (h *Handler) Lookup(name string) (*Subcommand, bool) {
	sub, ok := h.commands[name]
	return sub, ok
}

// Subcommands returns every registered subcommand in registration order,
// once each regardless of how many aliases it has.
func (h *Handler) Subcommands() []*Subcommand {
	subs := make([]*Subcommand, 0, h.names.Len())
	for _, name := range h.names.Keys() {
		sub, _ := h.names.Get(name)
		subs = append(subs, sub)
	}
	return subs
}
