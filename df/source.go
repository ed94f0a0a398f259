// Package df hooks an ocmd.Handler into a df-mc/dragonfly server, adapting
// dragonfly command sources and registering the parent command with
// dragonfly's command registry.
package df

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/google/uuid"
	"github.com/oomph-ac/ocmd"
)

// PermissionFunc reports whether the player passed holds a permission.
// Servers typically back this with their permission store. A nil
// PermissionFunc grants no permissions, leaving only subcommands without a
// permission (or with AccessEveryone) available to players.
type PermissionFunc func(p *player.Player, permission string) bool

// PlayerSource wraps a dragonfly player as an ocmd Source. It satisfies
// ocmd.Player, so player-only subcommands accept it.
type PlayerSource struct {
	p     *player.Player
	perms PermissionFunc
}

// NewPlayerSource returns a PlayerSource for the player passed, consulting
// perms for permission checks.
func NewPlayerSource(p *player.Player, perms PermissionFunc) *PlayerSource {
	return &PlayerSource{p: p, perms: perms}
}

// Player returns the underlying dragonfly player.
func (s *PlayerSource) Player() *player.Player {
	return s.p
}

// Name returns the name of the player.
func (s *PlayerSource) Name() string {
	return s.p.Name()
}

// UUID returns the unique ID of the player's account.
func (s *PlayerSource) UUID() uuid.UUID {
	return s.p.UUID()
}

// SendMessage sends a chat message to the player.
func (s *PlayerSource) SendMessage(msg string) {
	s.p.Message(msg)
}

// HasPermission consults the source's PermissionFunc.
func (s *PlayerSource) HasPermission(permission string) bool {
	if s.perms == nil {
		return false
	}
	return s.perms(s.p, permission)
}

// OutputSource routes replies into a dragonfly command output. It is used
// for sources that are not players, such as the console, and holds every
// permission.
type OutputSource struct {
	name string
	o    *cmd.Output
}

// NewOutputSource returns an OutputSource writing into o.
func NewOutputSource(name string, o *cmd.Output) *OutputSource {
	return &OutputSource{name: name, o: o}
}

// Name returns the name the source was created with.
func (s *OutputSource) Name() string {
	return s.name
}

// SendMessage writes the message into the command output.
func (s *OutputSource) SendMessage(msg string) {
	s.o.Printf("%s", msg)
}

// HasPermission always reports true.
func (s *OutputSource) HasPermission(string) bool {
	return true
}

// compile-time interface checks.
var (
	_ ocmd.Player = (*PlayerSource)(nil)
	_ ocmd.Source = (*OutputSource)(nil)
)
