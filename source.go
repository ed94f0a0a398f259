package ocmd

import "github.com/google/uuid"

// Source is the entity that executed a command: a player, the console, or
// anything else the host server lets run commands.
type Source interface {
	// Name returns the display name of the source, used in logs.
	Name() string
	// SendMessage sends a raw chat message to the source.
	SendMessage(msg string)
	// HasPermission reports whether the source holds the permission
	// passed.
	HasPermission(permission string) bool
}

// Player is a Source backed by an in-game player. Subcommands with
// PlayerOnly set require the source to implement Player.
type Player interface {
	Source
	// UUID returns the unique ID of the player's account.
	UUID() uuid.UUID
}
