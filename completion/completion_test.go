package completion

import (
	"io"
	"testing"

	"github.com/oomph-ac/ocmd"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

type mockSource struct {
	perms map[string]bool
}

func (s *mockSource) Name() string                   { return "Steve" }
func (s *mockSource) SendMessage(string)             {}
func (s *mockSource) HasPermission(perm string) bool { return s.perms[perm] }

func testHandler() *ocmd.Handler {
	log := logrus.New()
	log.Out = io.Discard
	h := ocmd.New(log)
	run := func(*ocmd.Context) error { return nil }
	h.Register(
		&ocmd.Subcommand{Name: "heal", Aliases: []string{"h"}, Run: run},
		&ocmd.Subcommand{Name: "gamemode", TabComplete: []string{"survival", "creative"}, MinArgs: 1, Run: run},
		&ocmd.Subcommand{Name: "ban", Permission: "test.ban", Parameters: "<player>", Run: run},
	)
	return h
}

func TestAppend(t *testing.T) {
	h := testHandler()
	pk := &packet.AvailableCommands{}
	Append(pk, "example", "Example sub-commands", []string{"ex"}, &mockSource{}, h)

	if len(pk.Commands) != 1 {
		t.Fatalf("appended %d commands, want 1", len(pk.Commands))
	}
	cmd := pk.Commands[0]
	if cmd.Name != "example" {
		t.Errorf("command name = %q", cmd.Name)
	}
	// heal and gamemode are visible, ban requires an unheld permission.
	if len(cmd.Overloads) != 2 {
		t.Fatalf("built %d overloads, want 2: %#v", len(cmd.Overloads), cmd.Overloads)
	}
	if cmd.AliasesOffset == ^uint32(0) {
		t.Error("AliasesOffset not set despite aliases")
	}

	// The gamemode overload carries its hints as a soft enum.
	if len(pk.DynamicEnums) != 1 {
		t.Fatalf("created %d dynamic enums, want 1", len(pk.DynamicEnums))
	}
	if got := pk.DynamicEnums[0].Values; len(got) != 2 || got[0] != "survival" {
		t.Errorf("hint enum values = %q", got)
	}
	// Its second parameter must be required, since the subcommand needs an
	// argument.
	gm := cmd.Overloads[1]
	if len(gm.Parameters) != 2 || gm.Parameters[1].Optional {
		t.Errorf("gamemode overload parameters = %#v", gm.Parameters)
	}
}

func TestAppendPermissionFilter(t *testing.T) {
	h := testHandler()
	pk := &packet.AvailableCommands{}
	Append(pk, "example", "", nil, &mockSource{perms: map[string]bool{"test.ban": true}}, h)

	if len(pk.Commands) != 1 || len(pk.Commands[0].Overloads) != 3 {
		t.Fatalf("expected all three overloads for a permitted source: %#v", pk.Commands)
	}
	if pk.Commands[0].AliasesOffset != ^uint32(0) {
		t.Error("AliasesOffset set despite no aliases")
	}
}

func TestAppendNothingVisible(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard
	h := ocmd.New(log)
	h.Register(&ocmd.Subcommand{Name: "ban", Permission: "test.ban", Run: func(*ocmd.Context) error { return nil }})

	pk := &packet.AvailableCommands{}
	Append(pk, "example", "", nil, &mockSource{}, h)
	if len(pk.Commands) != 0 {
		t.Fatalf("command appended although no subcommand is visible: %#v", pk.Commands)
	}
}

func TestEnumValueDeduplication(t *testing.T) {
	pk := &packet.AvailableCommands{}
	first := enumIndex(pk, "a", []string{"one", "two"})
	second := enumIndex(pk, "b", []string{"two", "three"})
	if first == second {
		t.Fatal("distinct enum types share an index")
	}
	if len(pk.EnumValues) != 3 {
		t.Errorf("EnumValues = %q, want deduplicated [one two three]", pk.EnumValues)
	}
	// Asking for an existing type returns the same index without appending.
	if again := enumIndex(pk, "a", []string{"one"}); again != first {
		t.Errorf("enumIndex(a) = %d, want %d", again, first)
	}
	if len(pk.Enums) != 2 {
		t.Errorf("created %d enums, want 2", len(pk.Enums))
	}
}
