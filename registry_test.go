package ocmd

import "testing"

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	f()
}

func TestRegisterValidation(t *testing.T) {
	h := New(testLogger())
	run := func(*Context) error { return nil }

	expectPanic(t, "nil subcommand", func() { h.Register(nil) })
	expectPanic(t, "empty name", func() { h.Register(&Subcommand{Run: run}) })
	expectPanic(t, "whitespace name", func() { h.Register(&Subcommand{Name: "  ", Run: run}) })
	expectPanic(t, "nil callback", func() { h.Register(&Subcommand{Name: "x"}) })
	expectPanic(t, "negative min args", func() { h.Register(&Subcommand{Name: "x", MinArgs: -1, Run: run}) })
	expectPanic(t, "empty alias", func() { h.Register(&Subcommand{Name: "x", Aliases: []string{""}, Run: run}) })
}

func TestRegisterOverwrite(t *testing.T) {
	h := New(testLogger())
	run := func(*Context) error { return nil }

	first := &Subcommand{Name: "tp", Aliases: []string{"t"}, Run: run}
	second := &Subcommand{Name: "time", Aliases: []string{"t"}, Run: run}
	h.Register(first, second)

	// Last registration wins for the colliding alias.
	if sub, _ := h.Lookup("t"); sub != second {
		t.Errorf("Lookup(t) = %v, want the later registration", sub)
	}
	if sub, _ := h.Lookup("tp"); sub != first {
		t.Errorf("Lookup(tp) = %v, want the earlier registration", sub)
	}
}

func TestStrictRegistration(t *testing.T) {
	h := New(testLogger(), WithStrictRegistration())
	run := func(*Context) error { return nil }

	h.Register(&Subcommand{Name: "tp", Aliases: []string{"t"}, Run: run})
	expectPanic(t, "colliding name", func() { h.Register(&Subcommand{Name: "tp", Run: run}) })
	expectPanic(t, "colliding alias", func() { h.Register(&Subcommand{Name: "time", Aliases: []string{"t"}, Run: run}) })
	expectPanic(t, "name colliding with alias", func() { h.Register(&Subcommand{Name: "t", Run: run}) })
}

type containerCommands struct{}

func (containerCommands) Subcommands() []*Subcommand {
	run := func(*Context) error { return nil }
	return []*Subcommand{
		{Name: "kick", Run: run},
		{Name: "ban", Aliases: []string{"yeet"}, Run: run},
	}
}

func TestRegisterContainer(t *testing.T) {
	h := New(testLogger())
	h.RegisterContainer(containerCommands{})

	if len(h.Subcommands()) != 2 {
		t.Fatalf("registered %d subcommands, want 2", len(h.Subcommands()))
	}
	if _, ok := h.Lookup("yeet"); !ok {
		t.Error("alias of container subcommand not registered")
	}
}

func TestRegistrationOrderPreserved(t *testing.T) {
	h := New(testLogger())
	run := func(*Context) error { return nil }
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		h.Register(&Subcommand{Name: name, Run: run})
	}
	for i, sub := range h.Subcommands() {
		if sub.Name != names[i] {
			t.Fatalf("Subcommands()[%d] = %s, want %s", i, sub.Name, names[i])
		}
	}
}
