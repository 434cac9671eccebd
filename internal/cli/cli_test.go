package cli

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/packista/packista/pkg/composer"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"latest", "version", "versions", "info", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"registry", "no-cache"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}

func TestStabilityLabel(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"1.2.3", ""},
		{"v2.0.0", ""},
		{"1.0.0-pl1", ""},
		{"2.0.0-beta1", "(beta)"},
		{"2.0.0-alpha2", "(alpha)"},
		{"3.0.0-RC1", "(RC)"},
		{"dev-master", "(dev)"},
		{"2.x-dev", "(dev)"},
	}
	for _, tt := range tests {
		if got := stabilityLabel(tt.version); got != tt.want {
			t.Errorf("stabilityLabel(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestVersionListModelNavigation(t *testing.T) {
	versions := composer.VersionList{
		{"version": "3.0.0"},
		{"version": "2.0.0"},
		{"version": "1.0.0"},
	}
	m := newVersionListModel("acme/widget", versions)

	key := func(s string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	next, _ := m.Update(key("j"))
	m = next.(versionListModel)
	if m.cursor != 1 {
		t.Fatalf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(key("k"))
	m = next.(versionListModel)
	if m.cursor != 0 {
		t.Fatalf("cursor after up = %d, want 0", m.cursor)
	}

	// Cursor never moves above the first entry.
	next, _ = m.Update(key("k"))
	m = next.(versionListModel)
	if m.cursor != 0 {
		t.Fatalf("cursor clamped = %d, want 0", m.cursor)
	}
}

func TestVersionListModelSelect(t *testing.T) {
	versions := composer.VersionList{
		{"version": "3.0.0"},
		{"version": "2.0.0"},
	}
	m := newVersionListModel("acme/widget", versions)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(versionListModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(versionListModel)

	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if v, _ := m.selected.Version(); v != "2.0.0" {
		t.Errorf("selected version = %q, want %q", v, "2.0.0")
	}
}

func TestVersionListModelQuit(t *testing.T) {
	m := newVersionListModel("acme/widget", composer.VersionList{{"version": "1.0.0"}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(versionListModel)

	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if m.selected != nil {
		t.Error("quitting without enter should leave nothing selected")
	}
}
