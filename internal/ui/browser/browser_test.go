package browser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/registry"
)

func seededRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	_, err := r.Define("statuses", "draft", "in_review", "published")
	require.NoError(t, err)
	_, err = r.Define("roles", "admin", "user")
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := New(seededRegistry(t), nil)

	msg := m.loadCmd()()
	loaded, ok := msg.(enumsLoadedMsg)
	require.True(t, ok, "expected enumsLoadedMsg, got %T", msg)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	next, _ = next.Update(loaded)
	return next.(Model)
}

func TestModel_LoadsEnums(t *testing.T) {
	m := loadedModel(t)

	require.Len(t, m.enums, 2)
	selected, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "statuses", selected.Name)
}

func TestModel_Navigation(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	selected, _ := m.Selected()
	require.Equal(t, "roles", selected.Name)

	// Moving past the end stays put
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	selected, _ = m.Selected()
	require.Equal(t, "roles", selected.Name)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	selected, _ = m.Selected()
	require.Equal(t, "statuses", selected.Name)
}

func TestModel_SwitchPane(t *testing.T) {
	m := loadedModel(t)
	require.Equal(t, focusList, m.focus)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, focusValues, m.focus)

	// List navigation is suspended while the values pane has focus
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	selected, _ := m.Selected()
	require.Equal(t, "statuses", selected.Name)
}

func TestModel_View(t *testing.T) {
	view := ansi.Strip(loadedModel(t).View())

	require.Contains(t, view, "Enums")
	require.Contains(t, view, "statuses")
	require.Contains(t, view, "roles")
	require.Contains(t, view, "draft")
	require.Contains(t, view, "q quit")
}

func TestModel_ViewShowsCounts(t *testing.T) {
	m := New(seededRegistry(t), nil, WithCounts())

	msg := m.loadCmd()()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	next, _ = next.Update(msg)

	view := ansi.Strip(next.(Model).View())
	require.Contains(t, view, "statuses (3)")
	require.Contains(t, view, "roles (2)")
}

func TestModel_LoadFailure(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(badPath, []byte("statuses: nope"), 0644))

	r := registry.New(registry.WithSources(badPath))
	t.Cleanup(r.Close)
	m := New(r, nil)

	msg := m.loadCmd()()
	failed, ok := msg.(loadFailedMsg)
	require.True(t, ok, "expected loadFailedMsg, got %T", msg)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	next, _ = next.Update(failed)

	view := ansi.Strip(next.(Model).View())
	require.Contains(t, view, "Failed to load sources")
}

func TestBrowser_EndToEnd(t *testing.T) {
	tm := teatest.NewTestModel(t, New(seededRegistry(t), nil),
		teatest.WithInitialTermSize(90, 30))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("statuses"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
