// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Toggle opens or closes the search surface from any view.
	Toggle key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel closes the search surface.
	Cancel key.Binding

	// RemoveRecent deletes the highlighted recent search.
	RemoveRecent key.Binding

	// ClearRecent empties the recent-search history.
	ClearRecent key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		RemoveRecent: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove"),
		),
		ClearRecent: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all"),
		),
	}
}

// Action translates a key press into the search controller's vocabulary.
// Only the search keys are mapped; everything else is domain.KeyNone.
func (k *KeyMap) Action(keyStr string) domain.KeyAction {
	switch {
	case Matches(keyStr, k.Toggle):
		return domain.KeyToggle
	case Matches(keyStr, k.Down):
		return domain.KeyNext
	case Matches(keyStr, k.Up):
		return domain.KeyPrevious
	case Matches(keyStr, k.Select):
		return domain.KeyConfirm
	case Matches(keyStr, k.Cancel):
		return domain.KeyDismiss
	default:
		return domain.KeyNone
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

// SearchHelp returns keybindings for the search surface.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// RecentHelp returns keybindings for the recent-search pane.
func (k *KeyMap) RecentHelp() []key.Binding {
	return []key.Binding{k.Select, k.RemoveRecent, k.ClearRecent, k.Cancel}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Up, k.Down, k.Select},
		{k.Back, k.Cancel, k.RemoveRecent, k.ClearRecent},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
