package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_ToggleBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"ctrl+k"}, km.Toggle.Keys())
}

func TestDefaultKeyMap_UpDownBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "ctrl+p")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "ctrl+n")
}

func TestDefaultKeyMap_NoPrintableSearchKeys(t *testing.T) {
	km := DefaultKeyMap()

	// Printable keys would be swallowed while typing a query.
	for _, b := range []key.Binding{km.Toggle, km.Up, km.Down, km.Select, km.Cancel, km.RemoveRecent, km.ClearRecent} {
		for _, k := range b.Keys() {
			assert.Greater(t, len(k), 1, "key %q is printable", k)
		}
	}
}

func TestKeyMap_Action(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected domain.KeyAction
	}{
		{"ctrl+k", domain.KeyToggle},
		{"down", domain.KeyNext},
		{"ctrl+n", domain.KeyNext},
		{"up", domain.KeyPrevious},
		{"ctrl+p", domain.KeyPrevious},
		{"enter", domain.KeyConfirm},
		{"esc", domain.KeyDismiss},
		{"a", domain.KeyNone},
		{"ctrl+d", domain.KeyNone},
		{"q", domain.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, km.Action(tt.key))
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 3)
	assert.Equal(t, km.Toggle, bindings[0])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 4) // Toggle, Up, Down, Select
	assert.Len(t, bindings[1], 4) // Back, Cancel, RemoveRecent, ClearRecent
	assert.Len(t, bindings[2], 2) // Help, Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("ctrl+d", km.RemoveRecent))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Back", km.Back},
		{"Toggle", km.Toggle},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Select", km.Select},
		{"Cancel", km.Cancel},
		{"RemoveRecent", km.RemoveRecent},
		{"ClearRecent", km.ClearRecent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
