package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyStringHasItsBinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, binding.Keys(), s, "binding of %q", s)
	}
}

func TestEveryBindingHasHelp(t *testing.T) {
	for name, binding := range GlobalkeyBindings {
		assert.NotEmpty(t, binding.Help().Key, "key %d", name)
		assert.NotEmpty(t, binding.Help().Desc, "key %d", name)
		for _, k := range binding.Keys() {
			assert.Equal(t, name, GlobalKeyStringsMap[k], "%q is reachable", k)
		}
	}
}

func TestBindingsMatchKeyMessages(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyF12}, GlobalkeyBindings[KeySecurity]))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, GlobalkeyBindings[KeyCycle]))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, GlobalkeyBindings[KeySearch]))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, GlobalkeyBindings[KeySort]))
}
