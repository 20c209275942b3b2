package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeyBindings(t *testing.T) {
	keys := DefaultKeyBindings()

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"l", ActionChangeCity},
		{"s", ActionSettings},
		{"a", ActionAbout},
		{"Q", ActionQuit},
	}
	for _, tt := range tests {
		got, ok := keys.Lookup(ModCtrl, tt.key)
		require.True(t, ok, "ctrl+%s should be bound", tt.key)
		require.Equal(t, tt.want, got)
	}

	_, ok := keys.Lookup(0, "q")
	require.False(t, ok, "plain q must not quit")
	_, ok = keys.Lookup(ModCtrl|ModAlt, "q")
	require.False(t, ok, "modifier sets must match exactly")
}

func TestNewKeyBindings_PanicsOnDuplicate(t *testing.T) {
	require.Panics(t, func() {
		NewKeyBindings(
			KeyBind{Mods: ModCtrl, Key: "x", Action: ActionQuit},
			KeyBind{Mods: ModCtrl, Key: "X", Action: ActionAbout},
		)
	})

	require.NotPanics(t, func() {
		NewKeyBindings(
			KeyBind{Mods: ModCtrl, Key: "x", Action: ActionQuit},
			KeyBind{Mods: ModAlt, Key: "x", Action: ActionAbout},
		)
	})
}

func TestActionMessages(t *testing.T) {
	require.Equal(t, ToggleContextPage{Page: ContextAbout}, ActionAbout.Message())
	require.Equal(t, ToggleContextPage{Page: ContextSettings}, ActionSettings.Message())
	require.Equal(t, RequestCityChange{}, ActionChangeCity.Message())
	require.Equal(t, RequestQuit{}, ActionQuit.Message())
}

func TestKeyBindString(t *testing.T) {
	b, ok := DefaultKeyBindings().KeyFor(ActionQuit)
	require.True(t, ok)
	require.Equal(t, "ctrl+q", b.String())
}
