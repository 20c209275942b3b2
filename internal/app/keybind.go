package app

import (
	"fmt"
	"strings"
)

// Action is a semantic command reachable through a key binding.
type Action int

const (
	ActionAbout Action = iota
	ActionSettings
	ActionChangeCity
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAbout:
		return "about"
	case ActionSettings:
		return "settings"
	case ActionChangeCity:
		return "change city"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// togglesPanel reports whether the action only opens or closes the context
// panel. Those keys go to the dialog's text field while a dialog is open.
func (a Action) togglesPanel() bool {
	return a == ActionAbout || a == ActionSettings
}

// Message returns the message an action stands for.
func (a Action) Message() Message {
	switch a {
	case ActionAbout:
		return ToggleContextPage{Page: ContextAbout}
	case ActionSettings:
		return ToggleContextPage{Page: ContextSettings}
	case ActionChangeCity:
		return RequestCityChange{}
	case ActionQuit:
		return RequestQuit{}
	default:
		return nil
	}
}

// KeyBind maps a modifier set and key to an action.
type KeyBind struct {
	Mods   Modifiers
	Key    string
	Action Action
}

// String renders the bind the way terminals name keys, e.g. "ctrl+q".
func (b KeyBind) String() string {
	return b.Mods.String() + b.Key
}

// KeyBindings is an immutable ordered binding table.
type KeyBindings struct {
	binds []KeyBind
}

// NewKeyBindings builds a table. It panics if two binds share a modifier set and key.
func NewKeyBindings(binds ...KeyBind) KeyBindings {
	seen := make(map[KeyBind]Action, len(binds))
	table := make([]KeyBind, 0, len(binds))
	for _, b := range binds {
		b.Key = strings.ToLower(b.Key)
		k := KeyBind{Mods: b.Mods, Key: b.Key}
		if prev, ok := seen[k]; ok {
			panic(fmt.Sprintf("app: key %s bound to both %s and %s", k, prev, b.Action))
		}
		seen[k] = b.Action
		table = append(table, b)
	}
	return KeyBindings{binds: table}
}

// DefaultKeyBindings returns the application's fixed key table.
func DefaultKeyBindings() KeyBindings {
	return NewKeyBindings(
		KeyBind{Mods: ModCtrl, Key: "q", Action: ActionQuit},
		KeyBind{Mods: ModCtrl, Key: "l", Action: ActionChangeCity},
		KeyBind{Mods: ModCtrl, Key: "s", Action: ActionSettings},
		KeyBind{Mods: ModCtrl, Key: "a", Action: ActionAbout},
	)
}

// Lookup returns the action for the first bind matching mods and key exactly.
func (k KeyBindings) Lookup(mods Modifiers, key string) (Action, bool) {
	key = strings.ToLower(key)
	for _, b := range k.binds {
		if b.Mods == mods && b.Key == key {
			return b.Action, true
		}
	}
	return 0, false
}

// Binds returns the table in order.
func (k KeyBindings) Binds() []KeyBind {
	return append([]KeyBind(nil), k.binds...)
}

// KeyFor returns the first bind for an action.
func (k KeyBindings) KeyFor(a Action) (KeyBind, bool) {
	for _, b := range k.binds {
		if b.Action == a {
			return b, true
		}
	}
	return KeyBind{}, false
}
