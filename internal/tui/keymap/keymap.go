// Package keymap builds the TUI key bindings from configuration.
package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/msgview/internal/core/config"
)

// KeyMap holds the bindings shared by every view.
type KeyMap struct {
	Activate  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	NextTab   key.Binding
	Close     key.Binding
	Quit      key.Binding
}

// New builds a KeyMap from the configured keys.
func New(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Activate:  binding(keys.Activate, "activate"),
		NextFocus: binding(keys.NextFocus, "next"),
		PrevFocus: binding(keys.PrevFocus, "previous"),
		NextTab:   binding(keys.NextTab, "next tab"),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      binding(keys.Quit, "quit"),
	}
}

// Default returns the KeyMap for the default configuration.
func Default() KeyMap {
	return New(config.DefaultConfig().TUI.Keys)
}

func binding(keys []string, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// Help renders a one-line summary of the given bindings.
func Help(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
