package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings. Letters are left to the text input, so every
// action sits on a control key.
type keyMap struct {
	Submit      key.Binding
	NewWords    key.Binding
	NewTheme    key.Binding
	ClearTheme  key.Binding
	ToggleTimer key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log")),
		NewWords:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new words")),
		NewTheme:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new theme")),
		ClearTheme:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "remove theme")),
		ToggleTimer: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "timer")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NewWords, k.NewTheme, k.ClearTheme, k.ToggleTimer, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewWords, k.ToggleTimer},
		{k.NewTheme, k.ClearTheme, k.Quit},
	}
}
