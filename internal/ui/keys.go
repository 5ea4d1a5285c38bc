package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Home           key.Binding
	End            key.Binding
	Expand         key.Binding
	NextPage       key.Binding
	PrevPage       key.Binding
	NextCategory   key.Binding
	PrevCategory   key.Binding
	ToggleCategory key.Binding
	Back           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:           key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Home:           key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:            key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Expand:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read more")),
		NextPage:       key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("pgdn", "next page")),
		PrevPage:       key.NewBinding(key.WithKeys("pgup", "ctrl+p"), key.WithHelp("pgup", "prev page")),
		NextCategory:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		PrevCategory:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		ToggleCategory: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle category")),
		Back:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/quit")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Expand, k.NextPage, k.PrevPage, k.NextCategory, k.ToggleCategory, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.Expand},
		{k.NextPage, k.PrevPage},
		{k.NextCategory, k.PrevCategory, k.ToggleCategory},
		{k.Back, k.Quit},
	}
}
