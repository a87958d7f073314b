package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// heroKeyMap holds the bindings of the hero screen
type heroKeyMap struct {
	Start key.Binding
	Quit  key.Binding
}

func (k heroKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

func (k heroKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// chatKeyMap holds the bindings of the chat screen
type chatKeyMap struct {
	Send    key.Binding
	Back    key.Binding
	Dismiss key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func (k chatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Back, k.Dismiss, k.Up, k.Quit}
}

func (k chatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Back, k.Dismiss},
		{k.Up, k.Down, k.Quit},
	}
}

var heroKeys = heroKeyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "iniciar conversa"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "sair"),
	),
}

var chatKeys = chatKeyMap{
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "enviar"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "voltar ao início"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "fechar aviso"),
	),
	Up: key.NewBinding(
		key.WithKeys("pgup", "up"),
		key.WithHelp("↑/pgup", "rolar"),
	),
	Down: key.NewBinding(
		key.WithKeys("pgdown", "down"),
		key.WithHelp("↓/pgdn", "rolar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "sair"),
	),
}
