package main

import (
	"github.com/andareed/siftly-heatmap/dialogs"
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	OpenHelp    key.Binding
	ToggleBrush key.Binding
	BrushMark   key.Binding
	Cancel      key.Binding
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	PrevFrame   key.Binding
	NextFrame   key.Binding
	BackTen     key.Binding
	ForwardTen  key.Binding
	FirstFrame  key.Binding
	LastFrame   key.Binding
	Play        key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	OpenFile    key.Binding
	NextFile    key.Binding
	PrevFile    key.Binding
	Export      key.Binding
	Copy        key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ToggleBrush: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle brush selection"),
	),
	BrushMark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "brush: anchor / finish at cursor"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide pointer / clear selection"),
	),
	CursorUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "pointer up"),
	),
	CursorDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "pointer down"),
	),
	CursorLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "pointer left"),
	),
	CursorRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "pointer right"),
	),
	PrevFrame: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous frame"),
	),
	NextFrame: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next frame"),
	),
	BackTen: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "back 10 frames"),
	),
	ForwardTen: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "forward 10 frames"),
	),
	FirstFrame: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first frame"),
	),
	LastFrame: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last frame"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play / pause"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open recording"),
	),
	NextFile: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next recording"),
	),
	PrevFile: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous recording"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export frame to csv"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy reading / selection"),
	),
}

// HelpSections groups the bindings for the help overlay.
func (k Keymap) HelpSections() []dialogs.HelpSection {
	return []dialogs.HelpSection{
		{Title: "Grid", Bindings: []key.Binding{
			k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight,
			k.ZoomIn, k.ZoomOut, k.ToggleBrush, k.BrushMark, k.Cancel, k.Copy,
		}},
		{Title: "Frames", Bindings: []key.Binding{
			k.PrevFrame, k.NextFrame, k.BackTen, k.ForwardTen,
			k.FirstFrame, k.LastFrame, k.Play,
		}},
		{Title: "Files", Bindings: []key.Binding{
			k.OpenFile, k.NextFile, k.PrevFile, k.Export, k.OpenHelp, k.Quit,
		}},
	}
}
