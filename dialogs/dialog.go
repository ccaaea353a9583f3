package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is the common interface all dialogs (Open, Export, Help) implement.
// It keeps your model logic generic.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

// boxStyle is the frame every dialog draws itself in.
func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")). // keep your light border
		BorderBackground(lipgloss.Color("236")). // match the overlay
		Padding(1, 2).
		Width(60)
}

var hintStyle = lipgloss.NewStyle().Faint(true)
