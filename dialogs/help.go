package dialogs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpSection is one titled group of bindings in the help overlay.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

var (
	helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f1c"))
	helpKeyStyle   = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("#4cc9f0"))
)

type Help struct {
	sections []HelpSection
	visible  bool
}

func (d Help) Init() tea.Cmd { return nil }

func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{sections: sections, visible: true}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	var b strings.Builder
	for i, s := range d.sections {
		rows := make([]string, 0, len(s.Bindings))
		for _, kb := range s.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			rows = append(rows, helpKeyStyle.Render(h.Key)+h.Desc)
		}
		if len(rows) == 0 {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpTitleStyle.Render(s.Title) + "\n")
		b.WriteString(strings.Join(rows, "\n") + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("enter/esc to return"))
	return boxStyle().Render(b.String())
}

func (d *Help) Show()          { d.visible = true }
func (d *Help) Hide()          { d.visible = false }
func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
