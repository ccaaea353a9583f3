package dialogs

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

var exportErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5484d"))

// Export asks where the displayed frame should be written as CSV.
type Export struct {
	input   textinput.Model
	dir     string // relative paths resolve against this
	problem string
	visible bool
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, dir string) *Export {
	ti := textinput.New()
	ti.Prompt = "Export frame as: "
	ti.Placeholder = defaultName
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(defaultName)
	ti.CursorEnd()
	ti.Focus()
	return &Export{input: ti, dir: dir, visible: true}
}

// resolve turns what was typed into the file to write. A blank entry falls
// back to the suggested name and a missing extension becomes .csv.
func (d *Export) resolve() (string, bool) {
	name := strings.TrimSpace(d.input.Value())
	if name == "" {
		name = d.input.Placeholder
	}
	if name == "" || strings.HasSuffix(name, string(filepath.Separator)) {
		return "", false
	}
	if filepath.Ext(name) == "" {
		name += ".csv"
	}
	if !filepath.IsAbs(name) && d.dir != "" {
		name = filepath.Join(d.dir, name)
	}
	return filepath.Clean(name), true
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			path, ok := d.resolve()
			if !ok {
				d.problem = "need a file name"
				return d, nil
			}
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	d.problem = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	lines := []string{"Export frame to CSV", "", d.input.View()}
	if d.problem != "" {
		lines = append(lines, exportErrStyle.Render(d.problem))
	}
	if d.dir != "" {
		lines = append(lines, hintStyle.Render("relative to "+d.dir))
	}
	lines = append(lines, "", hintStyle.Render("enter to export • esc to cancel"))
	return boxStyle().Render(strings.Join(lines, "\n"))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
