package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-heatmap/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

const openPageSize = 12

var (
	openCursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9f1c")).Bold(true)
	openCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0"))
	openDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0"))
)

// Open lists the recordings in the data directory and lets the user pick one.
type Open struct {
	entries []catalog.Entry
	current string
	cursor  int
	offset  int
	visible bool
}

func (d Open) Init() tea.Cmd { return nil }

// NewOpenDialog shows entries with the cursor on the currently loaded file.
func NewOpenDialog(entries []catalog.Entry, current string) *Open {
	d := &Open{visible: true, current: current}
	d.SetEntries(entries)
	if i := catalog.IndexOf(entries, current); i >= 0 {
		d.cursor = i
		d.scrollToCursor()
	}
	return d
}

// SetEntries swaps the list, keeping the cursor on the same file if it's
// still there.
func (d *Open) SetEntries(entries []catalog.Entry) {
	selected := ""
	if d.cursor >= 0 && d.cursor < len(d.entries) {
		selected = d.entries[d.cursor].Path
	}
	d.entries = entries
	if i := catalog.IndexOf(entries, selected); i >= 0 {
		d.cursor = i
	} else if d.cursor >= len(entries) {
		d.cursor = max(0, len(entries)-1)
	}
	d.scrollToCursor()
}

// Selected returns the entry under the cursor.
func (d *Open) Selected() (catalog.Entry, bool) {
	if d.cursor < 0 || d.cursor >= len(d.entries) {
		return catalog.Entry{}, false
	}
	return d.entries[d.cursor], true
}

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch m.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.entries)-1 {
			d.cursor++
		}
	case "home", "g":
		d.cursor = 0
	case "end", "G":
		d.cursor = max(0, len(d.entries)-1)
	case "enter":
		e, ok := d.Selected()
		if !ok {
			return d, nil
		}
		return d, func() tea.Msg { return OpenConfirmedMsg{Path: e.Path} }
	case "esc", "q":
		return d, func() tea.Msg { return OpenCanceledMsg{} }
	}
	d.scrollToCursor()
	return d, nil
}

func (d *Open) scrollToCursor() {
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+openPageSize {
		d.offset = d.cursor - openPageSize + 1
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

func (d Open) View() string {
	if !d.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString("Open recording\n\n")
	if len(d.entries) == 0 {
		b.WriteString(openDimStyle.Render("no frame files in the data directory"))
	}
	end := min(len(d.entries), d.offset+openPageSize)
	for i := d.offset; i < end; i++ {
		e := d.entries[i]
		line := truncate.StringWithTail(fmt.Sprintf("%-14s %s", e.Name, e.Posture), 50, "…")
		prefix := "  "
		switch {
		case i == d.cursor:
			prefix = "▸ "
			line = openCursorStyle.Render(line)
		case e.Path == d.current:
			line = openCurrentStyle.Render(line)
		default:
			line = openDimStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}
	if len(d.entries) > openPageSize {
		b.WriteString(openDimStyle.Render(fmt.Sprintf("%d/%d", d.cursor+1, len(d.entries))) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("enter to open • esc to cancel"))
	return boxStyle().Render(b.String())
}

func (d *Open) Show()          { d.visible = true }
func (d *Open) Hide()          { d.visible = false }
func (d *Open) Focus() tea.Cmd { return nil }
func (d *Open) Blur()          {}
func (d Open) IsVisible() bool { return d.visible }
