package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const legendSteps = 20

func (m *model) titleView() string {
	if m.data.seq.Len() == 0 {
		return titleStyle.Render("sfheat") + dimStyle.Render("  no recording loaded")
	}
	_, hi := m.data.sliderRange()
	return titleStyle.Render(filepath.Base(m.data.currentFile)) +
		dimStyle.Render("  Posture: ") + postStyle.Render(m.data.posture) +
		dimStyle.Render(fmt.Sprintf("  Frame %d/%d", m.data.frameIdx, hi))
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{
		m.titleView(),
		bordered,
		m.renderLegend(contentW),
		m.footerView(contentW),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// slot is one terminal column of a grid line: its colours and the glyph
// drawn in it.
type slot struct {
	bg, fg string
	glyph  string
}

// renderGrid draws the visible columns of the current frame, one line per
// sensor row, with the hover border, brush highlight and floating label laid
// over the cell colours.
func (m *model) renderGrid() string {
	f := m.data.frame()
	if f == nil {
		return emptyStyle.Render("no frames loaded")
	}
	logging.Debugf("renderGrid frame=%d scrollX=%d zoom=%d", m.data.frameIdx, m.ui.scrollX, m.ui.layout.CellWidth)

	l := m.ui.layout
	first := m.ui.scrollX
	last := min(heatmap.Cols, first+m.visibleCols())
	width := (last - first) * l.CellWidth

	hoverRow, hoverCol, hovering := m.hoverCell()
	lines := make([][]slot, 0, heatmap.Rows*l.CellHeight)

	for r := 0; r < heatmap.Rows; r++ {
		for dy := 0; dy < l.CellHeight; dy++ {
			line := make([]slot, 0, width)
			for c := first; c < last; c++ {
				v, _ := f.Value(r, c)
				bg := m.scale.Hex(v)
				fg := m.scale.Contrast(v)
				glyphs := m.cellGlyphs(r, c, hovering && r == hoverRow && c == hoverCol)
				for dx := 0; dx < l.CellWidth; dx++ {
					g := " "
					if dy == 0 {
						g = glyphs[dx]
					}
					line = append(line, slot{bg: bg, fg: fg, glyph: g})
				}
			}
			lines = append(lines, line)
		}
	}

	if c, ok := m.hoverValue(); ok {
		m.overlayTooltip(lines, hoverLabel(c), width)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(renderSlots(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// cellGlyphs returns one glyph per terminal column of the cell.
func (m *model) cellGlyphs(row, col int, hovered bool) []string {
	w := m.ui.layout.CellWidth
	g := make([]string, w)
	for i := range g {
		g[i] = " "
	}
	switch {
	case m.ui.mode == modeHover && hovered:
		if w == 1 {
			g[0] = narrowHover
		} else {
			g[0], g[w-1] = hoverGlyphs[0], hoverGlyphs[1]
		}
	case m.ui.mode == modeBrush && m.brush.Selected(row, col):
		g[(w-1)/2] = selectedGlyph
	case m.ui.mode == modeBrush && hovered:
		g[(w-1)/2] = cursorGlyph
	}
	return g
}

// overlayTooltip writes label just above the pointer (below it on the top
// row), shifted left so it stays inside the visible width.
func (m *model) overlayTooltip(lines [][]slot, label string, width int) {
	if len(lines) == 0 || width <= 0 {
		return
	}
	p := m.ui.pointer
	y := p.Y - 1
	if y < 0 {
		y = p.Y + 1
	}
	if y < 0 || y >= len(lines) {
		return
	}
	labelW := runewidth.StringWidth(label)
	if labelW > width {
		label = runewidth.Truncate(label, width, "")
		labelW = runewidth.StringWidth(label)
	}
	x := p.X - m.ui.scrollX*m.ui.layout.CellWidth + 1
	if x+labelW > width {
		x = width - labelW
	}
	if x < 0 {
		x = 0
	}

	line := lines[y]
	for _, r := range label {
		if x >= len(line) {
			break
		}
		line[x] = slot{bg: tooltipBGColor, fg: tooltipFGColor, glyph: string(r)}
		x++
	}
}

func renderSlots(line []slot) string {
	var b strings.Builder
	var lastBG, lastFG string
	for _, s := range line {
		if s.bg != lastBG {
			b.WriteString(bgSeq(lipgloss.Color(s.bg)))
			lastBG = s.bg
		}
		if s.fg != lastFG {
			b.WriteString(fgSeq(lipgloss.Color(s.fg)))
			lastFG = s.fg
		}
		b.WriteString(s.glyph)
	}
	b.WriteString(termenv.CSI + "0m")
	return b.String()
}

// renderLegend draws the colour ramp across the domain with its end values.
func (m *model) renderLegend(width int) string {
	lo := fmt.Sprintf("%g ", heatmap.DomainMin)
	hi := fmt.Sprintf(" %g", heatmap.DomainMax)
	steps := min(legendSteps, width-len(lo)-len(hi))
	if steps < 2 {
		return ""
	}
	ramp := make([]slot, 0, steps)
	for _, v := range m.scale.Ticks(steps) {
		ramp = append(ramp, slot{bg: m.scale.Hex(v), fg: m.scale.Contrast(v), glyph: " "})
	}
	return dimStyle.Render(lo) + renderSlots(ramp) + dimStyle.Render(hi)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
