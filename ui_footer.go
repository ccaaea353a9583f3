package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-heatmap/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type footerState struct {
	Mode    string
	Playing bool

	FileName string
	Posture  string

	Frame     int
	LastFrame int
	Zoom      int

	Max  float64
	Mean float64

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	BrushBG    lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		BrushBG:    lipgloss.Color("#4cc9f0"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// statusLine picks what the second footer line reports: a pending notice
// wins, then the brush stats, then the hovered reading.
func (m *model) statusLine() string {
	if m.ui.noticeMsg != "" {
		return noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if m.ui.loading {
		return "Loading…"
	}
	if m.ui.mode == modeBrush || (m.ui.mode == modeDialog && m.ui.prevMode == modeBrush) {
		return m.brush.Stats().String()
	}
	if c, ok := m.hoverValue(); ok {
		return fmt.Sprintf("Pressure: %.1f at row %d, col %d", c.Value, c.Row, c.Col)
	}
	return ""
}

// footerView renders the 2-line footer.
// width is the content width the footer has to fill.
func (m *model) footerView(width int) string {
	_, hi := m.data.sliderRange()
	st := footerState{
		Mode:          m.ui.mode.String(),
		Playing:       m.ui.playing,
		FileName:      m.data.currentFile,
		Posture:       m.data.posture,
		Frame:         m.data.frameIdx,
		LastFrame:     hi,
		Zoom:          m.ui.layout.CellWidth,
		Max:           m.data.summary.Max,
		Mean:          m.data.summary.Mean,
		StatusMessage: m.statusLine(),
		Legend:        "(? help · b brush · [ ] frame · p play · o open)",
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d yoff=%d sx=%d ptr=%d,%d in=%v",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.viewport.YOffset, m.ui.scrollX, m.ui.pointer.X, m.ui.pointer.Y, m.ui.pointerIn,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	if st.Frame < 0 {
		st.Frame = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" max %.1f · mean %.1f", st.Max, st.Mean)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	statusPlain := fmt.Sprintf("[FRAME: %d/%d] · [ZOOM: %dx]", st.Frame, st.LastFrame, st.Zoom)
	modeText := modeLabel(st)
	modeColW := min(runeWidth(modeText)+2, leftW)
	statusColW := min(runeWidth(statusPlain), max(0, leftW-modeColW-gapW))
	fileColW := max(0, leftW-modeColW-statusColW-2*gapW)

	pillBG := styles.ModePillBG
	if st.Mode == modeBrush.String() {
		pillBG = styles.BrushBG
	}
	modeSeg := renderModeSegment(modeColW, modeText, pillBG, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := applyFG(padRightPlain(truncatePlain(statusPlain, statusColW), statusColW), styles.DimFG, styles.TextFG)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	leftWActual := modeColW + fileColW + statusColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(0, width-legendW)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func modeLabel(st footerState) string {
	if st.Playing {
		return st.Mode + " ▶"
	}
	return st.Mode
}

func renderModeSegment(colW int, text string, bg lipgloss.Color, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+text+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(bg) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	remaining := colW - runeWidth(filePlain)

	posturePlain := ""
	if remaining > 0 && st.Posture != "" {
		posturePlain = truncatePlain(" ▸ "+st.Posture, remaining)
		remaining -= runeWidth(posturePlain)
	}
	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + posturePlain + pad
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
