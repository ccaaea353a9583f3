package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/siftly-heatmap/heatmap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func frameOf(v float64) heatmap.Frame {
	f := make(heatmap.Frame, heatmap.Rows)
	for r := range f {
		f[r] = make([]float64, heatmap.Cols)
		for c := range f[r] {
			f[r][c] = v
		}
	}
	return f
}

// gradientFrame puts row*10+col in each cell so positions are recognisable.
func gradientFrame() heatmap.Frame {
	f := frameOf(0)
	for r := range f {
		for c := range f[r] {
			f[r][c] = float64(r*10 + c)
		}
	}
	return f
}

func writeRecording(t *testing.T, dir, name string, frames ...heatmap.Frame) string {
	t.Helper()
	body, err := json.Marshal(frames)
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, body, 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestModel(t *testing.T, dir string) *model {
	t.Helper()
	m := newModel(config{dataDir: dir, zoom: 2, fps: 10, frameTick: time.Second / 10})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	return m
}

// load runs the load command synchronously and feeds its result back.
func load(t *testing.T, m *model, path string) tea.Msg {
	t.Helper()
	msg := m.loadFrames(path)()
	m.Update(msg)
	return msg
}

func press(m *model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func mouse(m *model, action tea.MouseAction, button tea.MouseButton, x, y int) {
	m.Update(tea.MouseMsg{X: gridOriginX + x, Y: gridOriginY + y, Action: action, Button: button})
}

func screen(m *model) string {
	return ansi.Strip(m.View())
}

func TestLoadShowsPostureAndResetsFrame(t *testing.T) {
	dir := t.TempDir()
	p := writeRecording(t, dir, "13.json", frameOf(1), frameOf(2), frameOf(3))
	m := newTestModel(t, dir)

	load(t, m, p)
	press(m, "]", "]")
	if m.data.frameIdx != 2 {
		t.Fatalf("frame = %d, want 2", m.data.frameIdx)
	}

	load(t, m, p)
	if m.data.frameIdx != 0 {
		t.Fatalf("reload should rewind to frame 0, got %d", m.data.frameIdx)
	}
	if m.data.posture != "Right Fetus" {
		t.Fatalf("posture = %q", m.data.posture)
	}
	if !strings.Contains(screen(m), "Posture: Right Fetus") {
		t.Fatalf("screen does not show the posture:\n%s", screen(m))
	}
}

func TestSliderRangeMatchesFrameCount(t *testing.T) {
	dir := t.TempDir()
	frames := make([]heatmap.Frame, 5)
	for i := range frames {
		frames[i] = frameOf(float64(i))
	}
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", frames...))

	lo, hi := m.data.sliderRange()
	if lo != 0 || hi != 4 {
		t.Fatalf("slider range = [%d,%d], want [0,4]", lo, hi)
	}

	press(m, "}", "}")
	if m.data.frameIdx != 4 {
		t.Fatalf("forward past the end = %d, want 4", m.data.frameIdx)
	}
	press(m, "[")
	if m.data.frameIdx != 3 || m.data.summary.Mean != 3 {
		t.Fatalf("frame %d mean %v, want 3/3", m.data.frameIdx, m.data.summary.Mean)
	}
	press(m, "{")
	if m.data.frameIdx != 0 {
		t.Fatalf("back past the start = %d, want 0", m.data.frameIdx)
	}
	press(m, "G")
	if m.data.frameIdx != 4 {
		t.Fatalf("G = %d, want 4", m.data.frameIdx)
	}
	press(m, "g")
	if m.data.frameIdx != 0 {
		t.Fatalf("g = %d, want 0", m.data.frameIdx)
	}
}

func TestLoadFailureKeepsPreviousFrames(t *testing.T) {
	dir := t.TempDir()
	good := writeRecording(t, dir, "1.json", frameOf(7))
	bad := filepath.Join(dir, "2.json")
	os.WriteFile(bad, []byte(`[[[1,2,3]]]`), 0o600)

	m := newTestModel(t, dir)
	load(t, m, good)

	msg := load(t, m, bad)
	if _, ok := msg.(framesLoadFailedMsg); !ok {
		t.Fatalf("expected a failure, got %T", msg)
	}
	if m.data.currentFile != good || m.data.frame()[0][0] != 7 {
		t.Fatalf("previous recording was replaced")
	}
	if m.ui.noticeType != noticeError {
		t.Fatalf("failure should raise an error notice, got %q", m.ui.noticeType)
	}

	load(t, m, filepath.Join(dir, "missing.json"))
	if m.data.currentFile != good {
		t.Fatalf("missing file replaced the recording")
	}
}

func TestHoverShowsValueOnlyWithoutBrush(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))
	m.ui.noticeMsg = ""

	// zoom 2: x=5 is column 2, y=3 is row 3
	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 5, 3)
	c, ok := m.hoverValue()
	if !ok || c.Row != 3 || c.Col != 2 || c.Value != 32 {
		t.Fatalf("hover = %+v, %v", c, ok)
	}
	out := screen(m)
	if !strings.Contains(out, "Pressure: 32.0") {
		t.Fatalf("tooltip missing:\n%s", out)
	}
	if !strings.Contains(out, "[]") {
		t.Fatalf("hovered cell border missing")
	}

	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 9, 3)
	if c, _ := m.hoverValue(); c.Col != 4 {
		t.Fatalf("tooltip did not follow the pointer: %+v", c)
	}

	// off the grid: pointer out
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if _, ok := m.hoverValue(); ok {
		t.Fatalf("hover should end when the pointer leaves the grid")
	}
	if strings.Contains(screen(m), "Pressure: ") {
		t.Fatalf("tooltip still visible after pointer left")
	}

	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 5, 3)
	press(m, "b")
	if _, ok := m.hoverValue(); ok {
		t.Fatalf("hover must be inactive in brush mode")
	}
}

func TestBrushDragReportsMean(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))

	press(m, "b")
	if m.ui.mode != modeBrush {
		t.Fatalf("b should enter brush mode")
	}
	m.ui.noticeMsg = ""

	// zoom 2: x in [0,4) and y in [0,2) covers cols 0-1, rows 0-1
	mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 0, 0)
	mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 3, 1)
	if st := m.brush.Stats(); st.Count != 4 {
		t.Fatalf("stats should update while dragging: %+v", st)
	}
	mouse(m, tea.MouseActionRelease, tea.MouseButtonNone, 3, 1)

	st := m.brush.Stats()
	// cells 0, 1, 10, 11
	if st.Count != 4 || st.Mean != 5.5 {
		t.Fatalf("brush = %+v, want 4 cells at 5.5", st)
	}
	if got := m.statusLine(); got != "4 cells, Avg Pressure: 5.50" {
		t.Fatalf("status = %q", got)
	}

	press(m, "]") // frame change keeps the rectangle
	if m.brush.Stats().Count != 4 {
		t.Fatalf("selection lost on frame change")
	}

	press(m, "b")
	if m.brush.Stats() != (heatmap.Stats{}) || m.brush.Selected(0, 0) {
		t.Fatalf("disabling the brush must clear highlight and stats")
	}
	if m.ui.mode != modeHover {
		t.Fatalf("mode = %v, want hover", m.ui.mode)
	}
}

func TestBrushSelectionWithNoCells(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", frameOf(40)))

	press(m, "b")
	m.ui.noticeMsg = ""
	// one terminal column is half of a zoom-2 cell
	mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 6, 6)
	mouse(m, tea.MouseActionRelease, tea.MouseButtonNone, 6, 6)

	if !strings.Contains(screen(m), "0 cells, Avg Pressure: 0.00") {
		t.Fatalf("expected the empty selection summary:\n%s", screen(m))
	}
}

func TestKeyboardBrush(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", frameOf(12)))

	press(m, "b", " ", "l", "l", "j", " ")
	st := m.brush.Stats()
	if st.Count != 6 || st.Mean != 12 {
		t.Fatalf("keyboard brush = %+v, want 6 cells at 12", st)
	}
	if m.ui.brushAnchor != nil {
		t.Fatalf("second space should finish the selection")
	}

	press(m, "esc")
	if m.brush.Stats().Count != 0 || !m.brush.Enabled() {
		t.Fatalf("esc should clear the selection but keep the brush on")
	}
}

func TestPointerMotionKeepsKeyboardSelection(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))

	// anchored but not finished: cells 0, 1, 10, 11
	press(m, "b", " ", "l", "j")
	if st := m.brush.Stats(); st.Count != 4 || st.Mean != 5.5 {
		t.Fatalf("keyboard brush = %+v", st)
	}
	if m.brush.Dragging() {
		t.Fatalf("keyboard selection should not count as a mouse drag")
	}

	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 40, 20)
	if st := m.brush.Stats(); st.Count != 4 || st.Mean != 5.5 {
		t.Fatalf("plain pointer motion replaced the selection: %+v", st)
	}

	// a drag still needs the left button held
	mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 0, 0)
	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 9, 0)
	if st := m.brush.Stats(); st.Count != 0 {
		t.Fatalf("buttonless motion extended a drag: %+v", st)
	}
	mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 5, 0)
	if st := m.brush.Stats(); st.Count != 3 {
		t.Fatalf("left-button drag = %+v, want 3 cells", st)
	}
}

func TestHoverIgnoresUndrawnViewportColumns(t *testing.T) {
	dir := t.TempDir()
	m := newModel(config{dataDir: dir, zoom: 3, fps: 10})
	t.Cleanup(m.Close)
	// 100 columns of viewport fit 33 whole zoom-3 cells, 99 columns drawn
	m.Update(tea.WindowSizeMsg{Width: 106, Height: 50})
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))
	m.ui.noticeMsg = ""

	if m.viewport.Width != 100 || m.visibleCols() != 33 {
		t.Fatalf("viewport %d wide, %d cells visible", m.viewport.Width, m.visibleCols())
	}

	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 98, 3)
	if c, ok := m.hoverValue(); !ok || c.Col != 32 {
		t.Fatalf("last drawn column: %+v %v", c, ok)
	}

	mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 99, 3)
	if c, ok := m.hoverValue(); ok {
		t.Fatalf("padding column hovered %+v", c)
	}
	if strings.Contains(screen(m), "Pressure: ") {
		t.Fatalf("tooltip shown for an undrawn cell")
	}
}

func TestZoomChangesLayout(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))

	press(m, "l", "l", "l") // first press lands on 0,0
	press(m, "+", "+", "+", "+")
	if m.ui.layout.CellWidth != heatmap.MaxZoom {
		t.Fatalf("zoom = %d, want %d", m.ui.layout.CellWidth, heatmap.MaxZoom)
	}
	if c, ok := m.hoverValue(); !ok || c.Col != 2 {
		t.Fatalf("zoom moved the pointer off its cell: %+v %v", c, ok)
	}
	press(m, "-", "-", "-", "-", "-")
	if m.ui.layout.CellWidth != heatmap.MinZoom {
		t.Fatalf("zoom = %d, want %d", m.ui.layout.CellWidth, heatmap.MinZoom)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	dir := t.TempDir()
	m := newModel(config{dataDir: dir, zoom: 2, fps: 10})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 46, Height: 20}) // 40 columns = 20 cells, 12 rows
	load(t, m, writeRecording(t, dir, "1.json", gradientFrame()))

	press(m, "l") // lands on 0,0
	for i := 0; i < 29; i++ {
		press(m, "l")
	}
	for i := 0; i < 20; i++ {
		press(m, "j")
	}
	if m.ui.scrollX != 29-m.visibleCols()+1 {
		t.Fatalf("scrollX = %d with %d visible", m.ui.scrollX, m.visibleCols())
	}
	if m.viewport.YOffset != 20-m.viewport.Height+1 {
		t.Fatalf("YOffset = %d with height %d", m.viewport.YOffset, m.viewport.Height)
	}

	// the mouse maps through both offsets
	p, inside := m.surfacePoint(gridOriginX, gridOriginY)
	if !inside || p.X != m.ui.scrollX*2 || p.Y != m.viewport.YOffset {
		t.Fatalf("surfacePoint = %+v %v", p, inside)
	}
}

func TestPlaybackWrapsAndStops(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "1.json", frameOf(1), frameOf(2), frameOf(3)))

	if cmd := m.togglePlay(); cmd == nil || !m.ui.playing {
		t.Fatalf("play should start ticking")
	}
	tick := playTickMsg{id: m.ui.playSeq}
	for _, want := range []int{1, 2, 0} {
		m.Update(tick)
		if m.data.frameIdx != want {
			t.Fatalf("frame = %d, want %d", m.data.frameIdx, want)
		}
	}

	press(m, "p")
	if m.ui.playing {
		t.Fatalf("p should pause")
	}
	m.Update(tick)
	if m.data.frameIdx != 0 {
		t.Fatalf("stale tick advanced a paused player")
	}
}

func TestStepFileWraps(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, "1.json", frameOf(1))
	writeRecording(t, dir, "2.json", frameOf(2))
	last := writeRecording(t, dir, "10.json", frameOf(10))

	m := newTestModel(t, dir)
	m.rescanCatalog()
	load(t, m, last)

	m.Update(m.stepFile(1)())
	if filepath.Base(m.data.currentFile) != "1.json" {
		t.Fatalf("next after the last should wrap to 1.json, got %s", m.data.currentFile)
	}
	m.Update(m.stepFile(-1)())
	if filepath.Base(m.data.currentFile) != "10.json" {
		t.Fatalf("previous from the first should wrap to 10.json, got %s", m.data.currentFile)
	}
}

func TestExportFrame(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "13.json", frameOf(3)))

	if got := m.defaultExportName(); got != "13_frame0.csv" {
		t.Fatalf("default export name = %q", got)
	}
	press(m, "b", " ", " ")
	out := filepath.Join(dir, "out.csv")
	m.exportFrame(out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# brush: 1 cells, Avg Pressure: 3.00") {
		t.Fatalf("export missing brush line:\n%s", data)
	}
}

func TestClipboardText(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	load(t, m, writeRecording(t, dir, "13.json", gradientFrame()))

	if m.clipboardText() != "" {
		t.Fatalf("nothing to copy before pointing")
	}
	press(m, "j")
	if got := m.clipboardText(); got != "13.json frame 0 row 0 col 0: Pressure 0.0" {
		t.Fatalf("hover copy = %q", got)
	}
}

func TestDialogSuspendsGrid(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, "1.json", frameOf(1))
	p2 := writeRecording(t, dir, "2.json", frameOf(2))
	m := newTestModel(t, dir)
	m.rescanCatalog()
	load(t, m, filepath.Join(dir, "1.json"))

	press(m, "b", "o")
	if m.ui.mode != modeDialog {
		t.Fatalf("o should open a dialog")
	}
	press(m, "]") // swallowed by the dialog
	if m.data.frameIdx != 0 {
		t.Fatalf("frame keys leaked through the dialog")
	}
	press(m, "j")
	_, confirm := m.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	_, loadCmd := m.Update(confirm())
	if m.ui.mode != modeBrush {
		t.Fatalf("closing the dialog should restore brush mode, got %v", m.ui.mode)
	}
	m.Update(loadCmd())
	if m.data.currentFile != p2 {
		t.Fatalf("current file = %s", m.data.currentFile)
	}
}

func TestParseFlags(t *testing.T) {
	var out strings.Builder
	cfg, err := parseFlags([]string{"--data", "d", "--zoom", "3", "--fps", "20", "13.json"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.dataDir != "d" || cfg.zoom != 3 || cfg.initial != "13.json" || cfg.frameTick != 50*time.Millisecond {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := parseFlags([]string{"--zoom", "9"}, &out); err == nil {
		t.Fatalf("zoom 9 should be rejected")
	}
	if _, err := parseFlags([]string{"--fps", "0"}, &out); err == nil {
		t.Fatalf("fps 0 should be rejected")
	}
}

func TestRunConvert(t *testing.T) {
	in, outDir := t.TempDir(), t.TempDir()
	var raw strings.Builder
	for i := 0; i < heatmap.CellCount*2; i++ {
		raw.WriteString("1 ")
	}
	os.WriteFile(filepath.Join(in, "5.txt"), []byte(raw.String()), 0o600)

	var stdout, stderr strings.Builder
	if code := runConvert([]string{"-limit", "1", in, outDir}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "(1 frames)") {
		t.Fatalf("stdout = %q", stdout.String())
	}
	seq, err := heatmap.LoadFile(filepath.Join(outDir, "5.json"))
	if err != nil || seq.Len() != 1 {
		t.Fatalf("converted file: %v", err)
	}
	if code := runConvert([]string{in}, &stdout, &stderr); code != 2 {
		t.Fatalf("missing args exit = %d", code)
	}
}
