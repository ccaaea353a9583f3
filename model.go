package main

import (
	"path/filepath"

	"github.com/andareed/siftly-heatmap/catalog"
	"github.com/andareed/siftly-heatmap/dialogs"
	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Chrome around the grid: app margin, title line and table border above,
// legend and the two-line footer below.
const (
	gridOriginX  = 3 // left margin 2 + border 1
	gridOriginY  = 3 // top margin 1 + title 1 + border 1
	chromeWidth  = 6 // margins 4 + borders 2
	chromeHeight = 8 // margins 2 + title 1 + borders 2 + legend 1 + footer 2
)

type model struct {
	cfg  config
	data dataState
	ui   uiState

	scale heatmap.Scale
	brush heatmap.Brush

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	watcher      *catalog.Watcher
}

func newModel(cfg config) *model {
	m := &model{
		cfg:   cfg,
		scale: heatmap.DefaultScale(),
		data: dataState{
			dataDir: cfg.dataDir,
		},
		ui: uiState{
			mode:   modeHover,
			layout: heatmap.NewLayout(cfg.zoom),
		},
	}
	m.rescanCatalog()

	if cfg.watch && m.data.dataDir != "" {
		w, err := catalog.Watch(m.data.dataDir)
		if err != nil {
			logging.Warnf("not watching %s: %v", m.data.dataDir, err)
		} else {
			m.watcher = w
		}
	}
	return m
}

// Close releases the directory watcher.
func (m *model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-heatmap: Initialised with %d recordings", len(m.data.entries))
	cmds := []tea.Cmd{m.waitForCatalogChange()}

	initial := m.cfg.initial
	if initial == "" && len(m.data.entries) > 0 {
		initial = m.data.entries[0].Path
	}
	if initial == "" {
		cmds = append(cmds, m.startNotice("No recordings found in "+m.data.dataDir, noticeWarn, noticeDuration))
	} else {
		cmds = append(cmds, m.loadFrames(initial))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dialog messages first, regardless of which dialog is up.
	switch msg := msg.(type) {
	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m, m.loadFrames(msg.Path)
	case dialogs.OpenCanceledMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil
	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportFrame(msg.Path)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case framesLoadedMsg:
		return m, m.applyLoadedFrames(msg.seq)

	case framesLoadFailedMsg:
		m.ui.loading = false
		logging.Errorf("load %s failed: %v", msg.path, msg.err)
		return m, m.startNotice("Load failed: "+filepath.Base(msg.path), noticeError, noticeDuration)

	case catalogChangedMsg:
		return m, m.handleCatalogChange(msg)

	case playTickMsg:
		return m, m.handlePlayTick(msg)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.ui.mode == modeDialog {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ui.mode == modeDialog && m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.closeDialog()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.OpenHelp):
		m.openDialog(dialogs.NewHelpDialog(Keys.HelpSections()...))
		return m, nil
	case key.Matches(msg, Keys.ToggleBrush):
		return m, m.toggleBrush()
	case key.Matches(msg, Keys.BrushMark):
		m.markBrushAtCursor()
	case key.Matches(msg, Keys.Cancel):
		m.cancelPointer()
	case key.Matches(msg, Keys.CursorUp):
		m.moveCursor(-1, 0)
	case key.Matches(msg, Keys.CursorDown):
		m.moveCursor(1, 0)
	case key.Matches(msg, Keys.CursorLeft):
		m.moveCursor(0, -1)
	case key.Matches(msg, Keys.CursorRight):
		m.moveCursor(0, 1)
	case key.Matches(msg, Keys.PrevFrame):
		m.stepFrame(-1)
	case key.Matches(msg, Keys.NextFrame):
		m.stepFrame(1)
	case key.Matches(msg, Keys.BackTen):
		m.stepFrame(-10)
	case key.Matches(msg, Keys.ForwardTen):
		m.stepFrame(10)
	case key.Matches(msg, Keys.FirstFrame):
		m.setFrame(0)
	case key.Matches(msg, Keys.LastFrame):
		_, hi := m.data.sliderRange()
		m.setFrame(hi)
	case key.Matches(msg, Keys.Play):
		return m, m.togglePlay()
	case key.Matches(msg, Keys.ZoomIn):
		m.setZoom(m.ui.layout.CellWidth + 1)
	case key.Matches(msg, Keys.ZoomOut):
		m.setZoom(m.ui.layout.CellWidth - 1)
	case key.Matches(msg, Keys.OpenFile):
		m.openDialog(dialogs.NewOpenDialog(m.data.entries, m.data.currentFile))
		return m, nil
	case key.Matches(msg, Keys.NextFile):
		return m, m.stepFile(1)
	case key.Matches(msg, Keys.PrevFile):
		return m, m.stepFile(-1)
	case key.Matches(msg, Keys.Export):
		m.openDialog(dialogs.NewExportDialog(m.defaultExportName(), filepath.Dir(m.data.currentFile)))
		return m, nil
	case key.Matches(msg, Keys.Copy):
		return m, m.copySummary()
	}

	m.refreshView()
	return m, nil
}

func (m *model) openDialog(d dialogs.Dialog) {
	if m.ui.mode != modeDialog {
		m.ui.prevMode = m.ui.mode
	}
	m.activeDialog = d
	m.ui.mode = modeDialog
}

func (m *model) closeDialog() {
	m.activeDialog = nil
	if m.ui.mode == modeDialog {
		m.ui.mode = m.ui.prevMode
	}
	m.refreshView()
}

func (m *model) resize(w, h int) {
	m.terminalWidth, m.terminalHeight = w, h
	gw, gh := m.ui.layout.Size()
	vw := clamp(w-chromeWidth, 1, gw)
	vh := clamp(h-chromeHeight, 1, gh)
	if !m.ready {
		m.viewport = viewport.New(vw, vh)
		m.ready = true
	} else {
		m.viewport.Width = vw
		m.viewport.Height = vh
	}
	m.refreshView()
}

// visibleCols is how many sensor columns fit across the viewport.
func (m *model) visibleCols() int {
	if !m.ready {
		return heatmap.Cols
	}
	n := m.viewport.Width / m.ui.layout.CellWidth
	return clamp(n, 1, heatmap.Cols)
}

// refreshView re-renders the grid into the viewport.
func (m *model) refreshView() {
	if !m.ready {
		return
	}
	m.clampScroll()
	m.viewport.SetContent(m.renderGrid())
}

func (m *model) clampScroll() {
	m.ui.scrollX = clamp(m.ui.scrollX, 0, heatmap.Cols-m.visibleCols())
}

func (m *model) setZoom(z int) {
	row, col, ok := m.hoverCell()
	m.ui.layout = heatmap.NewLayout(z)
	if m.ready {
		m.resize(m.terminalWidth, m.terminalHeight)
	}
	if ok {
		m.pointAtCell(row, col)
	}
	if m.brush.Enabled() {
		m.brush.Clear()
		m.ui.brushAnchor = nil
	}
}
