package main

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/siftly-heatmap/catalog"
	"github.com/andareed/siftly-heatmap/dialogs"
	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type framesLoadedMsg struct {
	seq *heatmap.Sequence
}

type framesLoadFailedMsg struct {
	path string
	err  error
}

type catalogChangedMsg struct {
	changed string
	entries []catalog.Entry
	err     error
}

// loadFrames reads path off the update loop. Whatever is on screen stays
// there until the result arrives, and stays for good if the load fails.
func (m *model) loadFrames(path string) tea.Cmd {
	logging.Infof("loading frames from %s", path)
	m.ui.loading = true
	return func() tea.Msg {
		seq, err := heatmap.LoadFile(path)
		if err != nil {
			return framesLoadFailedMsg{path: path, err: err}
		}
		return framesLoadedMsg{seq: seq}
	}
}

// applyLoadedFrames swaps in a new sequence and rewinds to frame 0.
func (m *model) applyLoadedFrames(seq *heatmap.Sequence) tea.Cmd {
	m.ui.loading = false
	m.stopPlay()
	m.data.seq = seq
	m.data.currentFile = seq.Source
	m.data.posture = heatmap.Posture(seq.Source)
	m.data.frameIdx = 0
	m.data.summary = heatmap.Summarize(m.data.frame())
	m.brush.Refresh(m.data.frame(), m.ui.layout)
	m.refreshView()

	_, hi := m.data.sliderRange()
	logging.Infof("loaded %s: %d frames, slider 0-%d, posture %q", seq.Source, seq.Len(), hi, m.data.posture)
	return m.startNotice(fmt.Sprintf("Loaded %s (%d frames)", filepath.Base(seq.Source), seq.Len()), noticeSuccess, noticeDuration)
}

// stepFile loads the recording delta places away in the catalog, wrapping.
func (m *model) stepFile(delta int) tea.Cmd {
	n := len(m.data.entries)
	if n == 0 {
		return m.startNotice("No recordings in "+m.data.dataDir, noticeWarn, noticeDuration)
	}
	i := catalog.IndexOf(m.data.entries, m.data.currentFile)
	if i < 0 {
		i = 0
		if delta < 0 {
			i = n - 1
		}
	} else {
		i = ((i+delta)%n + n) % n
	}
	return m.loadFrames(m.data.entries[i].Path)
}

func (m *model) rescanCatalog() {
	if m.data.dataDir == "" {
		return
	}
	entries, err := catalog.Scan(m.data.dataDir)
	if err != nil {
		logging.Warnf("catalog scan failed: %v", err)
		return
	}
	m.data.entries = entries
}

// waitForCatalogChange blocks on the watcher and rescans once something
// changes. It has to be re-issued after every change.
func (m *model) waitForCatalogChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		changed, ok := <-w.Changes()
		if !ok {
			return nil
		}
		entries, err := catalog.Scan(w.Dir())
		return catalogChangedMsg{changed: changed, entries: entries, err: err}
	}
}

func (m *model) handleCatalogChange(msg catalogChangedMsg) tea.Cmd {
	cmds := []tea.Cmd{m.waitForCatalogChange()}
	if msg.err != nil {
		logging.Warnf("catalog rescan failed: %v", msg.err)
		return tea.Batch(cmds...)
	}
	m.data.entries = msg.entries
	if d, ok := m.activeDialog.(*dialogs.Open); ok {
		d.SetEntries(msg.entries)
	}
	if m.data.currentFile != "" && filepath.Clean(msg.changed) == filepath.Clean(m.data.currentFile) &&
		catalog.IndexOf(msg.entries, m.data.currentFile) >= 0 {
		cmds = append(cmds, m.loadFrames(m.data.currentFile))
	}
	return tea.Batch(cmds...)
}
