package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andareed/siftly-heatmap/clipboard"
	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) defaultExportName() string {
	stem := heatmap.TrimFrameExt(filepath.Base(m.data.currentFile))
	if stem == "" || stem == "." {
		stem = "heatmap"
	}
	return fmt.Sprintf("%s_frame%d.csv", stem, m.data.frameIdx)
}

// exportFrame writes the displayed frame to path as CSV, with the brush
// stats appended when there is a selection.
func (m *model) exportFrame(path string) tea.Cmd {
	if m.data.seq.Len() == 0 {
		return m.startNotice("Nothing loaded to export", noticeWarn, noticeDuration)
	}
	if err := writeFrameCSV(path, m.data.frame(), m.brushStats()); err != nil {
		logging.Errorf("export to %s failed: %v", path, err)
		return m.startNotice("Export failed: "+err.Error(), noticeError, noticeDuration)
	}
	logging.Infof("exported frame %d of %s to %s", m.data.frameIdx, m.data.currentFile, path)
	return m.startNotice("Exported to "+path, noticeSuccess, noticeDuration)
}

func writeFrameCSV(path string, f heatmap.Frame, brush *heatmap.Stats) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := heatmap.WriteCSV(out, f, brush); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// brushStats is nil unless the brush has a selection rectangle.
func (m *model) brushStats() *heatmap.Stats {
	if _, ok := m.brush.Rect(); !ok || !m.brush.Enabled() {
		return nil
	}
	st := m.brush.Stats()
	return &st
}

// clipboardText is the brush summary in brush mode, otherwise the reading
// under the pointer.
func (m *model) clipboardText() string {
	name := filepath.Base(m.data.currentFile)
	if st := m.brushStats(); st != nil {
		return fmt.Sprintf("%s frame %d: %s", name, m.data.frameIdx, st)
	}
	if c, ok := m.hoverValue(); ok {
		return fmt.Sprintf("%s frame %d row %d col %d: Pressure %.1f", name, m.data.frameIdx, c.Row, c.Col, c.Value)
	}
	return ""
}

func (m *model) copySummary() tea.Cmd {
	text := m.clipboardText()
	if text == "" {
		return m.startNotice("Point at a cell or brush a selection first", noticeWarn, noticeDuration)
	}
	if err := clipboard.Copy(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("Copied: "+text, noticeSuccess, noticeDuration)
}
