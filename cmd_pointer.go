package main

import (
	"fmt"

	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// hoverCell is the cell under the pointer, if the pointer is on the grid.
func (m *model) hoverCell() (row, col int, ok bool) {
	if !m.ui.pointerIn {
		return 0, 0, false
	}
	return m.ui.layout.CellAtPoint(m.ui.pointer)
}

// hoverValue is what the floating label shows. Only meaningful while the
// brush is off.
func (m *model) hoverValue() (heatmap.Cell, bool) {
	if m.ui.mode != modeHover {
		return heatmap.Cell{}, false
	}
	row, col, ok := m.hoverCell()
	if !ok {
		return heatmap.Cell{}, false
	}
	v, ok := m.data.frame().Value(row, col)
	if !ok {
		return heatmap.Cell{}, false
	}
	return heatmap.Cell{Row: row, Col: col, Value: v}, true
}

func hoverLabel(c heatmap.Cell) string {
	return fmt.Sprintf(" Pressure: %.1f ", c.Value)
}

func (m *model) pointAtCell(row, col int) {
	m.ui.pointer = m.ui.layout.CellOrigin(row, col)
	m.ui.pointerIn = true
	m.ensureVisible(row, col)
}

// moveCursor drives the pointer from the keyboard one cell at a time.
func (m *model) moveCursor(dr, dc int) {
	row, col, ok := m.hoverCell()
	if !ok {
		row, col = 0, 0
		dr, dc = 0, 0
	}
	row = clamp(row+dr, 0, heatmap.Rows-1)
	col = clamp(col+dc, 0, heatmap.Cols-1)
	m.pointAtCell(row, col)
	if m.ui.mode == modeBrush && m.ui.brushAnchor != nil {
		m.updateKeyboardBrush()
	}
}

// cancelPointer takes the pointer off the grid. In brush mode the first
// press drops the selection instead.
func (m *model) cancelPointer() {
	if m.ui.mode == modeBrush {
		if _, has := m.brush.Rect(); has || m.ui.brushAnchor != nil {
			m.brush.Clear()
			m.ui.brushAnchor = nil
			return
		}
	}
	m.ui.pointerIn = false
}

func (m *model) toggleBrush() tea.Cmd {
	enabled := m.brush.Toggle()
	m.ui.brushAnchor = nil
	if enabled {
		m.ui.mode = modeBrush
		logging.Debug("brush enabled")
	} else {
		m.ui.mode = modeHover
		logging.Debug("brush disabled, selection cleared")
	}
	m.refreshView()
	if enabled {
		return m.startNotice("Brush on: drag or press space to select", noticeInfo, noticeDuration)
	}
	return m.startNotice("Brush off", noticeInfo, noticeDuration)
}

// markBrushAtCursor anchors a keyboard selection on the first press and
// finishes it on the second.
func (m *model) markBrushAtCursor() {
	if m.ui.mode != modeBrush {
		return
	}
	row, col, ok := m.hoverCell()
	if !ok {
		row, col = 0, 0
		m.pointAtCell(row, col)
	}
	first := m.ui.brushAnchor == nil
	if first {
		m.ui.brushAnchor = &cellPos{row: row, col: col}
	}
	m.updateKeyboardBrush()
	if !first {
		m.ui.brushAnchor = nil
	}
}

// updateKeyboardBrush selects every cell between the anchor and the cursor,
// both included.
func (m *model) updateKeyboardBrush() {
	a := m.ui.brushAnchor
	row, col, ok := m.hoverCell()
	if a == nil || !ok {
		return
	}
	l := m.ui.layout
	top, left := min(a.row, row), min(a.col, col)
	bottom, right := max(a.row, row), max(a.col, col)

	from := l.CellOrigin(top, left)
	to := l.CellOrigin(bottom, right)
	to.X += l.CellWidth - 1
	to.Y += l.CellHeight - 1

	m.brush.Select(from, to, m.data.frame(), l)
}

// surfacePoint maps a terminal position to grid surface coordinates. inside
// is false when the position is outside the visible part of the grid.
func (m *model) surfacePoint(x, y int) (p heatmap.Point, inside bool) {
	sx, sy := x-gridOriginX, y-gridOriginY
	p = heatmap.Point{
		X: sx + m.ui.scrollX*m.ui.layout.CellWidth,
		Y: sy + m.viewport.YOffset,
	}
	gw, gh := m.ui.layout.Size()
	// only whole cells are drawn, so trailing viewport columns are off-grid
	drawnW := m.visibleCols() * m.ui.layout.CellWidth
	inside = sx >= 0 && sy >= 0 &&
		sx < min(m.viewport.Width, drawnW) && sy < m.viewport.Height &&
		p.X < gw && p.Y < gh
	return p, inside
}

func (m *model) clampToSurface(p heatmap.Point) heatmap.Point {
	gw, gh := m.ui.layout.Size()
	return heatmap.Point{X: clamp(p.X, 0, gw-1), Y: clamp(p.Y, 0, gh-1)}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if !m.ready {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
		return
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
		return
	case tea.MouseButtonWheelLeft:
		m.ui.scrollX--
		m.refreshView()
		return
	case tea.MouseButtonWheelRight:
		m.ui.scrollX++
		m.refreshView()
		return
	}

	p, inside := m.surfacePoint(msg.X, msg.Y)
	switch m.ui.mode {
	case modeHover:
		// over, move and out all collapse into "where is the pointer now"
		m.ui.pointerIn = inside
		if inside {
			m.ui.pointer = p
		}

	case modeBrush:
		if inside {
			m.ui.pointer = p
			m.ui.pointerIn = true
		}
		f, l := m.data.frame(), m.ui.layout
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
			m.ui.brushAnchor = nil
			m.brush.Start(p, f, l)
		case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft && m.brush.Dragging():
			m.brush.Move(m.clampToSurface(p), f, l)
		case msg.Action == tea.MouseActionRelease && m.brush.Dragging():
			st := m.brush.End(m.clampToSurface(p), f, l)
			logging.Debugf("brush drag finished: %s", st)
		}
	}
	m.refreshView()
}

// ensureVisible scrolls so the cell at (row, col) is on screen.
func (m *model) ensureVisible(row, col int) {
	if !m.ready {
		return
	}
	vis := m.visibleCols()
	if col < m.ui.scrollX {
		m.ui.scrollX = col
	} else if col >= m.ui.scrollX+vis {
		m.ui.scrollX = col - vis + 1
	}
	m.refreshView()

	y := row * m.ui.layout.CellHeight
	if y < m.viewport.YOffset {
		m.viewport.SetYOffset(y)
	} else if y >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(y - m.viewport.Height + 1)
	}
}
