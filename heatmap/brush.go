package heatmap

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats aggregates the cells under a brush selection.
type Stats struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d cells, Avg Pressure: %.2f", s.Count, s.Mean)
}

// Aggregate computes Stats over values. No values gives the zero Stats.
func Aggregate(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	return Stats{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
}

// Brush is a toggleable rectangular selection over the drawn grid. A cell is
// selected when its whole bounding box lies inside the selection rectangle.
type Brush struct {
	enabled  bool
	dragging bool
	hasRect  bool
	anchor   Point
	head     Point
	selected []bool
	stats    Stats
}

func (b *Brush) Enabled() bool  { return b.enabled }
func (b *Brush) Dragging() bool { return b.dragging }
func (b *Brush) Stats() Stats   { return b.stats }

// Enable turns the brush on with no selection.
func (b *Brush) Enable() {
	b.Clear()
	b.enabled = true
}

// Disable turns the brush off and drops the selection and its stats.
func (b *Brush) Disable() {
	b.Clear()
	b.enabled = false
}

// Toggle flips the brush and reports the new state.
func (b *Brush) Toggle() bool {
	if b.enabled {
		b.Disable()
	} else {
		b.Enable()
	}
	return b.enabled
}

// Clear drops the selection but leaves the brush enabled state alone.
func (b *Brush) Clear() {
	b.dragging = false
	b.hasRect = false
	b.anchor = Point{}
	b.head = Point{}
	b.selected = nil
	b.stats = Stats{}
}

// Rect returns the current selection rectangle, if any.
func (b *Brush) Rect() (Rect, bool) {
	if !b.hasRect {
		return Rect{}, false
	}
	return RectFrom(b.anchor, b.head), true
}

// Start begins a new selection at p.
func (b *Brush) Start(p Point, f Frame, l Layout) Stats {
	if !b.enabled {
		return b.stats
	}
	b.dragging = true
	b.hasRect = true
	b.anchor = p
	b.head = p
	return b.Refresh(f, l)
}

// Move extends the selection to p.
func (b *Brush) Move(p Point, f Frame, l Layout) Stats {
	if !b.enabled || !b.hasRect {
		return b.stats
	}
	b.head = p
	return b.Refresh(f, l)
}

// End finishes the drag at p. The selection stays in place.
func (b *Brush) End(p Point, f Frame, l Layout) Stats {
	if !b.enabled || !b.hasRect {
		return b.stats
	}
	b.head = p
	b.dragging = false
	return b.Refresh(f, l)
}

// Select sets the selection to the box spanning a and b without starting a
// drag, for selections made from the keyboard.
func (b *Brush) Select(a, p Point, f Frame, l Layout) Stats {
	if !b.enabled {
		return b.stats
	}
	b.dragging = false
	b.hasRect = true
	b.anchor = a
	b.head = p
	return b.Refresh(f, l)
}

// Refresh recomputes the selection against f, e.g. after the frame changed.
func (b *Brush) Refresh(f Frame, l Layout) Stats {
	rect, ok := b.Rect()
	if !b.enabled || !ok {
		b.selected = nil
		b.stats = Stats{}
		return b.stats
	}
	cells := SelectCells(rect, f, l)
	sel := make([]bool, CellCount)
	values := make([]float64, len(cells))
	for i, c := range cells {
		sel[c.Row*Cols+c.Col] = true
		values[i] = c.Value
	}
	b.selected = sel
	b.stats = Aggregate(values)
	return b.stats
}

// Selected reports whether the cell at (row, col) is under the selection.
func (b *Brush) Selected(row, col int) bool {
	if b.selected == nil || row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return b.selected[row*Cols+col]
}

// SelectCells returns the cells of f whose drawn box lies inside rect.
func SelectCells(rect Rect, f Frame, l Layout) []Cell {
	if rect.Empty() {
		return nil
	}
	var out []Cell
	for _, c := range f.Cells() {
		if rect.Contains(l.CellRect(c.Row, c.Col)) {
			out = append(out, c)
		}
	}
	return out
}
