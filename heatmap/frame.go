// Package heatmap holds the pressure grid model: frames, sequences, the
// loader, the colour scale, the brush and the posture table. Nothing in here
// knows about the terminal.
package heatmap

import (
	"errors"
	"fmt"
)

// Sensor mat dimensions. Every recording uses the same grid.
const (
	Rows = 32
	Cols = 64
)

// CellCount is the number of readings in one frame.
const CellCount = Rows * Cols

var (
	ErrEmptySequence = errors.New("frame sequence is empty")
	ErrTrailingData  = errors.New("unexpected data after the frame array")
)

// ShapeError reports a frame (or one of its rows) that doesn't match the
// fixed grid dimensions.
type ShapeError struct {
	Frame int
	Row   int // -1 when the row count itself is wrong
	Want  int
	Got   int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("frame %d: want %d rows, got %d", e.Frame, e.Want, e.Got)
	}
	return fmt.Sprintf("frame %d row %d: want %d columns, got %d", e.Frame, e.Row, e.Want, e.Got)
}

// Frame is one time step of readings, indexed [row][col].
type Frame [][]float64

// Cell is a single reading with its grid position. Cells are derived from a
// frame on demand and never stored.
type Cell struct {
	Row   int
	Col   int
	Value float64
}

// Flatten returns the readings in row-major order: row 0 left to right, then
// row 1, and so on.
func (f Frame) Flatten() []float64 {
	out := make([]float64, 0, CellCount)
	for _, row := range f {
		out = append(out, row...)
	}
	return out
}

// Position maps a flat row-major index back to its grid position.
func Position(i int) (row, col int) {
	return i / Cols, i % Cols
}

// CellAt returns the cell for flat index i.
func (f Frame) CellAt(i int) (Cell, bool) {
	if i < 0 || i >= CellCount {
		return Cell{}, false
	}
	r, c := Position(i)
	if r >= len(f) || c >= len(f[r]) {
		return Cell{}, false
	}
	return Cell{Row: r, Col: c, Value: f[r][c]}, true
}

// Value returns the reading at (row, col), or false when out of the grid.
func (f Frame) Value(row, col int) (float64, bool) {
	if row < 0 || row >= len(f) || col < 0 || col >= len(f[row]) {
		return 0, false
	}
	return f[row][col], true
}

// Cells returns every cell of the frame in row-major order.
func (f Frame) Cells() []Cell {
	flat := f.Flatten()
	cells := make([]Cell, len(flat))
	for i, v := range flat {
		r, c := Position(i)
		cells[i] = Cell{Row: r, Col: c, Value: v}
	}
	return cells
}

func (f Frame) validate(idx int) error {
	if len(f) != Rows {
		return &ShapeError{Frame: idx, Row: -1, Want: Rows, Got: len(f)}
	}
	for r, row := range f {
		if len(row) != Cols {
			return &ShapeError{Frame: idx, Row: r, Want: Cols, Got: len(row)}
		}
	}
	return nil
}

// Sequence is every frame of one recording file.
type Sequence struct {
	Source string
	Frames []Frame
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Bounds returns the valid frame index range [0, Len-1]. ok is false for an
// empty sequence.
func (s *Sequence) Bounds() (lo, hi int, ok bool) {
	n := s.Len()
	if n == 0 {
		return 0, 0, false
	}
	return 0, n - 1, true
}

// Clamp pins idx into the valid frame range.
func (s *Sequence) Clamp(idx int) int {
	lo, hi, ok := s.Bounds()
	if !ok {
		return 0
	}
	if idx < lo {
		return lo
	}
	if idx > hi {
		return hi
	}
	return idx
}

// Frame returns frame idx after clamping, or nil for an empty sequence.
func (s *Sequence) Frame(idx int) Frame {
	if s.Len() == 0 {
		return nil
	}
	return s.Frames[s.Clamp(idx)]
}

// Validate checks that the sequence is non-empty and every frame matches the
// grid dimensions.
func (s *Sequence) Validate() error {
	if s.Len() == 0 {
		return ErrEmptySequence
	}
	for i, f := range s.Frames {
		if err := f.validate(i); err != nil {
			return err
		}
	}
	return nil
}
