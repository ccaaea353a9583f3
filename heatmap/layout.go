package heatmap

// Point is a position on the drawing surface, in surface units (terminal
// columns and rows once rendered).
type Point struct {
	X, Y int
}

// Rect is a half-open box [X0,X1) x [Y0,Y1) on the drawing surface.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// RectFrom builds the box spanning two corner points, both included.
func RectFrom(a, b Point) Rect {
	r := Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	r.X1++
	r.Y1++
	return r
}

func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Layout fixes how big each cell is drawn.
type Layout struct {
	CellWidth  int
	CellHeight int
}

const (
	MinZoom = 1
	MaxZoom = 4
)

// NewLayout returns a layout whose cells are zoom columns wide and one row
// tall. zoom is clamped to [MinZoom, MaxZoom].
func NewLayout(zoom int) Layout {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	return Layout{CellWidth: zoom, CellHeight: 1}
}

// Size is the full surface size of the grid.
func (l Layout) Size() (w, h int) {
	return Cols * l.CellWidth, Rows * l.CellHeight
}

// CellRect is the bounding box of the cell at (row, col).
func (l Layout) CellRect(row, col int) Rect {
	x := col * l.CellWidth
	y := row * l.CellHeight
	return Rect{X0: x, Y0: y, X1: x + l.CellWidth, Y1: y + l.CellHeight}
}

// CellAtPoint maps a surface position to the cell under it.
func (l Layout) CellAtPoint(p Point) (row, col int, ok bool) {
	if p.X < 0 || p.Y < 0 || l.CellWidth <= 0 || l.CellHeight <= 0 {
		return 0, 0, false
	}
	col = p.X / l.CellWidth
	row = p.Y / l.CellHeight
	if row >= Rows || col >= Cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellOrigin is the top-left surface point of the cell at (row, col).
func (l Layout) CellOrigin(row, col int) Point {
	return Point{X: col * l.CellWidth, Y: row * l.CellHeight}
}
