package main

import "github.com/andareed/siftly-heatmap/heatmap"

type mode int

const (
	modeHover mode = iota
	modeBrush
	modeDialog
)

func (m mode) String() string {
	switch m {
	case modeBrush:
		return "BRUSH"
	case modeDialog:
		return "DIALOG"
	default:
		return "HOVER"
	}
}

type cellPos struct {
	row, col int
}

type uiState struct {
	mode     mode
	prevMode mode // restored when a dialog closes
	layout   heatmap.Layout

	// pointer is in grid surface coordinates; pointerIn is false once the
	// pointer has left the grid.
	pointer   heatmap.Point
	pointerIn bool

	// keyboard brush anchor, set between the two presses of space
	brushAnchor *cellPos

	scrollX int // first visible column

	loading bool
	playing bool
	playSeq int

	noticeMsg  string
	noticeType string
	noticeSeq  int
}
