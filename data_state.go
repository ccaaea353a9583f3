package main

import (
	"github.com/andareed/siftly-heatmap/catalog"
	"github.com/andareed/siftly-heatmap/heatmap"
)

type dataState struct {
	dataDir     string
	entries     []catalog.Entry // recordings found in dataDir
	currentFile string
	posture     string
	seq         *heatmap.Sequence
	frameIdx    int             // always within seq.Bounds()
	summary     heatmap.Summary // of the displayed frame
}

// sliderRange is the valid frame index range for the loaded sequence.
func (d *dataState) sliderRange() (lo, hi int) {
	lo, hi, ok := d.seq.Bounds()
	if !ok {
		return 0, 0
	}
	return lo, hi
}

func (d *dataState) frame() heatmap.Frame {
	return d.seq.Frame(d.frameIdx)
}
