package heatmap_test

import (
	"math"
	"testing"

	"github.com/andareed/siftly-heatmap/heatmap"
)

func TestSummarize(t *testing.T) {
	f := constFrame(0)
	f[0][0] = 100
	f[1][1] = 6
	s := heatmap.Summarize(f)
	if s.Max != 100 || s.Min != 0 || s.Contact != 2 {
		t.Fatalf("Summarize = %+v", s)
	}
	if math.Abs(s.Mean-106.0/heatmap.CellCount) > 1e-9 {
		t.Fatalf("Mean = %v", s.Mean)
	}
}
