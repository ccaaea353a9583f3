package heatmap_test

import (
	"math"
	"testing"

	"github.com/andareed/siftly-heatmap/heatmap"
)

func TestScaleEndsAndClamp(t *testing.T) {
	s := heatmap.DefaultScale()
	tests := []struct {
		v    float64
		want string
	}{
		{0, "#ffffcc"},
		{-20, "#ffffcc"},
		{100, "#800026"},
		{250, "#800026"},
		{50, "#fd8d3c"},
	}
	for _, tt := range tests {
		if got := s.Hex(tt.v); got != tt.want {
			t.Errorf("Hex(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
	if s.Normalize(math.NaN()) != 0 {
		t.Fatalf("NaN should normalise to 0")
	}
}

func TestScaleIsMonotonicInLightness(t *testing.T) {
	s := heatmap.DefaultScale()
	prev := math.Inf(1)
	for _, v := range s.Ticks(21) {
		l, _, _ := s.Color(v).Lab()
		if l > prev+1e-9 {
			t.Fatalf("lightness rose at %v: %v > %v", v, l, prev)
		}
		prev = l
	}
}

func TestScaleContrast(t *testing.T) {
	s := heatmap.DefaultScale()
	if s.Contrast(0) != "#000000" {
		t.Fatalf("light end should use dark text")
	}
	if s.Contrast(100) != "#ffffff" {
		t.Fatalf("dark end should use light text")
	}
}
