package heatmap

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed colour domain. Readings outside it clamp to the end colours.
const (
	DomainMin = 0.0
	DomainMax = 100.0
)

// ColorBrewer YlOrRd, 9 classes.
var ylOrRd = []string{
	"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
	"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
}

var ylOrRdStops = parseStops(ylOrRd)

func parseStops(hexes []string) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("heatmap: bad colour stop %q: %v", h, err))
		}
		stops[i] = c
	}
	return stops
}

// Scale maps a reading onto a sequential colour ramp.
type Scale struct {
	min, max float64
	stops    []colorful.Color
}

// NewScale builds the YlOrRd scale over [min, max].
func NewScale(min, max float64) Scale {
	return Scale{min: min, max: max, stops: ylOrRdStops}
}

// DefaultScale is the scale every frame is drawn with.
func DefaultScale() Scale {
	return NewScale(DomainMin, DomainMax)
}

// Normalize maps v into [0,1] across the domain. NaN maps to 0.
func (s Scale) Normalize(v float64) float64 {
	if math.IsNaN(v) || s.max <= s.min {
		return 0
	}
	t := (v - s.min) / (s.max - s.min)
	return math.Max(0, math.Min(1, t))
}

// Color returns the ramp colour for v.
func (s Scale) Color(v float64) colorful.Color {
	t := s.Normalize(v)
	n := len(s.stops) - 1
	pos := t * float64(n)
	i := int(math.Floor(pos))
	if i >= n {
		return s.stops[n]
	}
	return s.stops[i].BlendRgb(s.stops[i+1], pos-float64(i)).Clamped()
}

// Hex returns Color(v) as "#rrggbb", ready for lipgloss.Color.
func (s Scale) Hex(v float64) string {
	return s.Color(v).Hex()
}

// Contrast picks black or white text for a readable label on v's colour.
func (s Scale) Contrast(v float64) string {
	_, _, l := s.Color(v).Hsl()
	if l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// Ticks returns n evenly spaced values across the domain, ends included.
func (s Scale) Ticks(n int) []float64 {
	if n < 2 {
		return []float64{s.min}
	}
	out := make([]float64, n)
	step := (s.max - s.min) / float64(n-1)
	for i := range out {
		out[i] = s.min + step*float64(i)
	}
	return out
}
