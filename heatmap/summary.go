package heatmap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ContactThreshold is the reading above which a cell counts as under load.
const ContactThreshold = 5.0

// Summary describes a whole frame.
type Summary struct {
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Contact int // cells above ContactThreshold
}

// Summarize computes whole-frame statistics.
func Summarize(f Frame) Summary {
	values := f.Flatten()
	if len(values) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	s := Summary{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
	for _, v := range values {
		if v > ContactThreshold {
			s.Contact++
		}
	}
	return s
}
