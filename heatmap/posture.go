package heatmap

import (
	"path/filepath"
	"strings"
)

const UnknownPosture = "Unknown"

// Recording number to in-bed posture, following the order the subjects were
// asked to lie in.
var postures = map[string]string{
	"1":  "Supine",
	"2":  "Right",
	"3":  "Left",
	"4":  "Right 30° Wedge",
	"5":  "Right 60° Wedge",
	"6":  "Left 30° Wedge",
	"7":  "Left 60° Wedge",
	"8":  "Supine Star",
	"9":  "Supine Hand Crossed",
	"10": "Supine Knee Up",
	"11": "Supine Right Knee Up",
	"12": "Supine Left Knee Up",
	"13": "Right Fetus",
	"14": "Left Fetus",
	"15": "Supine 30° Bed Incline",
	"16": "Supine 45° Bed Incline",
	"17": "Supine 60° Bed Incline",
}

// Posture returns the display label for a recording file. Directories and
// frame extensions are ignored, so "data_json/13.json" and "13.json.zst"
// both resolve to "Right Fetus".
func Posture(file string) string {
	key := TrimFrameExt(filepath.Base(file))
	if label, ok := postures[strings.TrimSpace(key)]; ok {
		return label
	}
	return UnknownPosture
}
