// Package catalog lists the recordings available in a data directory and
// watches it for changes.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/andareed/siftly-heatmap/heatmap"
)

// Entry is one loadable recording.
type Entry struct {
	Name    string // base file name, e.g. "13.json"
	Path    string
	Posture string
}

// Scan lists the frame files directly inside dir. Numeric names sort by
// value so "2.json" comes before "10.json"; everything else sorts after them
// by name.
func Scan(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}
	var out []Entry
	for _, de := range des {
		if de.IsDir() || !heatmap.IsFrameFile(de.Name()) {
			continue
		}
		out = append(out, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			Posture: heatmap.Posture(de.Name()),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Name, out[j].Name)
	})
	return out, nil
}

func less(a, b string) bool {
	na, aok := numericStem(a)
	nb, bok := numericStem(b)
	switch {
	case aok && bok:
		if na != nb {
			return na < nb
		}
		return a < b
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

func numericStem(name string) (int, bool) {
	n, err := strconv.Atoi(heatmap.TrimFrameExt(name))
	return n, err == nil
}

// IndexOf returns the position of path in entries, or -1.
func IndexOf(entries []Entry, path string) int {
	clean := filepath.Clean(path)
	for i, e := range entries {
		if filepath.Clean(e.Path) == clean {
			return i
		}
	}
	return -1
}
