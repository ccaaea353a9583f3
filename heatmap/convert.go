package heatmap

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultConvertLimit keeps converted recordings light enough to scrub
// through interactively.
const DefaultConvertLimit = 60

// ParseText reads a raw sensor dump: whitespace separated readings, each
// consecutive run of 2048 forming one frame. Only the first limit frames are
// kept; limit <= 0 keeps them all.
func ParseText(r io.Reader, limit int) (*Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var (
		frames []Frame
		cur    = make([]float64, 0, CellCount)
		n      int
	)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", n, err)
		}
		n++
		cur = append(cur, v)
		if len(cur) == CellCount {
			frames = append(frames, reshape(cur))
			cur = cur[:0]
			if limit > 0 && len(frames) == limit {
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cur) != 0 {
		return nil, fmt.Errorf("%d trailing values do not fill a %dx%d frame", len(cur), Rows, Cols)
	}
	seq := &Sequence{Frames: frames}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

func reshape(flat []float64) Frame {
	f := make(Frame, Rows)
	for r := range f {
		row := make([]float64, Cols)
		copy(row, flat[r*Cols:(r+1)*Cols])
		f[r] = row
	}
	return f
}

// Encode writes seq in the JSON frame format LoadFile reads.
func Encode(w io.Writer, seq *Sequence) error {
	return json.NewEncoder(w).Encode(seq.Frames)
}

// ConvertResult is the outcome for one input file of ConvertDir.
type ConvertResult struct {
	Input  string
	Output string
	Frames int
	Err    error
}

// ConvertDir turns every *.txt dump in inDir into <name>.json in outDir.
// A bad input file is reported in its result and doesn't stop the run.
func ConvertDir(inDir, outDir string, limit int) ([]ConvertResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	results := make([]ConvertResult, 0, len(names))
	for _, name := range names {
		res := ConvertResult{
			Input:  filepath.Join(inDir, name),
			Output: filepath.Join(outDir, strings.TrimSuffix(name, ".txt")+".json"),
		}
		res.Frames, res.Err = convertFile(res.Input, res.Output, limit)
		results = append(results, res)
	}
	return results, nil
}

func convertFile(in, out string, limit int) (int, error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	seq, err := ParseText(src, limit)
	if err != nil {
		return 0, err
	}

	dst, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	if err := Encode(dst, seq); err != nil {
		dst.Close()
		return 0, err
	}
	return seq.Len(), dst.Close()
}
