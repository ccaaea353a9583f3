package heatmap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Extensions the loader understands, longest first so ".json.gz" wins over
// ".gz".
var frameExtensions = []string{".json.zst", ".json.gz", ".json"}

// IsFrameFile reports whether name looks like something LoadFile can read.
func IsFrameFile(name string) bool {
	return frameExt(name) != ""
}

func frameExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range frameExtensions {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// TrimFrameExt strips any known frame extension from name.
func TrimFrameExt(name string) string {
	if ext := frameExt(name); ext != "" {
		return name[:len(name)-len(ext)]
	}
	return name
}

// LoadFile reads a frame sequence from path. Plain, gzip and zstd encoded
// JSON are accepted based on the file extension.
func LoadFile(path string) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frames: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch frameExt(path) {
	case ".json.gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip frames %q: %w", filepath.Base(path), err)
		}
		defer gz.Close()
		r = gz
	case ".json.zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd frames %q: %w", filepath.Base(path), err)
		}
		defer zr.Close()
		r = zr
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported frame file %q (want .json, .json.gz or .json.zst)", filepath.Base(path))
	}

	seq, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", filepath.Base(path), err)
	}
	seq.Source = path
	return seq, nil
}

// Decode parses a JSON array of 32x64 frames and validates its shape.
func Decode(r io.Reader) (*Sequence, error) {
	var frames []Frame
	dec := json.NewDecoder(r)
	if err := dec.Decode(&frames); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	seq := &Sequence{Frames: frames}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}
