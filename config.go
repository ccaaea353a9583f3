package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/andareed/siftly-heatmap/heatmap"
)

type config struct {
	debugLog  string
	version   bool
	dataDir   string
	fps       int
	zoom      int
	watch     bool
	initial   string // optional file to open first
	frameTick time.Duration
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("sfheat", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.debugLog, "debug", "", "Write Debug Logs to file")
	fs.BoolVar(&cfg.version, "version", false, "print version and exit")
	fs.StringVar(&cfg.dataDir, "data", "data_json", "directory holding the recording JSON files")
	fs.IntVar(&cfg.fps, "fps", 10, "playback speed in frames per second")
	fs.IntVar(&cfg.zoom, "zoom", 2, fmt.Sprintf("terminal columns per sensor cell (%d-%d)", heatmap.MinZoom, heatmap.MaxZoom))
	fs.BoolVar(&cfg.watch, "watch", true, "watch the data directory for new recordings")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: sfheat [flags] [file.json]")
		fmt.Fprintln(out, "       sfheat convert [-limit 60] <txt-dir> <json-dir>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.initial = rest[0]
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	cfg.frameTick = time.Second / time.Duration(cfg.fps)
	return cfg, nil
}

func (c config) validate() error {
	var errs []error
	if c.fps < 1 || c.fps > 60 {
		errs = append(errs, fmt.Errorf("--fps %d out of range 1-60", c.fps))
	}
	if c.zoom < heatmap.MinZoom || c.zoom > heatmap.MaxZoom {
		errs = append(errs, fmt.Errorf("--zoom %d out of range %d-%d", c.zoom, heatmap.MinZoom, heatmap.MaxZoom))
	}
	if c.dataDir == "" && c.initial == "" {
		errs = append(errs, errors.New("need --data or a file to open"))
	}
	return errors.Join(errs...)
}
