package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "convert" {
		os.Exit(runConvert(args[1:], os.Stdout, os.Stderr))
	}

	cfg, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	// --- EARLY EXIT ---
	if cfg.version {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(cfg.debugLog)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-heatmap: Started data=%s initial=%s", cfg.dataDir, cfg.initial)

	m := newModel(cfg)
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// runConvert turns raw sensor text dumps into the JSON frame files the viewer
// reads.
func runConvert(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limit := fs.Int("limit", heatmap.DefaultConvertLimit, "frames to keep per recording (0 keeps all)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: sfheat convert [-limit 60] <txt-dir> <json-dir>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	results, err := heatmap.ConvertDir(fs.Arg(0), fs.Arg(1), *limit)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "Error processing %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(stdout, "Converted %s -> %s (%d frames)\n", r.Input, r.Output, r.Frames)
	}
	if failed > 0 {
		return 1
	}
	return 0
}
