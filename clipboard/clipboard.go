package clipboard

import (
	"errors"

	"github.com/andareed/siftly-heatmap/logging"
	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Copy puts text on the system clipboard. When no native clipboard tool is
// available (ssh sessions, bare containers) it falls back to OSC52 so the
// terminal can take it instead.
func Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}
