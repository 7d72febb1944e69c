// Package wallpaper sets the rendered chart as the desktop background.
package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reujab/wallpaper"
	"go.uber.org/zap"
)

// Set applies the image at path as the desktop wallpaper. The file must
// already exist: a render failure should never clear the desktop.
func Set(path string, log *zap.SugaredLogger) error {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve wallpaper path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("wallpaper image missing: %w", err)
	}

	if err := wallpaper.SetFromFile(abs); err != nil {
		return fmt.Errorf("set wallpaper: %w", err)
	}
	log.Infow("wallpaper set", "path", abs)
	return nil
}
