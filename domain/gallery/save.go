package gallery

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// SaveCrop writes an accepted crop as a PNG next to the session's output
// directory, named after the source image and a timestamp:
// <stem>_crop_<timestamp>.png. Returns the written path.
func SaveCrop(img image.Image, srcPath, outDir, timestampFormat string, now time.Time) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "capture"
	}
	name := fmt.Sprintf("%s_crop_%s.png", stem, now.Format(timestampFormat))
	path := filepath.Join(outDir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save crop: %w", err)
	}
	return path, nil
}
