package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleDisplay resizes the source to exactly w x h using the fast
// nearest-neighbour filter. Used for the live canvas, where the letterbox
// fit has already decided the target size.
func ScaleDisplay(src image.Image, w, h int) *image.NRGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(src, w, h, imaging.NearestNeighbor)
}

// FitPreview scales the source down to fit within maxW x maxH preserving
// aspect ratio, with a quality filter. Used for the accept dialog preview.
// If the source already fits, it is returned unchanged.
func FitPreview(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}
