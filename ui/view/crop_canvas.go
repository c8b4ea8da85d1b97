package view

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strconv"

	"github.com/luphord/blitzcrop-go/config"
	"github.com/luphord/blitzcrop-go/domain/geometry"
	"github.com/luphord/blitzcrop-go/domain/viewport"
	"github.com/luphord/blitzcrop-go/ui/images"
	"github.com/luphord/blitzcrop-go/ui/render"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// GestureSink consumes canvas-space pointer and resize events.
type GestureSink interface {
	Press(x, y float64)
	Drag(x, y float64)
	Move(x, y float64)
	Resize(width, height int)
}

// OverlaySource exposes the live gesture geometry to draw.
type OverlaySource interface {
	ConstraintCircle() (geometry.Circle, bool)
	ProjectedPoint() (geometry.Point, bool)
	PreviewRect() (geometry.Rect, bool)
}

// CropCanvas displays the letterboxed source image with the gesture overlay
// and forwards pointer events to the selection machine. The displayed bitmap
// is exactly canvas-sized, so widget event coordinates are canvas-space.
type CropCanvas struct {
	logger  *slog.Logger
	cfg     *config.Config
	sink    GestureSink
	overlay OverlaySource

	label *LabelWidget
	photo *Img

	src           image.Image
	srcPath       string
	width, height int
}

// NewCropCanvas creates the canvas label at the given grid row and binds the
// pointer events.
func NewCropCanvas(cfg *config.Config, logger *slog.Logger, sink GestureSink, overlay OverlaySource, row int) *CropCanvas {
	c := &CropCanvas{
		logger:  logger,
		cfg:     cfg,
		sink:    sink,
		overlay: overlay,
		width:   cfg.WindowWidth,
		height:  cfg.WindowHeight,
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.photo = NewPhoto(Data(images.EncodePNG(placeholder)))
	c.label = Label(Image(c.photo), Background(cfg.Background), Borderwidth(0))
	Grid(c.label, Row(row), Column(0), Columnspan(2), Sticky("nsew"))
	c.bind()
	return c
}

func (c *CropCanvas) bind() {
	Bind(c.label, "<Button-1>", Command(func(e *Event) {
		c.sink.Press(float64(e.X), float64(e.Y))
		c.Redraw()
	}))
	Bind(c.label, "<B1-Motion>", Command(func(e *Event) {
		c.sink.Drag(float64(e.X), float64(e.Y))
		c.Redraw()
	}))
	Bind(c.label, "<Motion>", Command(func(e *Event) {
		c.sink.Move(float64(e.X), float64(e.Y))
		c.Redraw()
	}))
	Bind(c.label, "<Configure>", Command(func(e *Event) {
		w, _ := strconv.Atoi(e.Width)
		h, _ := strconv.Atoi(e.Height)
		c.onResize(w, h)
	}))
}

func (c *CropCanvas) onResize(w, h int) {
	if w < 1 || h < 1 || (w == c.width && h == c.height) {
		return
	}
	c.width, c.height = w, h
	c.sink.Resize(w, h)
	c.Redraw()
}

// SetSource replaces the displayed image.
func (c *CropCanvas) SetSource(img image.Image, path string) {
	c.src = img
	c.srcPath = path
	c.Redraw()
}

// Source returns the currently displayed image.
func (c *CropCanvas) Source() image.Image { return c.src }

// SourcePath returns the path of the currently displayed image.
func (c *CropCanvas) SourcePath() string { return c.srcPath }

// Size returns the current canvas dimensions in pixels.
func (c *CropCanvas) Size() (int, int) { return c.width, c.height }

// Redraw recomposites the letterboxed frame and the gesture overlay.
func (c *CropCanvas) Redraw() {
	frame := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	bg := render.MustColor(c.cfg.Background, color.RGBA{A: 255})
	draw.Draw(frame, frame.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if c.src != nil {
		b := c.src.Bounds()
		vp := viewport.Viewport{CanvasW: c.width, CanvasH: c.height, ImageW: b.Dx(), ImageH: b.Dy()}
		iw, ih := vp.FitSize()
		fitted := images.ScaleDisplay(c.src, iw, ih)
		origin := vp.Origin()
		ox, oy := int(origin.X), int(origin.Y)
		draw.Draw(frame, image.Rect(ox, oy, ox+iw, oy+ih), fitted, image.Point{}, draw.Src)
	}

	var ov render.Overlay
	if circle, ok := c.overlay.ConstraintCircle(); ok {
		ov.Circle = &circle
		ov.CircleColor = render.MustColor(c.cfg.CircleColor, color.RGBA{R: 255, A: 255})
	}
	if rect, ok := c.overlay.PreviewRect(); ok {
		ov.Rectangle = &rect
		ov.RectangleColor = render.MustColor(c.cfg.RectangleColor, color.RGBA{B: 255, A: 255})
	}
	if p, ok := c.overlay.ProjectedPoint(); ok {
		ov.Projected = &p
		ov.ProjectedColor = render.MustColor(c.cfg.ProjectedColor, color.RGBA{R: 255, G: 255, A: 255})
	}
	out := render.Compose(frame, ov)

	c.photo = NewPhoto(Data(images.EncodePNG(out)))
	func() {
		// Guard against a destroyed widget during shutdown.
		defer func() { _ = recover() }()
		c.label.Configure(Image(c.photo))
	}()
}
