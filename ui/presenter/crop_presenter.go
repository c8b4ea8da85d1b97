package presenter

import (
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/luphord/blitzcrop-go/config"
	"github.com/luphord/blitzcrop-go/domain/gallery"
	"github.com/luphord/blitzcrop-go/domain/geometry"
	"github.com/luphord/blitzcrop-go/ui/model"
)

// Extractor turns a finalized canvas-space selection into an upright crop.
type Extractor interface {
	Extract(sel geometry.Rect, src image.Image, canvasW, canvasH int) (image.Image, error)
}

// CanvasAccess is the view surface the presenter reads selections against.
type CanvasAccess interface {
	Size() (int, int)
	Source() image.Image
	SourcePath() string
	SetSource(img image.Image, path string)
}

// StatusView displays gallery position and session counters.
type StatusView interface {
	SetCurrent(name string, index, total int)
	SetCounts(accepted, rejected int)
}

// DialogFunc presents a crop for confirmation and calls exactly one callback.
type DialogFunc func(crop image.Image, onAccept, onReject func())

// CropPresenter connects finalized selections to extraction, confirmation and
// persistence, and drives gallery navigation.
type CropPresenter struct {
	logger    *slog.Logger
	cfg       *config.Config
	extractor Extractor
	gallery   *gallery.Gallery
	session   *model.SessionModel
	canvas    CanvasAccess
	status    StatusView
	dialog    DialogFunc
	now       func() time.Time
}

// NewCropPresenter returns a wired CropPresenter. gallery may be nil when the
// session runs on a single screenshot source.
func NewCropPresenter(
	logger *slog.Logger,
	cfg *config.Config,
	extractor Extractor,
	gal *gallery.Gallery,
	session *model.SessionModel,
	canvas CanvasAccess,
	status StatusView,
	dialog DialogFunc,
) *CropPresenter {
	return &CropPresenter{
		logger:    logger,
		cfg:       cfg,
		extractor: extractor,
		gallery:   gal,
		session:   session,
		canvas:    canvas,
		status:    status,
		dialog:    dialog,
		now:       time.Now,
	}
}

// OnSelectionFinalized runs the extraction pipeline for a completed gesture
// and opens the confirmation dialog. Registered as a selection listener.
func (p *CropPresenter) OnSelectionFinalized(sel geometry.Rect) {
	src := p.canvas.Source()
	if src == nil {
		return
	}
	w, h := p.canvas.Size()
	crop, err := p.extractor.Extract(sel, src, w, h)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("crop extraction failed", "error", err)
		}
		return
	}
	p.dialog(crop, func() { p.accept(crop) }, p.reject)
}

func (p *CropPresenter) accept(crop image.Image) {
	path, err := gallery.SaveCrop(crop, p.canvas.SourcePath(), p.cfg.OutputDir, p.cfg.TimestampFormat, p.now())
	if err != nil {
		if p.logger != nil {
			p.logger.Error("saving crop failed", "error", err)
		}
		return
	}
	p.session.Accept()
	p.pushCounts()
	if p.logger != nil {
		p.logger.Info("crop accepted", "path", path)
	}
}

func (p *CropPresenter) reject() {
	p.session.Reject()
	p.pushCounts()
	if p.logger != nil {
		p.logger.Info("crop rejected")
	}
}

// NextImage advances the gallery and loads the next source image.
func (p *CropPresenter) NextImage() { p.navigate(func() { p.gallery.Next() }) }

// PrevImage steps the gallery back and loads the previous source image.
func (p *CropPresenter) PrevImage() { p.navigate(func() { p.gallery.Prev() }) }

// ShowCurrent loads the gallery's current image into the canvas.
func (p *CropPresenter) ShowCurrent() { p.navigate(func() {}) }

func (p *CropPresenter) navigate(step func()) {
	if p.gallery == nil {
		return
	}
	step()
	img, err := p.gallery.Open()
	if err != nil {
		if p.logger != nil {
			p.logger.Error("loading image failed", "path", p.gallery.Current(), "error", err)
		}
		return
	}
	p.canvas.SetSource(img, p.gallery.Current())
	p.pushCurrent()
}

func (p *CropPresenter) pushCurrent() {
	if p.status != nil && p.gallery != nil {
		p.status.SetCurrent(filepath.Base(p.gallery.Current()), p.gallery.Index()+1, p.gallery.Len())
	}
}

func (p *CropPresenter) pushCounts() {
	if p.status != nil {
		a, r := p.session.Values()
		p.status.SetCounts(a, r)
	}
}
