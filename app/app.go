package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/luphord/blitzcrop-go/capture"
	"github.com/luphord/blitzcrop-go/config"
	"github.com/luphord/blitzcrop-go/debug"
	"github.com/luphord/blitzcrop-go/domain/gallery"
	"github.com/luphord/blitzcrop-go/ui/presenter"
	"github.com/luphord/blitzcrop-go/ui/view"
)

type app struct {
	cfg            *config.Config
	logger         *slog.Logger
	container      *AppContainer
	screenshotMode bool
}

// NewApp creates the main window and assembles the container. When gal is
// nil the session crops a fresh screen capture instead of image files.
func NewApp(title string, cfg *config.Config, logger *slog.Logger, gal *gallery.Gallery) *app {
	a := &app{cfg: cfg, logger: logger, screenshotMode: gal == nil}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	a.container = BuildContainer(cfg, logger, gal)
	return a
}

// Start builds the UI, loads the first source image and enters the Tk event
// loop. Blocks until the window closes.
func (a *app) Start() error {
	c := a.container
	c.Root.Build(c.Machine, c.Machine,
		func() { c.Crop.PrevImage() },
		func() { c.Crop.NextImage() },
		a.exitHandler,
	)
	c.Crop = presenter.NewCropPresenter(
		a.logger, a.cfg, c.Extract, c.Gallery, c.Session, c.Root.Canvas, c.Root,
		func(crop image.Image, onAccept, onReject func()) {
			view.ShowAcceptDialog(crop, a.cfg.PreviewMaxWidth, a.cfg.PreviewMaxHeight, onAccept, onReject)
		},
	)
	c.Machine.AddListener(c.Crop.OnSelectionFinalized)

	if a.screenshotMode {
		var img image.Image
		var err error
		if area, ok := a.cfg.CaptureRect(); ok {
			img, err = capture.GrabRect(area)
		} else {
			img, err = capture.Grab()
		}
		if err != nil {
			return fmt.Errorf("screen capture failed: %w", err)
		}
		c.Root.Canvas.SetSource(img, "screenshot")
		c.Root.SetCurrent("screenshot", 1, 1)
	} else {
		c.Crop.ShowCurrent()
	}

	if a.cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, a.logger)
	}

	App.Wait()
	return nil
}

func (a *app) exitHandler() {
	Destroy(App)
}
