package view

import (
	"log/slog"

	"github.com/luphord/blitzcrop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the crop canvas and the status bar.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Canvas  *CropCanvas
	Session SessionStats
}

// UI abstracts the subset of view operations needed by presenters.
type UI interface {
	SetCurrent(name string, index, total int)
	SetCounts(accepted, rejected int)
}

// NewRootView returns an unbuilt RootView.
func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: the canvas fills the window, the status bar
// sits below it. Handlers are invoked on gallery navigation and exit.
func (rv *RootView) Build(sink GestureSink, overlay OverlaySource, onPrev, onNext, onExit func()) {
	if rv == nil {
		return
	}
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 1, Weight(0))

	rv.Canvas = NewCropCanvas(rv.cfg, rv.logger, sink, overlay, 0)
	rv.Session = NewSessionStats(1)

	Bind(App, "<Left>", Command(onPrev))
	Bind(App, "<Right>", Command(onNext))
	Bind(App, "<q>", Command(onExit))
}

// SetCurrent proxies to the status bar.
func (rv *RootView) SetCurrent(name string, index, total int) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetCurrent(name, index, total)
	}
}

// SetCounts proxies to the status bar.
func (rv *RootView) SetCounts(accepted, rejected int) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetCounts(accepted, rejected)
	}
}
