package app

import (
	"log/slog"

	"github.com/luphord/blitzcrop-go/config"
	"github.com/luphord/blitzcrop-go/domain/crop"
	"github.com/luphord/blitzcrop-go/domain/gallery"
	"github.com/luphord/blitzcrop-go/domain/selection"
	"github.com/luphord/blitzcrop-go/ui/model"
	"github.com/luphord/blitzcrop-go/ui/presenter"
	"github.com/luphord/blitzcrop-go/ui/view"
)

// AppContainer assembles the domain services, views and presenters.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Machine *selection.Machine
	Extract *crop.Extractor
	Gallery *gallery.Gallery
	Session *model.SessionModel
	Root    *view.RootView
	Crop    *presenter.CropPresenter
}

// BuildContainer constructs all widget-free components. The crop presenter is
// wired in Start once the root view has built the canvas. gal may be nil for
// screenshot sessions.
func BuildContainer(cfg *config.Config, logger *slog.Logger, gal *gallery.Gallery) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Gallery: gal}
	c.Machine = selection.NewMachine(logger)
	c.Extract = crop.NewExtractor(logger)
	c.Session = model.NewSessionModel()
	c.Root = view.NewRootView(cfg, logger)
	return c
}
