package app

import (
	"log/slog"
	"os"

	ff "github.com/shandysiswandi/goflightfinder/internal/flightfinder"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flight-finder.enabled") {
		if err := ff.New(ff.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module flight-finder", "error", err)
			os.Exit(1)
		}
	}
}
