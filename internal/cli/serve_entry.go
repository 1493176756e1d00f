package prodsight

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/server"
	"github.com/mwiater/prodsight/internal/theme"
)

// runServe validates the fixtures once up front, then serves until interrupted.
func runServe(ctx context.Context, cfg appconfig.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := theme.Default().WithTitle(cfg.Title)
	if _, err := fixtures.Build(fixtures.Options{Seed: cfg.SeedValue(), Palette: t.Palette}); err != nil {
		return err
	}

	srv := server.New(server.Options{
		Addr:    cfg.ListenAddr(),
		Seed:    cfg.SeedValue(),
		Theme:   t,
		Version: Version,
	})
	return srv.Run(ctx)
}
