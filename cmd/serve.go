package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"ordering-server/di"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, catalog refresh and order watcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		container, err := di.NewContainer(ctx, cfg)
		if err != nil {
			return err
		}
		return serve(ctx, container)
	},
}

func serve(ctx context.Context, c *di.Container) error {
	refresher := c.CatalogRefresherService
	if err := refresher.RefreshCatalog(ctx); err != nil {
		zap.L().Error("Initial catalog refresh failed", zap.Error(err))
	}
	if err := refresher.Start(c.Config.Catalog.RefreshSchedule); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.OrderingHttpServer.Start(gctx)
	})
	g.Go(func() error {
		return c.OrderService.Watch(gctx, c.Config.Orders.PollInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		refresher.Stop()
		return nil
	})

	return g.Wait()
}
