package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"rrer/internal/api"
	"rrer/internal/api/handler/v1handler"
	"rrer/internal/config"
	"rrer/internal/metrics"
	"rrer/internal/notify"
	"rrer/internal/party"
	"rrer/internal/report"
	"rrer/internal/wizard"
	"rrer/internal/worker"
	"rrer/pkg/filingchannel/fincen"
	"rrer/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"golang.org/x/sync/errgroup"
	"riverqueue.com/riverui"
)

// setupServer builds the HTTP server with the queue UI mounted and starts it
// in the background. The returned function performs a graceful shutdown.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand: the API server, the filing
// worker, the wizard autosaver and the notification dispatcher in one process.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			issuer, err := party.NewIssuer(party.NewIssuerOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create link issuer", zap.Error(err))
			}

			autosaver := wizard.NewAutosaver(strg, cfg.Wizard.AutosaveDebounce)
			notifier := notify.NewPublisher(cfg.Notify.Buffer)
			dispatcher := notify.NewDispatcher(notify.LogSender{}, notifier.Inbox())

			channel := fincen.New(
				&http.Client{Timeout: cfg.Filing.RequestTimeout},
				cfg.Filing.BaseURL,
				cfg.Filing.APIKey)

			service := report.New(strg, channel, issuer, autosaver, metrics.New(), notifier)

			riverClient, err := worker.Start(ctx, strg.Pool, service, cfg.Filing.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start worker", zap.Error(err))
			}

			queueUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/queue",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create queue UI", zap.Error(err))
			}

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error { autosaver.Run(groupCtx); return nil })
			group.Go(func() error { return dispatcher.Run(groupCtx) })
			group.Go(func() error { return queueUI.Start(groupCtx) })

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:    v1handler.Deps{Service: service},
				QueueUI: queueUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping worker...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop worker", zap.Error(err))
			}

			if err := group.Wait(); err != nil {
				logger.Error(ctx, "background task failed", zap.Error(err))
			}
		},
	}

	return cmd
}
