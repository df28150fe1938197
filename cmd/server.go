package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"
	"trading-signal-bot/internal/delivery/http"
	"trading-signal-bot/internal/delivery/telegram"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run trading-signal-bot",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {

	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo, err := repository.NewRepository(appDep.cfg, appDep.db.DB, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	services := service.NewService(
		appDep.cfg,
		appDep.log,
		repo,
		appDep.sessions,
		appDep.telegram,
	)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo)

	telegramHandler := telegram.NewTelegramBotHandler(
		ctx,
		appDep.cfg,
		appDep.log,
		appDep.telegramBot,
		appDep.telegram,
		appDep.validator,
		services,
		appDep.sessions,
		repo,
	)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	if err := services.KeepAliveService.Start(ctx); err != nil {
		log.Fatalf("Failed to start keep-alive pinger: %v", err)
	}
	appDep.telegram.StartCleanupExpired(ctx)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		telegramHandler.Start()
		return nil
	})

	// Wait for shutdown signal
	<-ctx.Done()
	appDep.log.Info("Shutting down gracefully...")

	telegramHandler.Stop()
	services.KeepAliveService.Stop()
	appDep.telegram.StopCleanupExpired()

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := g.Wait(); err != nil {
		appDep.log.Error("Background worker exited with error")
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
