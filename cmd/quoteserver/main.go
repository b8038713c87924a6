package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moving-quote-agent/internal/di"
	"moving-quote-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewQuoteContainer(di.LoadQuoteConfig(envService))
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// os.Exit skips deferred calls, so Close runs before the exit code is
	// acted on.
	code := run(container, quit)
	container.Close()
	if code != 0 {
		os.Exit(code)
	}
}

func run(container *di.QuoteContainer, quit <-chan os.Signal) int {
	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Server.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server stopped", "error", err)
			return 1
		}
		return 0
	case <-quit:
		container.Logger.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Server.Shutdown(ctx); err != nil {
			container.Logger.Error("Shutdown failed", "error", err)
			return 1
		}
		<-errCh
		return 0
	}
}
