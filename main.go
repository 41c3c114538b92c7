package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	// cancelled on shutdown, ends the toast streams and the pruner
	ctx, cancel := context.WithCancel(context.Background())

	go server.Hub.RunPruner(ctx, server.Cfg.Toast.PruneInterval, server.Cfg.Toast.SessionIdleTimeout)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.Port),
		Handler: server.Engine,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		server.Logger.Info("server started", zap.String("port", server.Port))
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	server.Logger.Info("shutting down server")
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	err = multierr.Combine(
		httpServer.Shutdown(shutdownCtx),
		server.Logger.Sync(),
	)
	if err != nil {
		log.Printf("server did not shut down cleanly: %s", err)
	}
}
