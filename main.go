package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/api"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		panic("missing arguments")
	}
	if args.ServerConfig.Production {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
	server, err := api.NewServer(args.ServerConfig)
	if err != nil {
		panic(err)
	}
	defer server.Close()

	httpServer := &http.Server{
		Addr:    args.ServerURL,
		Handler: server.Handler(),
	}
	// 關閉計數器訂閱，讓 SSE 連線可以結束；儲存連線在 Shutdown 之後才由 defer 關閉
	httpServer.RegisterOnShutdown(server.CloseSubscriptions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Fail to shutdown server", slog.Any("error", err))
		}
	}()

	slog.Info("Start server", slog.String("addr", args.ServerURL), slog.String("env", args.Env))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
	<-shutdownDone
}
