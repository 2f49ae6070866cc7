package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"isogen/internal/bootstrap"
	"isogen/internal/config"
	"isogen/internal/core/domain"
	"isogen/internal/observability/logging"
	"isogen/internal/observability/metrics"
)

const serviceName = "isogen-worker"

func main() {
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger(serviceName, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		log.Printf("worker metrics on :%s", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("worker metrics server error: %v", err)
		}
	}()

	log.Printf("worker subscribed to %s", cfg.NATSSubject)
	err = app.Queue.SubscribeChatReplyRequested(ctx, func(handlerCtx context.Context, req domain.ChatReplyRequest) error {
		workerMetrics.ObserveQueueLag(serviceName, time.Since(req.RequestedAt))
		workerMetrics.StartReply()
		start := time.Now()

		processCtx, cancel := context.WithTimeout(handlerCtx, time.Minute)
		defer cancel()

		processErr := app.ReplyUC.ProcessReply(processCtx, req)
		workerMetrics.FinishReply(serviceName, time.Since(start), processErr)
		return processErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
}
