package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"fundboard/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Run reconciliation passes on the refresh schedule until interrupted.
func main() {
	log.Println("fundboard worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("fundboard worker stopped with error: %v", err)
	}
	log.Println("fundboard worker stopped")
}
