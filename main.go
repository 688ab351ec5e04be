package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/overloaded-adder/modules/adder"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Framework logs stay at error level so stdout carries only the result lines.
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelError),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Register(adder.NewModule(os.Stdout)); err != nil {
		log.Fatalf("Failed to register module: %v", err)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	container := app.Services("adder")
	if container == nil {
		log.Fatal("Adder service container not available")
	}

	runErr := adder.Run(ctx, adder.NewAdderAdapter(container), adder.Sequence)

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	if err := app.Stop(stopCtx); err != nil {
		log.Printf("Failed to stop application: %v", err)
	}
	cancel()

	if runErr != nil {
		log.Fatalf("Add sequence failed: %v", runErr)
	}
}
