package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hangman/cmd"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
		// The shell notices cancellation at its next prompt; a second signal kills the process
		signal.Stop(sigChan)
		fmt.Fprintln(os.Stderr, "\nInterrupted. Press Enter to leave, or Ctrl-C again to force.")
	}()

	// Run the application
	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
