package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/flash-brew-digital/create-webflow-extension/cmd/cli"
)

// main runs create-webflow-extension until it finishes or receives SIGINT/SIGTERM.
func main() {
	executionContext, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := cli.Execute(executionContext)
	stop()
	os.Exit(exitCode)
}
