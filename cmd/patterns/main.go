// Package main provides the patterns CLI, a console tour of the classic
// object-oriented design patterns.
package main

import (
	"context"
	"os"
	"os/signal"

	"patternshell/cmd/patterns/internal/cli"
	"patternshell/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error("Command failed", "error", err)
	}
	_ = logger.Close()

	if err != nil {
		stop()
		os.Exit(1)
	}
}
