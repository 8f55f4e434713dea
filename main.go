package main

import (
	"context"
	"log/slog"
	"os"

	"envedit/cmd"
	"envedit/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	// Recover from logger.FatalError so deferred cleanup still runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
	}()

	return cmd.Execute(ctx, os.Args[1:])
}
