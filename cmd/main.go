package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/fathom_migrator/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli := app.CLI{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	code := cli.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
