package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vault-tracker/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The root command loads config, opens the vault store and saves it again on exit.
	root := cli.NewRootCommand(cli.OpenAPI)
	root.SetIO(os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
