package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kz2wd/time-tracker/internal/api"
	"github.com/kz2wd/time-tracker/internal/cli"
	"github.com/kz2wd/time-tracker/internal/config"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The store is opened lazily on the first operation and reused for the
	// rest of the process.
	lazyAPI := api.NewLazy(func() (sqlite.Repository, error) {
		return config.CreateRepository(cfg)
	})
	defer lazyAPI.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	root := cli.NewRootCommand(lazyAPI)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
