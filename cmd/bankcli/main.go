package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tarun5004/bankd/internal/cli"
	"github.com/tarun5004/bankd/internal/service/account"
	"github.com/tarun5004/bankd/internal/storage/jsonfile"
)

const defaultDBPath = "data.json"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	// The CLI talks to a terminal; keep log output quiet and on stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	path := strings.TrimSpace(os.Getenv("BANK_DB_PATH"))
	if path == "" {
		path = defaultDBPath
	}
	store, err := jsonfile.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open backing file %s: %v\n", path, err)
		os.Exit(1)
	}

	svc := account.New(store, store)
	if err := cli.Run(ctx, svc, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
