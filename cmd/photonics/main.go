package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"syscall"

	"github.com/lukaszgryglicki/photonics/internal/batch"
)

func main() {
	os.Exit(run())
}

func run() int {
	batch.Debug = os.Getenv("DEBUG") != ""
	batch.DBPath = os.Getenv("DB")
	batch.RawOut = os.Getenv("RAW")
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		batch.Workers = w
	}

	level := slog.LevelInfo
	if batch.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			slog.Error("cannot create profile", "error", err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			slog.Error("cannot start profile", "error", err)
			return 1
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := batch.ConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := batch.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
