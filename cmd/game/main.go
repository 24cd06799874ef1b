package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load(config.GetEnv("SHMUP_CONFIG", ""))
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SHMUP_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := config.GetEnvUint("SHMUP_SEED", rand.Uint64())
	logger.Info("starting", "seed", seed, "tickRate", tuning.TickRate)

	screen := draw.NewTerminal(os.Stdout, nil, tuning)
	if err := screen.Begin(); err != nil {
		return err
	}
	defer func() {
		_ = screen.End()
	}()

	driver := loop.New(input.StartStream(os.Stdin), screen, loop.NewPacer(tuning.TickRate), loop.Options{
		Tuning: tuning,
		Rand:   rand.New(rand.NewPCG(seed, seed)),
		Logger: logger,
	})
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("finished", "ticks", driver.Ticks(), "score", driver.Arena().Score())
	return nil
}
