package main

import (
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/window"
)

func main() {
	logger := config.NewLogger(os.Stderr, "window")

	tuning, err := config.Load(config.GetEnv("SHMUP_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}
	seed := config.GetEnvUint("SHMUP_SEED", rand.Uint64())

	renderer := window.NewRenderer(tuning)
	// ebiten paces Update itself, so the driver gets no clock.
	driver := loop.New(window.Keyboard{}, renderer, nil, loop.Options{
		Tuning: tuning,
		Rand:   rand.New(rand.NewPCG(seed, seed)),
		Logger: logger,
	})

	width, height := int(tuning.Arena.Width), int(tuning.Arena.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("shmup")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tuning.TickRate)

	logger.Info("starting", "seed", seed)
	if err := ebiten.RunGame(window.NewGame(driver, renderer, width, height)); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("finished", "ticks", driver.Ticks(), "score", driver.Arena().Score())
}
