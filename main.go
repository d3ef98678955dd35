package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-torus/render"
	"github.com/sheikhrachel/go-gol-torus/runner"
	"github.com/sheikhrachel/go-gol-torus/utils"
	"github.com/sheikhrachel/go-gol-torus/window"
)

const defaultConfigFile = "config.json"

func main() {
	var (
		configFile = flag.String("config", defaultConfigFile, "path to a JSON config file")
		useWindow  = flag.Bool("window", false, "open a window instead of drawing in the terminal (needs -tags ebiten)")
		randomize  = flag.Bool("random", false, "start from a randomized grid")
		pattern    = flag.String("pattern", "", "preset to stamp at start: glider-gun, pulsar or penta-decathlon")
		run        = flag.Bool("run", false, "start running instead of paused")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if the default file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if *configFile != defaultConfigFile || !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("config: %+v", err)
		}
		log.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if *pattern != "" {
		config.InitialPattern = *pattern
	}
	if *run {
		config.StartRunning = true
	}

	sim, err := initializeSimulation(config, *randomize)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *useWindow {
		if err = window.Run(ctx, sim, config); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	displayGameInfo(os.Stderr, sim)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		commands  = make(chan runner.Command)
		r         = runner.New(sim, render.NewTerminalRenderer(os.Stdout, true), config)
	)

	eg.Go(func() error {
		defer cancel()
		return r.Run(egCtx, commands)
	})
	eg.Go(func() error {
		return forwardCommands(egCtx, scanLines(egCtx, os.Stdin), commands)
	})

	if err = eg.Wait(); err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("Shutting down: %d generations in %.1f seconds", r.Steps(), r.Status().Stats.Runtime().Seconds())
}
