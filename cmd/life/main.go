package main

import (
	"flag"
	"io"
	"log"
	"os"

	"lifegrid/internal/app"
	_ "lifegrid/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("create %s: %v", cfg.SimName, err)
	}
	sim.Reset(cfg.Sim.Seed)

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if cfg.Quiet {
		logger.SetOutput(io.Discard)
	}

	runner, err := app.NewRunner(sim, cfg, os.Stdout, logger)
	if err != nil {
		log.Fatalf("prepare run: %v", err)
	}
	if err := runner.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
