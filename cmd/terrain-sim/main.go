package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xlab/closer"

	"gridterrain/internal/config"
	"gridterrain/internal/game"
	"gridterrain/internal/profiling"
)

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func main() {
	cfg := config.Default()

	configPath := flag.String("config", "", "YAML config file")
	flag.Int64Var(&cfg.Terrain.Seed, "seed", cfg.Terrain.Seed, "terrain seed, 0 picks one at random")
	flag.StringVar(&cfg.Noise.Backend, "noise", cfg.Noise.Backend, "noise backend: simplex, perlin, value or constant")
	flag.IntVar(&cfg.Terrain.ChunkRadius, "radius", cfg.Terrain.ChunkRadius, "chunk half-width in cells")
	flag.IntVar(&cfg.Terrain.RegenMargin, "margin", cfg.Terrain.RegenMargin, "distance to the chunk edge that triggers a shift")
	cellSize := flag.Float64("cell-size", float64(cfg.Terrain.CellSize), "cell edge length in world units")
	frames := flag.Int("frames", 1200, "frames to simulate, 0 runs until interrupted")
	realtime := flag.Bool("realtime", false, "pace frames on the wall clock instead of stepping as fast as possible")
	levelName := flag.String("log-level", "info", "debug, info, warn or error")
	profile := flag.Bool("profile", true, "record timing buckets and report them on exit")
	topN := flag.Int("profile-top", 8, "profiling buckets to report on exit")
	flag.Parse()
	profiling.SetEnabled(*profile)
	cfg.Terrain.CellSize = float32(*cellSize)

	level, err := parseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(&cfg, &fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	sess, err := game.NewSession(cfg, walkScript(), log)
	if err != nil {
		log.Error("start session", "error", err)
		os.Exit(1)
	}

	closer.Bind(func() {
		log.Info("session finished", "stats", sess.Stats())
		if *profile {
			log.Info("profiling",
				"terrain_total", profiling.SumWithPrefix("terrain."),
				"top", profiling.TopN(*topN))
		}
	})
	defer closer.Close()

	if *realtime {
		// Interrupts go through closer, which reports and exits.
		if err := sess.Loop.Run(context.Background(), *frames); err != nil {
			log.Error("run", "error", err)
			closer.Exit(1)
		}
		return
	}
	for n := 0; *frames <= 0 || n < *frames; n++ {
		sess.Loop.Step(sess.Loop.PhysicsStep())
	}
}
