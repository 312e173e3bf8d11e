// galaxy-rl runs headless episodes of the ship grid world: hostile
// separatists chase, neutral republic ships flee, and a random-walk stand-in
// plays the agent. Build:
//
//	go build -o galaxy-rl .
//
// Usage:
//
//	./galaxy-rl [--config scenario.yaml] [--episodes 1] [--seed 0]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"galaxy-rl/internal/component"
	"galaxy-rl/internal/config"
	"galaxy-rl/internal/env"
	"galaxy-rl/internal/logger"
	"galaxy-rl/internal/trace"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML scenario (stock scenario if empty)")
	episodes := flag.Int("episodes", 1, "Number of episodes to run")
	seed := flag.Int64("seed", 0, "RNG seed; overrides the scenario seed when non-zero")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log := logger.New(logger.FromEnv(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}))
	if err := run(cfg, *episodes, log); err != nil {
		log.WithError(err).Fatal("run failed")
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// run plays the requested number of episodes and, when tracing is on, writes
// one trace file per episode plus a summary line to episodes.jsonl.
func run(cfg config.Config, episodes int, log *logrus.Logger) error {
	if episodes < 1 {
		return fmt.Errorf("episodes must be at least 1, got %d", episodes)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("starting")

	rng := rand.New(rand.NewSource(seed))
	e, err := env.New(cfg, rng, log)
	if err != nil {
		return err
	}

	traceDir := ""
	if cfg.Trace.Enabled {
		traceDir = cfg.Trace.Dir
		if traceDir == "" {
			if traceDir, err = trace.DefaultDir(); err != nil {
				return fmt.Errorf("trace dir: %w", err)
			}
		}
	}

	started := time.Now()
	for ep := 1; ep <= episodes; ep++ {
		if ep > 1 {
			if err := e.Reset(); err != nil {
				return err
			}
		}
		if err := playEpisode(e, rng, traceDir, started, log); err != nil {
			return err
		}
	}
	return nil
}

func playEpisode(e *env.Env, rng *rand.Rand, traceDir string, started time.Time, log *logrus.Logger) error {
	var w *trace.Writer
	if traceDir != "" {
		var err error
		w, err = trace.Create(trace.EpisodePath(traceDir, started, e.Episode()))
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer w.Close()
		e.SetRecorder(w)
		defer e.SetRecorder(nil)
	}

	for !e.Done() {
		e.Step(randomWalk(rng))
	}

	summary := e.Summary()
	log.WithFields(logrus.Fields{
		"episode":       summary.Episode,
		"ticks":         summary.Ticks,
		"agent_moves":   summary.AgentMoves,
		"hostile_moves": summary.Hostile.Moves,
		"neutral_moves": summary.Neutral.Moves,
		"blocked":       summary.Hostile.Blocked + summary.Neutral.Blocked,
	}).Info("episode finished")

	if w == nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close trace: %w", err)
	}
	return trace.AppendSummary(traceDir, summary)
}

// randomWalk stands in for a trained policy: it rests one tick in five and
// otherwise picks a cardinal at random.
func randomWalk(rng *rand.Rand) component.Direction {
	if rng.Intn(5) == 0 {
		return component.NoOp
	}
	return component.Cardinals[rng.Intn(len(component.Cardinals))]
}
