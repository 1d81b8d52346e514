package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/simulator"
	"elevsim/src/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", "", "dotenv file with ELSIM_* overrides")
	floors := flag.Int("floors", 0, "number of floors (overrides config)")
	elevators := flag.Int("elevators", -1, "number of elevators (overrides config)")
	boost := flag.Int("boost", 0, "speed-up factor for travel and door times (overrides config)")
	duration := flag.Duration("duration", 0, "stop the simulation after this long (0 runs until interrupted)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for the request generator")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		return err
	}
	if *floors > 0 {
		cfg.NumFloors = *floors
	}
	if *elevators >= 0 {
		cfg.NumElevators = *elevators
	}
	if *boost > 0 {
		cfg.Boost = *boost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closeLog, err := utils.InitLogger(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	slog.Info("Starting simulation", "floors", cfg.NumFloors, "elevators", cfg.NumElevators, "boost", cfg.Boost, "policy", cfg.CostPolicy, "seed", *seed)
	scheduler := dispatcher.New(cfg, utils.LogEvent)
	scheduler.Start(ctx, cfg.NumElevators)

	stats := simulator.Run(ctx, scheduler, cfg.NumFloors, cfg.RequestInterval(), rand.New(rand.NewPCG(*seed, *seed>>1)))

	slog.Info("Shutting down")
	if err := scheduler.Stop(); err != nil {
		return fmt.Errorf("stop elevators: %w", err)
	}
	slog.Info("Simulation finished", "submitted", stats.Submitted, "unassigned", stats.Unassigned)
	return nil
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	return config.ApplyEnv(cfg, envPath)
}
