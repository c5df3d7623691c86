// Command vrgrab-sim runs the headless grab sandbox through a scripted
// session: pick up and throw, remote grab, holster and teleport.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"vrgrab/internal/config"
	"vrgrab/internal/logger"
	"vrgrab/internal/world"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer logger.Sync()

	log.Info("=== VR grab sandbox ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	w, err := world.New(cfg, log)
	if err != nil {
		log.Error("failed to build sandbox", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := run(w, session(), cfg.Sim.Steps); err != nil {
		log.Error("session failed", zap.Error(err))
		w.Report()
		logger.Sync()
		os.Exit(1)
	}

	w.Report()
	log.Info("session complete",
		zap.Float32("sim_time", w.Time()),
		zap.Uint64("ticks", w.Loop.Steps()),
		zap.Int("haptic_pulses", len(w.Haptics.Pulses)))
}
