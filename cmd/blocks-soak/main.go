package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blocks/config"
	"go.uber.org/zap"
)

func main() {
	sessions := flag.Int("sessions", 100, "Number of sessions to play.")
	maxFrames := flag.Int("frames", 20000, "Frame limit per session.")
	interval := flag.Duration("interval", 16*time.Millisecond, "Simulated time between frames.")
	seed := flag.Uint64("seed", 1, "Seed of the first session; later sessions add their index.")
	configPath := flag.String("config", "", "Settings file for the simulated sessions.")
	debug := flag.Bool("debug", false, "Log every session.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	settings := config.Default()
	if *configPath != "" {
		if settings, err = config.Load(*configPath); err != nil {
			logger.Fatal("loading settings", zap.Error(err))
		}
	}

	opts := Options{
		Sessions:      *sessions,
		MaxFrames:     *maxFrames,
		FrameInterval: *interval,
		Seed:          *seed,
		Game:          settings.Game(),
		Logger:        logger,
	}
	if opts.FrameInterval <= 0 {
		logger.Fatal("frame interval must be positive", zap.Duration("interval", opts.FrameInterval))
	}

	report := newReport(opts)
	report.GCPauseMetrics = *gcPauseMetrics
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("starting soak", zap.Int("sessions", opts.Sessions), zap.Int("frames", opts.MaxFrames))
	startTime := time.Now()
	if err := Run(opts, report); err != nil {
		logger.Fatal("soak failed", zap.Error(err))
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	logger.Info("soak finished", zap.Duration("elapsed", report.TotalTime))

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generating report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
