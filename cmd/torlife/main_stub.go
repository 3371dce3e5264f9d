//go:build !ebiten

package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"torlife/internal/app"
	"torlife/internal/core"
	_ "torlife/internal/sims/life"
)

// The headless build runs the controller for a bounded number of generations
// and reports progress on stderr. Build with `-tags ebiten` for the GUI.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	// The observer must never block a tick: drop the notification if the
	// main loop has fallen behind or already stopped listening.
	ticks := make(chan core.CellsChanged, 1)
	ctrl, err := cfg.Controller(func(ev core.CellsChanged) {
		select {
		case ticks <- ev:
		default:
		}
	})
	if err != nil {
		logger.Fatal("configuration rejected", "err", err)
	}

	logger.Info("simulation started",
		"rule", cfg.Rule,
		"rows", ctrl.Rows(), "cols", ctrl.Cols(),
		"interval", ctrl.Interval(),
		"fluctuation", cfg.Fluctuation,
		"seed", cfg.Seed,
		"population", ctrl.Population(),
	)

	start := time.Now()
	ctrl.Start()
	check := time.NewTicker(time.Second)
	defer check.Stop()
	for generation := 1; generation <= cfg.Generations; {
		select {
		case ev := <-ticks:
			logger.Debug("generation complete",
				"generation", generation,
				"rows", ev.RowSpan, "cols", ev.ColSpan,
				"population", ctrl.Population(),
			)
			generation++
		case <-check.C:
			// A failing rule halts the tick; surface it instead of waiting
			// for a notification that will never come.
			if err := ctrl.Err(); err != nil {
				logger.Fatal("simulation failed", "err", err)
			}
		}
	}
	ctrl.Stop()

	logger.Info("simulation finished",
		"generations", cfg.Generations,
		"population", ctrl.Population(),
		"elapsed", time.Since(start),
	)
}
