// Package simulation drives the roulette controller on a virtual clock, with
// no window, to measure how long spins take.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vertical-roulette/internal/logger"
	"vertical-roulette/internal/roulette"
	"vertical-roulette/internal/scheduler"
)

const DefaultMaxTicks = 100000

var ErrSpinDidNotStop = errors.New("spin did not stop")

type Report struct {
	Spins        int
	MinTicks     int
	MaxTicks     int
	MeanTicks    float64
	TotalVirtual time.Duration
	// Centers counts the label left at the center row after each spin.
	Centers map[string]int
}

type Runner struct {
	catalog  *roulette.Catalog
	opts     roulette.Options
	logger   logger.Logger
	maxTicks int
}

func NewRunner(catalog *roulette.Catalog, opts roulette.Options, log logger.Logger) *Runner {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Runner{
		catalog:  catalog,
		opts:     opts,
		logger:   log,
		maxTicks: DefaultMaxTicks,
	}
}

// SetMaxTicks bounds a single spin; exceeding it aborts the run.
func (r *Runner) SetMaxTicks(n int) {
	r.maxTicks = n
}

// Run performs spins one after another. The context is checked between spins.
func (r *Runner) Run(ctx context.Context, spins int) (*Report, error) {
	if spins <= 0 {
		return nil, fmt.Errorf("spin count must be positive, got %d", spins)
	}

	sched := scheduler.NewManual()
	controller, err := roulette.NewController(r.catalog, discardView{}, sched, r.logger, r.opts)
	if err != nil {
		return nil, err
	}

	report := &Report{Centers: make(map[string]int)}
	totalTicks := 0
	controller.SetStopHandler(func(result roulette.SpinResult) {
		if report.Spins == 0 || result.Ticks < report.MinTicks {
			report.MinTicks = result.Ticks
		}
		if result.Ticks > report.MaxTicks {
			report.MaxTicks = result.Ticks
		}
		report.Spins++
		totalTicks += result.Ticks
		report.Centers[result.Window[roulette.CenterIndex]]++
	})

	for i := 0; i < spins; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		controller.StartSpin()
		for ticks := 0; controller.Spinning(); ticks++ {
			if ticks >= r.maxTicks {
				controller.Shutdown()
				return report, fmt.Errorf("spin %d after %d ticks: %w", i+1, ticks, ErrSpinDidNotStop)
			}
			sched.RunNext()
		}
	}

	report.MeanTicks = float64(totalTicks) / float64(report.Spins)
	report.TotalVirtual = sched.Now()

	r.logger.Info("Simulation", "run completed", map[string]interface{}{
		"spins":      report.Spins,
		"min_ticks":  report.MinTicks,
		"max_ticks":  report.MaxTicks,
		"mean_ticks": report.MeanTicks,
	})

	return report, nil
}

type discardView struct{}

func (discardView) Render(roulette.Window) {}
func (discardView) SetSpinEnabled(bool)    {}
