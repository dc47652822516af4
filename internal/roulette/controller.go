package roulette

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/xid"

	"vertical-roulette/internal/logger"
	"vertical-roulette/internal/scheduler"
)

const (
	DefaultPeriod         = 30 * time.Millisecond
	DefaultWinProbability = 0.1
)

// View is where the controller draws. All calls happen on the goroutine that
// drives the controller.
type View interface {
	Render(w Window)
	SetSpinEnabled(enabled bool)
}

type Options struct {
	Period         time.Duration
	WinProbability float64
	// Seed fixes the random sequence; zero seeds from the clock.
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		Period:         DefaultPeriod,
		WinProbability: DefaultWinProbability,
	}
}

func (o Options) Validate() error {
	if o.Period <= 0 {
		return fmt.Errorf("tick period must be positive, got %v", o.Period)
	}
	if o.WinProbability < 0 || o.WinProbability > 1 {
		return fmt.Errorf("win probability must be within [0,1], got %v", o.WinProbability)
	}
	return nil
}

// SpinResult describes a finished spin.
type SpinResult struct {
	ID     string
	Ticks  int
	Window Window
}

// Controller runs the roulette. It is not safe for concurrent use: the
// scheduler and the view's input handlers must share one goroutine.
type Controller struct {
	catalog *Catalog
	view    View
	sched   scheduler.Scheduler
	logger  logger.Logger
	opts    Options
	rng     *rand.Rand

	window   Window
	spinning bool
	pending  scheduler.Timer

	spinID string
	ticks  int

	stopHandler func(SpinResult)
}

func NewController(catalog *Catalog, view View, sched scheduler.Scheduler, log logger.Logger, opts Options) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	c := &Controller{
		catalog: catalog,
		view:    view,
		sched:   sched,
		logger:  log,
		opts:    opts,
		rng:     newRand(seed),
	}

	c.window = Fill(c.rng, catalog.pool)
	c.render()

	log.Info("Controller", "initialized", map[string]interface{}{
		"labels":          len(catalog.labels),
		"winner":          catalog.winner,
		"period_ms":       opts.Period.Milliseconds(),
		"win_probability": opts.WinProbability,
		"seeded":          opts.Seed != 0,
	})

	return c, nil
}

// SetStopHandler registers a callback run after every spin stops.
func (c *Controller) SetStopHandler(handler func(SpinResult)) {
	c.stopHandler = handler
}

func (c *Controller) Window() Window {
	return c.window
}

func (c *Controller) Spinning() bool {
	return c.spinning
}

// StartSpin begins a spin. It does nothing while a spin is running.
func (c *Controller) StartSpin() {
	if c.spinning {
		c.logger.Debug("Controller", "spin already running", map[string]interface{}{
			"spin_id": c.spinID,
		})
		return
	}

	c.spinning = true
	c.spinID = xid.New().String()
	c.ticks = 0
	c.view.SetSpinEnabled(false)

	c.window = Fill(c.rng, c.catalog.pool)
	c.render()

	c.logger.Info("Controller", "spin started", map[string]interface{}{
		"spin_id": c.spinID,
	})

	c.Tick()
}

// Tick shifts the window up by one row. The stop check looks at index 1 after
// the top row is dropped and before the new row is appended.
func (c *Controller) Tick() {
	c.cancelPending()
	c.ticks++

	var rest [WindowSize - 1]string
	copy(rest[:], c.window[1:])

	if rest[CenterIndex] == c.catalog.winner {
		c.window = appendRow(rest, c.catalog.pool[c.rng.IntN(len(c.catalog.pool))])
		c.render()
		c.Stop()
		return
	}

	next := PickNext(c.rng, c.catalog.pool, c.catalog.winner, c.opts.WinProbability, !c.spinning)
	c.window = appendRow(rest, next)
	c.render()

	c.logger.Debug("Controller", "tick", map[string]interface{}{
		"spin_id":  c.spinID,
		"tick":     c.ticks,
		"appended": next,
	})

	if c.spinning {
		c.pending = c.sched.AfterFunc(c.opts.Period, c.Tick)
	}
}

// Stop halts the spin and makes sure the center row shows the winner.
func (c *Controller) Stop() {
	wasSpinning := c.spinning
	c.spinning = false
	c.cancelPending()

	if c.window[CenterIndex] != c.catalog.winner {
		c.window[CenterIndex] = c.catalog.winner
		c.render()
	}

	c.view.SetSpinEnabled(true)

	if !wasSpinning {
		return
	}

	result := SpinResult{ID: c.spinID, Ticks: c.ticks, Window: c.window}
	c.logger.Info("Controller", "spin stopped", map[string]interface{}{
		"spin_id": result.ID,
		"ticks":   result.Ticks,
		"center":  c.window[CenterIndex],
	})

	if c.stopHandler != nil {
		c.stopHandler(result)
	}
}

// Shutdown cancels a pending tick without touching the display.
func (c *Controller) Shutdown() {
	c.spinning = false
	c.cancelPending()
	c.logger.Debug("Controller", "shutdown completed", nil)
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) render() {
	c.view.Render(c.window)
}

func appendRow(rest [WindowSize - 1]string, label string) Window {
	var w Window
	copy(w[:], rest[:])
	w[WindowSize-1] = label
	return w
}
