package core

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	defaultRows       = 40
	defaultCols       = 40
	defaultLikelihood = 0.25
	defaultInterval   = 250 * time.Millisecond
)

// Options configures a Controller. Zero-valued fields fall back to defaults:
// a random 40x40 generation at 25% alive, a 250ms interval, no fluctuation,
// and the registered "life" rule.
type Options struct {
	Initial     *Generation
	Interval    time.Duration
	Rule        StepFunc
	Fluctuation float64
	Likelihood  float64
	Seed        int64
	Observer    Observer
}

// Controller owns a grid state and advances it on a periodic tick while
// running. It is created stopped; Start and Stop cycle it between the two
// states for its lifetime. All methods are safe for concurrent use.
type Controller struct {
	// lifecycle serializes Start, Stop and AssignState so a stop-and-rearm
	// cycle is atomic: two racing Starts must never both arm a run
	// goroutine.
	lifecycle sync.Mutex

	mu          sync.Mutex
	state       *State
	step        StepFunc
	interval    time.Duration
	fluctuation float64
	likelihood  float64
	rng         *rand.Rand
	observer    Observer

	running bool
	quit    chan struct{}
	done    chan struct{}
	tickErr error
}

// NewController builds a stopped controller from the provided options.
func NewController(opts Options) (*Controller, error) {
	step := opts.Rule
	if step == nil {
		step = rules[DefaultRule]
		if step == nil {
			return nil, fmt.Errorf("no %q rule registered and no rule configured", DefaultRule)
		}
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	likelihood := opts.Likelihood
	if likelihood <= 0 {
		likelihood = defaultLikelihood
	}
	rng := NewRNG(opts.Seed).Source()
	initial := opts.Initial
	if initial == nil {
		g, err := RandomGeneration(defaultRows, defaultCols, likelihood, rng)
		if err != nil {
			return nil, err
		}
		initial = g
	}
	return &Controller{
		state:       NewState(initial),
		step:        step,
		interval:    interval,
		fluctuation: opts.Fluctuation,
		likelihood:  likelihood,
		rng:         rng,
		observer:    opts.Observer,
	}, nil
}

// Rows returns the grid's row count.
func (c *Controller) Rows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Rows()
}

// Cols returns the grid's column count.
func (c *Controller) Cols() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Cols()
}

// Read returns the current cell at (row, col).
func (c *Controller) Read(row, col int) (Cell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Read(row, col)
}

// Snapshot copies the current generation's cells in row-major order.
func (c *Controller) Snapshot() []Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	cells := c.state.Current().Cells()
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}

// Population counts the currently alive cells.
func (c *Controller) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Current().Population()
}

// Interval returns the configured tick interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// Running reports whether the periodic tick is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Err returns the step error that halted the periodic tick, if any. It is
// cleared on the next Start.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickErr
}

// Start begins periodic ticking. A running controller is stopped first, so
// the interval timer is always freshly scheduled.
func (c *Controller) Start() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	c.stop()
	c.mu.Lock()
	c.running = true
	c.tickErr = nil
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.quit, c.done)
	c.mu.Unlock()
}

// Stop cancels the periodic tick. It does not return until the tick goroutine
// has exited, so no tick runs after Stop returns. Stopping a stopped
// controller is a no-op.
func (c *Controller) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	c.stop()
}

// stop joins the active run goroutine. Callers must hold lifecycle.
func (c *Controller) stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	quit, done := c.quit, c.done
	c.quit, c.done = nil, nil
	close(quit)
	c.mu.Unlock()
	<-done
}

// StepOnce advances a single generation synchronously and notifies the
// observer, independent of the periodic tick.
func (c *Controller) StepOnce() error {
	return c.tick()
}

// AssignState validates the matrix, stops the controller if it is running,
// and installs the matrix as the new grid state. The controller is left
// stopped.
func (c *Controller) AssignState(m [][]Cell) error {
	if _, err := FromMatrix(m); err != nil {
		return err
	}
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	c.stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Replace(m)
}

// Reset reseeds the RNG and re-randomizes the grid in place, keeping the
// current dimensions and configured likelihood.
func (c *Controller) Reset(seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = NewRNG(seed).Source()
	g, err := RandomGeneration(c.state.Rows(), c.state.Cols(), c.likelihood, c.rng)
	if err != nil {
		return
	}
	c.state = NewState(g)
}

func (c *Controller) run(quit, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			// A tick racing a just-closed quit channel must not fire.
			select {
			case <-quit:
				return
			default:
			}
			if err := c.tick(); err != nil {
				c.fail(err)
				return
			}
		}
	}
}

// fail latches the first step error and halts the periodic tick without
// waiting on anyone; the run goroutine exits right after.
func (c *Controller) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickErr = err
	if c.running {
		c.running = false
		c.quit, c.done = nil, nil
	}
}

func (c *Controller) tick() error {
	c.mu.Lock()
	err := c.state.Step(c.step, c.fluctuation, c.rng)
	rows, cols := c.state.Rows(), c.state.Cols()
	observer := c.observer
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if observer != nil {
		observer(CellsChanged{RowSpan: rows, ColSpan: cols})
	}
	return nil
}
