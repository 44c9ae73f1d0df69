// Package timer implements the single stopwatch that accumulates time on one
// task of the forest at a time.
package timer

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tgienger/stt/internal/debug"
	"github.com/tgienger/stt/internal/tree"
)

// Interval is the tick period. Every tick adds one second to the target.
const Interval = time.Second

// DefaultSaveEvery is how many ticks pass between durable saves while running.
const DefaultSaveEvery = 5

var (
	ErrUnknownTask = errors.New("task not found")
	ErrIdle        = errors.New("timer is not running")
)

// State is the controller state
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Option configures a Controller.
type Option func(*Controller)

// WithSaveEvery sets the number of ticks between saves while running.
func WithSaveEvery(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.saveEvery = n
		}
	}
}

// Controller enforces a single active timer across the forest.
//
// It does not schedule anything itself. Every Start hands out a new epoch and
// the caller delivers ticks tagged with that epoch; ticks carrying any other
// epoch, or arriving while idle, are dropped. Stop therefore cancels pending
// ticks synchronously.
type Controller struct {
	store     *tree.Store
	save      func() error
	saveEvery int

	state  State
	active string
	epoch  uint64
	ticks  int
}

// New creates an idle controller over store. save persists the forest.
func New(store *tree.Store, save func() error, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		save:      save,
		saveEvery: DefaultSaveEvery,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Active returns the id of the running task, if any.
func (c *Controller) Active() (string, bool) {
	return c.active, c.state == Running
}

// IsActive reports whether id is the running task
func (c *Controller) IsActive(id string) bool {
	return c.state == Running && c.active == id
}

// Epoch returns the epoch of the current run
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Start makes id the active target and returns the epoch ticks must carry.
// A different running target is stopped first. Starting the task that is
// already running keeps the current run.
func (c *Controller) Start(id string) (uint64, error) {
	if c.store.Find(id) == nil {
		return 0, ErrUnknownTask
	}
	if c.state == Running {
		if c.active == id {
			return c.epoch, nil
		}
		c.Stop()
	}
	c.epoch++
	c.state = Running
	c.active = id
	c.ticks = 0
	debug.Log("timer: start %s (epoch %d)", id, c.epoch)
	return c.epoch, nil
}

// Stop cancels the run and saves. Stopping an idle controller does nothing.
func (c *Controller) Stop() {
	if c.state == Idle {
		return
	}
	debug.Log("timer: stop %s after %d ticks", c.active, c.ticks)
	c.state = Idle
	c.active = ""
	c.ticks = 0
	c.persist()
}

// Tick applies one period to the run identified by epoch. It reports whether
// the tick belonged to the current run; the caller keeps scheduling only
// while it does. A target deleted mid-run accumulates nothing.
func (c *Controller) Tick(epoch uint64) bool {
	if c.state != Running || epoch != c.epoch {
		return false
	}
	if t := c.store.Find(c.active); t != nil {
		t.ActualSeconds++
	}
	c.ticks++
	if c.ticks%c.saveEvery == 0 {
		c.persist()
	}
	return true
}

// Run drives ticks from a ticker until ctx is done or the run is replaced or
// stopped. The timer is stopped when ctx ends. onTick may be nil.
func (c *Controller) Run(ctx context.Context, interval time.Duration, onTick func()) error {
	if c.state != Running {
		return ErrIdle
	}
	epoch := c.epoch
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if c.epoch == epoch {
				c.Stop()
			}
			return nil
		case <-ticker.C:
			if !c.Tick(epoch) {
				return nil
			}
			if onTick != nil {
				onTick()
			}
		}
	}
}

func (c *Controller) persist() {
	if c.save == nil {
		return
	}
	if err := c.save(); err != nil {
		log.Printf("warning: failed to save timer progress: %v", err)
	}
}
