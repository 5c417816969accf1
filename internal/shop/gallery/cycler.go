package gallery

import (
	"sync"
	"time"

	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// CycleState is the hover-cycling phase of one product card.
type CycleState int

const (
	// Idle shows the first view and has no timers pending.
	Idle CycleState = iota
	// Armed waits out the hover delay before cycling starts.
	Armed
	// Cycling advances to the next view every interval.
	Cycling
)

func (s CycleState) String() string {
	switch s {
	case Armed:
		return "armed"
	case Cycling:
		return "cycling"
	default:
		return "idle"
	}
}

// Cycler rotates through a product's views while the pointer rests on its
// card. Activate arms a delay, after which the views advance on a fixed
// interval; Deactivate cancels whatever is pending and shows the first view
// again. Cards with fewer than two views never leave Idle.
//
// onChange runs with the cycler's lock held and must not call back into it.
type Cycler struct {
	mu       sync.Mutex
	views    []model.View
	delay    time.Duration
	interval time.Duration
	onChange func(model.View)

	state CycleState
	index int
	// gen invalidates callbacks scheduled before the latest transition.
	gen    uint64
	timer  *time.Timer
	ticker *time.Ticker
	done   chan struct{}
}

func NewCycler(views []model.View, delay, interval time.Duration, onChange func(model.View)) *Cycler {
	if interval <= 0 {
		interval = delay
	}
	if onChange == nil {
		onChange = func(model.View) {}
	}
	return &Cycler{
		views:    append([]model.View(nil), views...),
		delay:    delay,
		interval: interval,
		onChange: onChange,
	}
}

// Animates reports whether the card has enough views to cycle.
func (c *Cycler) Animates() bool {
	return len(c.views) > 1
}

func (c *Cycler) State() CycleState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the view on display.
func (c *Cycler) Current() (model.View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.views) == 0 {
		return model.View{}, false
	}
	return c.views[c.index], true
}

// Activate handles pointer-enter. A pending delay or running interval from
// an earlier activation is cancelled before the new delay is armed.
func (c *Cycler) Activate() {
	if !c.Animates() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.state = Armed
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.startCycling(gen) })
	logx.Debug().Dur("delay", c.delay).Msg("hover cycle armed")
}

// Deactivate handles pointer-leave: cancel, rewind to the first view and
// report it through onChange.
func (c *Cycler) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasIdle := c.state == Idle && c.index == 0
	c.cancelLocked()
	c.state = Idle
	c.index = 0
	if !wasIdle && len(c.views) > 0 {
		c.onChange(c.views[0])
	}
}

// Stop cancels any timers for teardown without reporting a view change.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.state = Idle
}

func (c *Cycler) startCycling(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}

	c.state = Cycling
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})
	go c.loop(gen, c.ticker.C, c.done)
	logx.Debug().Dur("interval", c.interval).Msg("hover cycle started")
}

func (c *Cycler) loop(gen uint64, tick <-chan time.Time, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-tick:
			if !c.advance(gen) {
				return
			}
		}
	}
}

func (c *Cycler) advance(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.index = (c.index + 1) % len(c.views)
	c.onChange(c.views[c.index])
	return true
}

func (c *Cycler) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}
