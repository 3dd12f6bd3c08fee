package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/twister/counter"
)

var _ counter.Counter = &periodCounter{}

// periodCounter recomputes its rate at most once per period. Add is safe
// for concurrent use by search workers.
type periodCounter struct {
	value      int64
	ratePerSec int64
	period     time.Duration

	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

func NewPeriodCounter(period time.Duration) counter.Counter {
	return &periodCounter{
		period:   period,
		lastTime: time.Now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *periodCounter) check() {
	if !c.mut.TryLock() {
		// another worker is already updating the rate
		return
	}
	defer c.mut.Unlock()

	now := time.Now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
