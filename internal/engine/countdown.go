package engine

// Countdown tracks the remaining session time. It holds no scheduling of
// its own: the engine's event loop owns the ticker and calls Tick once per
// second, so every state change here happens inside event processing.
type Countdown struct {
	remaining int
	active    bool
}

// Start arms the countdown with the given number of seconds.
func (c *Countdown) Start(initial int) {
	c.remaining = initial
	c.active = true
}

// Tick decrements the remaining time by one second. It reports true exactly
// once per Start/Stop cycle: on the tick that reaches zero, after which the
// countdown deactivates itself. Ticks on an inactive countdown are no-ops.
func (c *Countdown) Tick() (expired bool) {
	if !c.active || c.remaining <= 0 {
		return false
	}
	c.remaining--
	if c.remaining == 0 {
		c.active = false
		return true
	}
	return false
}

// AddTime credits bonus seconds. It has no effect once the countdown is
// inactive — a terminal session cannot be resurrected by a bonus.
func (c *Countdown) AddTime(delta int) {
	if !c.active || delta <= 0 {
		return
	}
	c.remaining += delta
}

// Stop deactivates the countdown unconditionally. Idempotent.
func (c *Countdown) Stop() {
	c.active = false
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Active reports whether the countdown is running.
func (c *Countdown) Active() bool { return c.active }
