package input

import (
	"math"
	"time"
)

// ClickCounter derives ButtonEvent.Clicks for backends that only report
// single presses. Presses of the same button close together in time and
// space extend the run: 1, 2, 3, then back to 1.
type ClickCounter struct {
	MaxInterval time.Duration
	MaxDistance float64 // per axis, in the backend's cursor units

	last   Button
	lastAt time.Time
	lastX  float64
	lastY  float64
	counts [buttonCount]int // latest press count per button
}

func NewClickCounter() *ClickCounter {
	return &ClickCounter{MaxInterval: 400 * time.Millisecond, MaxDistance: 4}
}

// Press records a press of b at (x, y) and returns its click count.
// Buttons outside the known set always count 1.
func (c *ClickCounter) Press(b Button, x, y float64, at time.Time) int {
	if b == ButtonUnknown || b >= buttonCount {
		return 1
	}
	n := 1
	if c.continues(b, x, y, at) {
		n = c.counts[b]%3 + 1
	}
	c.counts[b] = n
	c.last, c.lastAt, c.lastX, c.lastY = b, at, x, y
	return n
}

// Count is the click count of b's latest press, for the matching release.
// Pressing another button in between does not change it.
func (c *ClickCounter) Count(b Button) int {
	if b >= buttonCount {
		return 0
	}
	return c.counts[b]
}

func (c *ClickCounter) continues(b Button, x, y float64, at time.Time) bool {
	if c.counts[b] == 0 || b != c.last {
		return false
	}
	elapsed := at.Sub(c.lastAt)
	if elapsed < 0 || elapsed > c.MaxInterval {
		return false
	}
	return math.Abs(x-c.lastX) <= c.MaxDistance && math.Abs(y-c.lastY) <= c.MaxDistance
}
