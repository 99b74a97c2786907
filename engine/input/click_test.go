package input

import (
	"testing"
	"time"
)

func TestClickCounter(t *testing.T) {
	t0 := time.Unix(100, 0)
	ms := time.Millisecond

	tests := []struct {
		name   string
		button Button
		x, y   float64
		at     time.Duration
		want   int
	}{
		{"first", ButtonLeft, 10, 10, 0, 1},
		{"double", ButtonLeft, 11, 10, 200 * ms, 2},
		{"triple", ButtonLeft, 12, 12, 400 * ms, 3},
		{"wraps", ButtonLeft, 12, 12, 500 * ms, 1},
		{"too slow", ButtonLeft, 12, 12, 1500 * ms, 1},
		{"too far", ButtonLeft, 40, 12, 1600 * ms, 1},
		{"other button", ButtonRight, 40, 12, 1700 * ms, 1},
		{"clock went back", ButtonRight, 40, 12, 1000 * ms, 1},
	}

	c := NewClickCounter()
	for _, tt := range tests {
		if got := c.Press(tt.button, tt.x, tt.y, t0.Add(tt.at)); got != tt.want {
			t.Errorf("%s: Press() = %d, want %d", tt.name, got, tt.want)
		}
		if c.Count(tt.button) != tt.want {
			t.Errorf("%s: Count() = %d, want %d", tt.name, c.Count(tt.button), tt.want)
		}
	}
}

func TestClickCountIsPerButton(t *testing.T) {
	t0 := time.Unix(100, 0)
	c := NewClickCounter()

	c.Press(ButtonLeft, 5, 5, t0)
	if n := c.Press(ButtonLeft, 5, 5, t0.Add(100*time.Millisecond)); n != 2 {
		t.Fatalf("second left press = %d, want 2", n)
	}
	// right goes down while left is still held
	if n := c.Press(ButtonRight, 5, 5, t0.Add(150*time.Millisecond)); n != 1 {
		t.Fatalf("right press = %d, want 1", n)
	}
	if got := c.Count(ButtonLeft); got != 2 {
		t.Errorf("Count(left) after right press = %d, want 2", got)
	}
	if got := c.Count(ButtonRight); got != 1 {
		t.Errorf("Count(right) = %d, want 1", got)
	}
	if got := c.Count(ButtonMiddle); got != 0 {
		t.Errorf("Count(middle) = %d, want 0 before any press", got)
	}

	// the right press broke the left run
	if n := c.Press(ButtonLeft, 5, 5, t0.Add(200*time.Millisecond)); n != 1 {
		t.Errorf("left press after right = %d, want 1", n)
	}
	if n := c.Press(Button(99), 5, 5, t0); n != 1 || c.Count(Button(99)) != 0 {
		t.Errorf("out of range button: Press=%d Count=%d", n, c.Count(Button(99)))
	}
}
