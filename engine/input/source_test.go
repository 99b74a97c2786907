package input

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(2)
	q.Push(down(KeyA), nil, up(KeyA), QuitEvent{})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (nil dropped)", q.Len())
	}
	want := []Event{down(KeyA), up(KeyA), QuitEvent{}}
	for i, w := range want {
		if got := q.PollEvent(); got != w {
			t.Fatalf("event %d = %#v, want %#v", i, got, w)
		}
	}
	if ev := q.PollEvent(); ev != nil {
		t.Fatalf("drained queue returned %#v", ev)
	}
	if ev := q.PollEvent(); ev != nil {
		t.Fatalf("second poll on drained queue returned %#v", ev)
	}

	q.Push(MotionEvent{XRel: 1})
	if q.Len() != 1 {
		t.Fatalf("Len() after reuse = %d", q.Len())
	}
	if _, ok := q.PollEvent().(MotionEvent); !ok {
		t.Error("queue did not yield pushed motion after rewind")
	}
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'W', KeyW},
		{'z', KeyZ},
		{'0', Key0},
		{'9', Key9},
		{' ', KeySpace},
		{'/', KeySlash},
		{'`', KeyGrave},
		{'é', KeyUnknown},
		{'!', KeyUnknown},
	}
	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyLeftAlt, "LAlt"},
		{KeyUnknown, "Unknown"},
		{KeyLast + 1, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
	if WindowSizeChanged.String() != "size-changed" || WindowEventType(200).String() != "unknown" {
		t.Error("WindowEventType names")
	}
}
