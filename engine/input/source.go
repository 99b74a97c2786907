package input

// Source yields pending platform events without blocking.
// PollEvent returns nil once nothing is pending.
type Source interface {
	PollEvent() Event
}

// Grabber confines the cursor to the window and hides it (grab = true),
// or frees and shows it again.
type Grabber interface {
	SetMouseGrab(grab bool) error
}

// Queue is a FIFO Source fed by Push. Callback-driven backends push into it
// from their callbacks; tests use it to script a frame's worth of events.
type Queue struct {
	events []Event
	head   int
}

func NewQueue(capacity int) *Queue {
	return &Queue{events: make([]Event, 0, capacity)}
}

func (q *Queue) Push(evs ...Event) {
	for _, ev := range evs {
		if ev != nil {
			q.events = append(q.events, ev)
		}
	}
}

func (q *Queue) PollEvent() Event {
	if q.head >= len(q.events) {
		// drained; rewind so the backing array is reused next frame
		q.events = q.events[:0]
		q.head = 0
		return nil
	}
	ev := q.events[q.head]
	q.events[q.head] = nil
	q.head++
	return ev
}

// Len returns the number of events still pending.
func (q *Queue) Len() int { return len(q.events) - q.head }
