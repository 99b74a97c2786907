//go:build profile

package profiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kataras/golog"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

var logger = golog.Child("[profiler]")

// Init allocates the ring for capacity scope boundaries. Start is a no-op
// until it is called.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
	logger.Infof("recording scopes, ring of %d events", capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	ring.push(event{AtNS: begin, Frame: id, Open: true})
	return func() {
		ring.push(event{AtNS: max(time.Now().UnixNano(), begin), Frame: id})
	}
}

// Dump writes the ring as a speedscope profile in the temp dir.
func Dump() (string, error) {
	doc, err := buildSpeedscope(names(), ring.snapshot())
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), "grove.profile.speedscope.json")
	if err := writeSpeedscope(path, doc); err != nil {
		return "", err
	}
	logger.Infof("profile written to %s", path)
	return path, nil
}

// OpenProfilerGraph dumps the profile and opens it in speedscope when the
// viewer is on PATH.
func OpenProfilerGraph() (string, error) {
	path, err := Dump()
	if err != nil {
		return "", err
	}
	bin, err := exec.LookPath("speedscope")
	if err != nil {
		logger.Warnf("speedscope not on PATH; open %s manually", path)
		return path, nil
	}
	cmd := exec.Command(bin, path)
	hideWindow(cmd)
	if err := cmd.Start(); err != nil {
		logger.Errorf("launch speedscope: %v", err)
	}
	return path, nil
}

// ---- ring ----

type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.ready.Store(false)
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the surviving events in write order.
func (r *eventRing) snapshot() []event {
	if !r.ready.Load() {
		return nil
	}
	n := r.next.Load()
	var first uint64
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

// ---- names ----

var (
	namesMu sync.Mutex
	nameIDs = map[string]int{}
	nameTab []string
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(nameTab)
	nameIDs[name] = id
	nameTab = append(nameTab, name)
	return id
}

func names() []string {
	namesMu.Lock()
	defer namesMu.Unlock()
	return append([]string(nil), nameTab...)
}
