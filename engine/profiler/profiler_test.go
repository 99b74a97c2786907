//go:build profile

package profiler

import (
	"os"
	"testing"
)

func TestStartRecordsBalancedScopes(t *testing.T) {
	Init(8)
	end := Start("outer")
	Start("inner")()
	end()

	evs := ring.snapshot()
	if len(evs) != 4 || !evs[0].Open || !evs[1].Open || evs[2].Open || evs[3].Open {
		t.Fatalf("events = %+v", evs)
	}
	if evs[1].Frame != evs[2].Frame || evs[0].Frame != evs[3].Frame {
		t.Errorf("closes do not match opens: %+v", evs)
	}

	path, err := Dump()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(path) })
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	Init(4)
	for i := 0; i < 3; i++ {
		Start("tick")()
	}
	if evs := ring.snapshot(); len(evs) != 4 || !evs[0].Open {
		t.Errorf("snapshot = %+v, want the last two scopes", evs)
	}
}
