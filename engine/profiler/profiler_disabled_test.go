//go:build !profile

package profiler

import (
	"errors"
	"testing"
)

func TestDisabledBuildIsInert(t *testing.T) {
	Init(16)
	Start("frame")()
	if Enabled {
		t.Error("Enabled without the profile tag")
	}
	if _, err := Dump(); !errors.Is(err, errDisabled) {
		t.Errorf("Dump err = %v", err)
	}
}
