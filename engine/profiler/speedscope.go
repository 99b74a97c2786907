package profiler

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// event is one scope boundary, in the order it was recorded.
type event struct {
	AtNS  int64
	Frame int // index into the interned names
	Open  bool
}

// speedscope evented format; see https://www.speedscope.app/file-format-schema.json
type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

var errNoEvents = errors.New("profiler: no events to dump")

// buildSpeedscope turns recorded events into one balanced evented profile.
// A close that does not match the innermost open scope is dropped, which
// happens when the ring overwrote its open. Scopes still open at the end
// close at the last timestamp.
func buildSpeedscope(names []string, evs []event) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, errNoEvents
	}
	base := evs[0].AtNS
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 32)
	var last int64

	for _, e := range evs {
		at := max((e.AtNS-base)/1000, last)
		if e.Open {
			stack = append(stack, e.Frame)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.Frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.Frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.Frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return ssFile{}, fmt.Errorf("%w after dropping unmatched closes", errNoEvents)
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "grove frame loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "grove-profiler",
		Name:     "grove capture",
	}, nil
}

// writeSpeedscope writes through a temp file so a viewer never sees half a
// profile.
func writeSpeedscope(path string, doc ssFile) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
