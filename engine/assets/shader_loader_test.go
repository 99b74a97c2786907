package assets

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"scene.vert", "scene.frag", "quad2d.vert", "quad2d.frag"} {
		src, err := LoadShader(name)
		if err != nil {
			t.Fatalf("LoadShader(%q) = %v", name, err)
		}
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s: unexpected header %q", name, src[:min(len(src), 20)])
		}
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("%s: not null terminated", name)
		}
	}
}

func TestLoadShaderMissing(t *testing.T) {
	_, err := LoadShader("nope.vert")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadShader(missing) = %v, want fs.ErrNotExist", err)
	}
}
