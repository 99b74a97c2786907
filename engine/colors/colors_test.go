package colors

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"yellow", Yellow, true},
		{"Dark-Gray", DarkGray, true},
		{"dark grey", DarkGray, true},
		{"chartreuse", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ByName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ByName(%q) = %v, %t; want %v, %t", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRGB8(t *testing.T) {
	r, g, b := Color{1, 0.5, -1, 1}.RGB8()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB8() = %d %d %d, want 255 128 0", r, g, b)
	}
	if c := Red.WithAlpha(0.5); c[3] != 0.5 || Red[3] != 1 {
		t.Errorf("WithAlpha changed the palette: %v %v", c, Red)
	}
}
