package colors

import "strings"

// Color is linear RGBA in [0,1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

var byName = map[string]Color{
	"white":    White,
	"red":      Red,
	"green":    Green,
	"blue":     Blue,
	"black":    Black,
	"magenta":  Magenta,
	"cyan":     Cyan,
	"yellow":   Yellow,
	"gray":     Gray,
	"grey":     Gray,
	"darkgray": DarkGray,
	"darkgrey": DarkGray,
}

// ByName looks up a palette color, ignoring case, spaces and dashes.
func ByName(name string) (Color, bool) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
	c, ok := byName[key]
	return c, ok
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGB8 returns the color as 8-bit channels, alpha dropped.
func (c Color) RGB8() (r, g, b int32) {
	to8 := func(v float32) int32 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return int32(v*255 + 0.5)
	}
	return to8(c[0]), to8(c[1]), to8(c[2])
}
