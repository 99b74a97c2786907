package input

import (
	"strconv"
	"unicode"
)

// Key is a platform-independent keycode. Backends translate their native
// codes into Key; anything they cannot map becomes KeyUnknown.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyCapsLock

	// KeyLast is the highest valid Key.
	KeyLast = KeyCapsLock
)

// Valid reports whether k is a known, trackable key.
func (k Key) Valid() bool { return k > KeyUnknown && k <= KeyLast }

// KeyFromRune maps printable ASCII to a Key. Letters are case-insensitive.
func KeyFromRune(r rune) Key {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-':
		return KeyMinus
	case '=':
		return KeyEqual
	case '[':
		return KeyLeftBracket
	case ']':
		return KeyRightBracket
	case '\\':
		return KeyBackslash
	case ';':
		return KeySemicolon
	case '\'':
		return KeyApostrophe
	case '`':
		return KeyGrave
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	}
	return KeyUnknown
}

var keyNames = map[Key]string{
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeySpace:        "Space",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyMinus:        "-",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyBackslash:    "\\",
	KeySemicolon:    ";",
	KeyApostrophe:   "'",
	KeyGrave:        "`",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftCtrl:     "LCtrl",
	KeyRightCtrl:    "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightSuper:   "RSuper",
	KeyCapsLock:     "CapsLock",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}
