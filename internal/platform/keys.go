package platform

import "github.com/gogpu/gpucontext"

// domKeys maps KeyboardEvent.code values that are not letters or digits.
var domKeys = map[string]gpucontext.Key{
	"Escape":     gpucontext.KeyEscape,
	"Tab":        gpucontext.KeyTab,
	"Backspace":  gpucontext.KeyBackspace,
	"Enter":      gpucontext.KeyEnter,
	"Space":      gpucontext.KeySpace,
	"Insert":     gpucontext.KeyInsert,
	"Delete":     gpucontext.KeyDelete,
	"Home":       gpucontext.KeyHome,
	"End":        gpucontext.KeyEnd,
	"PageUp":     gpucontext.KeyPageUp,
	"PageDown":   gpucontext.KeyPageDown,
	"ArrowLeft":  gpucontext.KeyLeft,
	"ArrowRight": gpucontext.KeyRight,
	"ArrowUp":    gpucontext.KeyUp,
	"ArrowDown":  gpucontext.KeyDown,
}

// keyFromCode converts a DOM KeyboardEvent.code to a key.
func keyFromCode(code string) gpucontext.Key {
	if k, ok := domKeys[code]; ok {
		return k
	}
	switch {
	case len(code) == 4 && code[:3] == "Key" && code[3] >= 'A' && code[3] <= 'Z':
		return gpucontext.KeyA + gpucontext.Key(code[3]-'A')
	case len(code) == 6 && code[:5] == "Digit" && code[5] >= '0' && code[5] <= '9':
		return gpucontext.Key0 + gpucontext.Key(code[5]-'0')
	case len(code) >= 2 && code[0] == 'F':
		n := 0
		for _, c := range code[1:] {
			if c < '0' || c > '9' {
				return gpucontext.KeyUnknown
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 12 {
			return gpucontext.KeyF1 + gpucontext.Key(n-1)
		}
	}
	return gpucontext.KeyUnknown
}

// domModifiers builds modifier flags from the KeyboardEvent booleans.
func domModifiers(shift, ctrl, alt, meta bool) gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if shift {
		m |= gpucontext.ModShift
	}
	if ctrl {
		m |= gpucontext.ModControl
	}
	if alt {
		m |= gpucontext.ModAlt
	}
	if meta {
		m |= gpucontext.ModSuper
	}
	return m
}
