package key

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

// Accelerator parse errors.
var (
	ErrEmptyAccelerator   = errors.New("empty accelerator")
	ErrInvalidAccelerator = errors.New("invalid accelerator")
)

// primaryModifier is what "CmdOrCtrl" resolves to on this platform.
var primaryModifier = func() Modifier {
	if runtime.GOOS == "darwin" {
		return ModMeta
	}
	return ModCtrl
}()

// FromAccelerator parses an accelerator string into a Descriptor.
//
// The grammar is '+'-separated and case-insensitive: every token but the
// last names a modifier (Ctrl, Shift, Alt/Option, Meta/Cmd/Super/Win, or
// the platform-resolving CmdOrCtrl) and the last token names the key: a
// single printable character, F1..F20, or a named key such as "Enter",
// "Escape", "Space", "ArrowUp".
//
// The returned descriptor defines all four modifier flags, so "Ctrl+S"
// and "Ctrl+Shift+S" are distinct. On error the zero Descriptor is
// returned; it matches nothing.
func FromAccelerator(accelerator string) (Descriptor, error) {
	spec := strings.TrimSpace(accelerator)
	if spec == "" {
		return Descriptor{}, ErrEmptyAccelerator
	}

	parts := strings.Split(spec, "+")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierFromToken(strings.TrimSpace(p))
		if !ok {
			return Descriptor{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidAccelerator, p, accelerator)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	k, code, err := lookupKey(keyPart, accelerator)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{Key: k, Code: code, Mods: mods, Known: ModAll}, nil
}

// Valid reports whether the accelerator satisfies the grammar.
func Valid(accelerator string) bool {
	_, err := FromAccelerator(accelerator)
	return err == nil
}

// modifierFromToken resolves one modifier token, including the
// platform-dependent CmdOrCtrl alias.
func modifierFromToken(tok string) (Modifier, bool) {
	switch strings.ToLower(tok) {
	case "cmdorctrl", "commandorcontrol":
		return primaryModifier, true
	}
	if m := ModifierFromName(tok); m != ModNone {
		return m, true
	}
	return ModNone, false
}

// namedKeys maps lowercase key names to their logical value and code.
var namedKeys = map[string]struct{ key, code string }{
	"enter":      {"Enter", "Enter"},
	"return":     {"Enter", "Enter"},
	"escape":     {"Escape", "Escape"},
	"esc":        {"Escape", "Escape"},
	"tab":        {"Tab", "Tab"},
	"space":      {" ", "Space"},
	"spacebar":   {" ", "Space"},
	"backspace":  {"Backspace", "Backspace"},
	"delete":     {"Delete", "Delete"},
	"del":        {"Delete", "Delete"},
	"insert":     {"Insert", "Insert"},
	"ins":        {"Insert", "Insert"},
	"home":       {"Home", "Home"},
	"end":        {"End", "End"},
	"pageup":     {"PageUp", "PageUp"},
	"pgup":       {"PageUp", "PageUp"},
	"pagedown":   {"PageDown", "PageDown"},
	"pgdn":       {"PageDown", "PageDown"},
	"up":         {"ArrowUp", "ArrowUp"},
	"arrowup":    {"ArrowUp", "ArrowUp"},
	"down":       {"ArrowDown", "ArrowDown"},
	"arrowdown":  {"ArrowDown", "ArrowDown"},
	"left":       {"ArrowLeft", "ArrowLeft"},
	"arrowleft":  {"ArrowLeft", "ArrowLeft"},
	"right":      {"ArrowRight", "ArrowRight"},
	"arrowright": {"ArrowRight", "ArrowRight"},

	// Keys whose literal character would collide with the grammar.
	"plus":  {"+", ""},
	"minus": {"-", "Minus"},
}

// lookupKey resolves the final token of an accelerator to its logical
// key value and physical code.
func lookupKey(keyPart, accelerator string) (string, string, error) {
	if keyPart == "" {
		return "", "", fmt.Errorf("%w: missing key in %q", ErrInvalidAccelerator, accelerator)
	}

	lower := strings.ToLower(keyPart)
	if named, ok := namedKeys[lower]; ok {
		return named.key, named.code, nil
	}

	// F1..F20
	if rest, ok := strings.CutPrefix(lower, "f"); ok && rest != "" {
		if n, err := strconv.Atoi(rest); err == nil {
			if n < 1 || n > 20 {
				return "", "", fmt.Errorf("%w: function key out of range in %q", ErrInvalidAccelerator, accelerator)
			}
			name := "F" + strconv.Itoa(n)
			return name, name, nil
		}
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return "", "", fmt.Errorf("%w: unknown key %q in %q", ErrInvalidAccelerator, keyPart, accelerator)
	}

	r := runes[0]
	if !unicode.IsPrint(r) {
		return "", "", fmt.Errorf("%w: unprintable key in %q", ErrInvalidAccelerator, accelerator)
	}
	// Letters normalize to lowercase; case never implies Shift here.
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
	}
	return string(r), CodeForRune(r), nil
}

// punctuationCodes maps single printable characters to their physical
// key codes on a US layout. Characters outside the map keep an empty
// code and match by logical key alone.
var punctuationCodes = map[rune]string{
	'`':  "Backquote",
	'-':  "Minus",
	'=':  "Equal",
	'[':  "BracketLeft",
	']':  "BracketRight",
	'\\': "Backslash",
	';':  "Semicolon",
	'\'': "Quote",
	',':  "Comma",
	'.':  "Period",
	'/':  "Slash",
}

// CodeForRune returns the physical key code for a single printable
// character, or "" when no code is known.
func CodeForRune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return "Key" + strings.ToUpper(string(r))
	case r >= 'A' && r <= 'Z':
		return "Key" + string(r)
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	case r == ' ':
		return "Space"
	}
	return punctuationCodes[r]
}
