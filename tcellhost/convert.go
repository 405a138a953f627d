package tcellhost

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope/key"
)

// eventFromTcell converts a tcell key event to a key.Event. Terminals
// only report key presses, so the result is always a down event with
// all four modifier flags known.
//
// tcell aliases several named keys onto the control-character range
// (KeyTab is KeyCtrlI, KeyEnter is KeyCtrlM, KeyBackspace is KeyCtrlH),
// so the named keys are matched before the Ctrl+letter range.
func eventFromTcell(tev *tcell.EventKey) key.Event {
	ev := key.Event{
		Kind:  key.KindDown,
		Mods:  modsFromTcell(tev.Modifiers()),
		Known: key.ModAll,
	}

	switch k := tev.Key(); {
	case k == tcell.KeyRune:
		r := tev.Rune()
		if r == ' ' {
			ev.Key, ev.Code = " ", "Space"
			return ev
		}
		// Terminals report a shifted letter as its uppercase rune with
		// no shift flag.
		if unicode.IsUpper(r) {
			ev.Mods = ev.Mods.With(key.ModShift)
			r = unicode.ToLower(r)
		}
		ev.Key = string(r)
		ev.Code = key.CodeForRune(r)

	case k == tcell.KeyEnter:
		ev.Key, ev.Code = "Enter", "Enter"
	case k == tcell.KeyTab:
		ev.Key, ev.Code = "Tab", "Tab"
	case k == tcell.KeyBacktab:
		ev.Key, ev.Code = "Tab", "Tab"
		ev.Mods = ev.Mods.With(key.ModShift)
	case k == tcell.KeyEscape:
		ev.Key, ev.Code = "Escape", "Escape"
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		ev.Key, ev.Code = "Backspace", "Backspace"
	case k == tcell.KeyDelete:
		ev.Key, ev.Code = "Delete", "Delete"
	case k == tcell.KeyInsert:
		ev.Key, ev.Code = "Insert", "Insert"
	case k == tcell.KeyHome:
		ev.Key, ev.Code = "Home", "Home"
	case k == tcell.KeyEnd:
		ev.Key, ev.Code = "End", "End"
	case k == tcell.KeyPgUp:
		ev.Key, ev.Code = "PageUp", "PageUp"
	case k == tcell.KeyPgDn:
		ev.Key, ev.Code = "PageDown", "PageDown"
	case k == tcell.KeyUp:
		ev.Key, ev.Code = "ArrowUp", "ArrowUp"
	case k == tcell.KeyDown:
		ev.Key, ev.Code = "ArrowDown", "ArrowDown"
	case k == tcell.KeyLeft:
		ev.Key, ev.Code = "ArrowLeft", "ArrowLeft"
	case k == tcell.KeyRight:
		ev.Key, ev.Code = "ArrowRight", "ArrowRight"

	case k >= tcell.KeyF1 && k <= tcell.KeyF64:
		name := "F" + strconv.Itoa(int(k-tcell.KeyF1)+1)
		ev.Key, ev.Code = name, name

	case k == tcell.KeyCtrlSpace:
		ev.Key, ev.Code = " ", "Space"
		ev.Mods = ev.Mods.With(key.ModCtrl)

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune(k-tcell.KeyCtrlA) + 'a'
		ev.Key = string(r)
		ev.Code = key.CodeForRune(r)
		ev.Mods = ev.Mods.With(key.ModCtrl)

	default:
		// Keys the registry has no spelling for produce a zero
		// descriptor and never match.
	}

	return ev
}

// modsFromTcell converts a tcell modifier mask to a key.Modifier.
func modsFromTcell(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
