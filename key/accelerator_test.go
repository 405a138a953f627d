package key

import (
	"errors"
	"runtime"
	"testing"
)

func TestFromAccelerator(t *testing.T) {
	tests := []struct {
		spec string
		want Descriptor
	}{
		{"Ctrl+S", Descriptor{Key: "s", Code: "KeyS", Mods: ModCtrl, Known: ModAll}},
		{"ctrl+s", Descriptor{Key: "s", Code: "KeyS", Mods: ModCtrl, Known: ModAll}},
		{"Ctrl+Shift+P", Descriptor{Key: "p", Code: "KeyP", Mods: ModCtrl | ModShift, Known: ModAll}},
		{"Alt+F4", Descriptor{Key: "F4", Code: "F4", Mods: ModAlt, Known: ModAll}},
		{"Option+Left", Descriptor{Key: "ArrowLeft", Code: "ArrowLeft", Mods: ModAlt, Known: ModAll}},
		{"Meta+Enter", Descriptor{Key: "Enter", Code: "Enter", Mods: ModMeta, Known: ModAll}},
		{"Super+Space", Descriptor{Key: " ", Code: "Space", Mods: ModMeta, Known: ModAll}},
		{"a", Descriptor{Key: "a", Code: "KeyA", Known: ModAll}},
		{"A", Descriptor{Key: "a", Code: "KeyA", Known: ModAll}},
		{"5", Descriptor{Key: "5", Code: "Digit5", Known: ModAll}},
		{"=", Descriptor{Key: "=", Code: "Equal", Known: ModAll}},
		{"Ctrl+/", Descriptor{Key: "/", Code: "Slash", Mods: ModCtrl, Known: ModAll}},
		{"Escape", Descriptor{Key: "Escape", Code: "Escape", Known: ModAll}},
		{"esc", Descriptor{Key: "Escape", Code: "Escape", Known: ModAll}},
		{"F12", Descriptor{Key: "F12", Code: "F12", Known: ModAll}},
		{"f20", Descriptor{Key: "F20", Code: "F20", Known: ModAll}},
		{"PgUp", Descriptor{Key: "PageUp", Code: "PageUp", Known: ModAll}},
		{"Ctrl+Plus", Descriptor{Key: "+", Mods: ModCtrl, Known: ModAll}},
		{" Ctrl + S ", Descriptor{Key: "s", Code: "KeyS", Mods: ModCtrl, Known: ModAll}},
	}

	for _, tt := range tests {
		got, err := FromAccelerator(tt.spec)
		if err != nil {
			t.Errorf("FromAccelerator(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromAccelerator(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestFromAcceleratorCmdOrCtrl(t *testing.T) {
	want := ModCtrl
	if runtime.GOOS == "darwin" {
		want = ModMeta
	}

	for _, spec := range []string{"CmdOrCtrl+S", "cmdorctrl+s", "CommandOrControl+S"} {
		got, err := FromAccelerator(spec)
		if err != nil {
			t.Fatalf("FromAccelerator(%q) error = %v", spec, err)
		}
		if got.Mods != want {
			t.Errorf("FromAccelerator(%q).Mods = %v, want %v", spec, got.Mods, want)
		}
	}
}

func TestFromAcceleratorInvalid(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptyAccelerator},
		{"   ", ErrEmptyAccelerator},
		{"Ctrl+", ErrInvalidAccelerator},
		{"Bogus+S", ErrInvalidAccelerator},
		{"S+A", ErrInvalidAccelerator}, // "S" is a key, not a modifier
		{"Ctrl+NoSuchKey", ErrInvalidAccelerator},
		{"F21", ErrInvalidAccelerator},
		{"F0", ErrInvalidAccelerator},
		{"+", ErrInvalidAccelerator},
	}

	for _, tt := range tests {
		got, err := FromAccelerator(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("FromAccelerator(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
		if !got.IsZero() {
			t.Errorf("FromAccelerator(%q) = %+v, want zero descriptor", tt.spec, got)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		spec string
		want bool
	}{
		{"Ctrl+S", true},
		{"CmdOrCtrl+Shift+Z", true},
		{"Enter", true},
		{"", false},
		{"Bogus+X", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.spec); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestCodeForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'s', "KeyS"},
		{'S', "KeyS"},
		{'0', "Digit0"},
		{' ', "Space"},
		{'=', "Equal"},
		{';', "Semicolon"},
		{'€', ""},
	}

	for _, tt := range tests {
		if got := CodeForRune(tt.r); got != tt.want {
			t.Errorf("CodeForRune(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
