package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadFile loads a keymap from a JSON file.
func LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return km, nil
}

// LoadReader loads a keymap from a reader.
func LoadReader(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return config.keymap(), nil
}

// LoadDir loads every *.json keymap in a directory, skipping files that
// fail to parse.
func LoadDir(dir string) ([]*Keymap, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	keymaps := make([]*Keymap, 0, len(matches))
	for _, path := range matches {
		km, err := LoadFile(path)
		if err != nil {
			continue
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

// keymapConfig is the JSON structure for keymap files.
type keymapConfig struct {
	Name   string        `json:"name"`
	States []stateConfig `json:"states"`
}

type stateConfig struct {
	State    string          `json:"state"`
	Bindings []bindingConfig `json:"bindings"`
}

type bindingConfig struct {
	Keys        keyList `json:"keys"`
	Action      string  `json:"action,omitempty"`
	Script      string  `json:"script,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (c keymapConfig) keymap() *Keymap {
	km := &Keymap{
		Name:   c.Name,
		States: make([]StateBindings, 0, len(c.States)),
	}
	for _, sc := range c.States {
		sb := StateBindings{
			State:    sc.State,
			Bindings: make([]Binding, 0, len(sc.Bindings)),
		}
		for _, bc := range sc.Bindings {
			sb.Bindings = append(sb.Bindings, Binding{
				Keys:        bc.Keys,
				Action:      bc.Action,
				Script:      bc.Script,
				Description: bc.Description,
			})
		}
		km.States = append(km.States, sb)
	}
	return km
}

// keyList accepts either a single accelerator string or an array of
// them, so `"keys": "Ctrl+S"` and `"keys": ["Ctrl+S", "F2"]` both work.
type keyList []string

func (k *keyList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*k = keyList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("keys must be a string or array of strings")
	}
	*k = keyList(many)
	return nil
}

func (k keyList) MarshalJSON() ([]byte, error) {
	if len(k) == 1 {
		return json.Marshal(k[0])
	}
	return json.Marshal([]string(k))
}

// MarshalJSON converts a keymap to indented JSON.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	config := keymapConfig{
		Name:   k.Name,
		States: make([]stateConfig, 0, len(k.States)),
	}
	for _, sb := range k.States {
		sc := stateConfig{
			State:    sb.State,
			Bindings: make([]bindingConfig, 0, len(sb.Bindings)),
		}
		for _, b := range sb.Bindings {
			sc.Bindings = append(sc.Bindings, bindingConfig{
				Keys:        keyList(b.Keys),
				Action:      b.Action,
				Script:      b.Script,
				Description: b.Description,
			})
		}
		config.States = append(config.States, sc)
	}
	return json.MarshalIndent(config, "", "  ")
}

// UnmarshalJSON parses a keymap from JSON.
func (k *Keymap) UnmarshalJSON(data []byte) error {
	var config keymapConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return err
	}
	*k = *config.keymap()
	return nil
}

// SaveFile saves a keymap to a JSON file.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
