package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/key"
	"github.com/dshills/keyscope/keymap"
	"github.com/dshills/keyscope/logging"
	"github.com/dshills/keyscope/tcellhost"
)

const (
	stateNormal = "normal"
	stateHelp   = "help"
)

// App wires the host, the shortcut engine, the keymap, and the action
// set together.
type App struct {
	cfg    Config
	log    *logging.Logger
	host   *tcellhost.Host
	engine *keyscope.Engine

	actions    *actionSet
	keymap     *keymap.Keymap
	quitStates []string
	state      string
}

func newApp(cfg Config) (*App, error) {
	if err := setupLogging(cfg); err != nil {
		return nil, err
	}

	if cfg.QuitKey != "" && !key.Valid(cfg.QuitKey) {
		return nil, fmt.Errorf("invalid quit_key %q", cfg.QuitKey)
	}

	host, err := tcellhost.New()
	if err != nil {
		return nil, fmt.Errorf("creating terminal host: %w", err)
	}

	a := &App{
		cfg:    cfg,
		log:    logging.GetLogger().WithComponent("demo"),
		host:   host,
		engine: keyscope.New(host),
		state:  stateNormal,
	}
	a.actions = newActionSet(a)
	return a, nil
}

// setupLogging routes logs to the configured file. The terminal is
// occupied by the UI, so without a log file logging is disabled.
func setupLogging(cfg Config) error {
	if cfg.LogFile == "" {
		logging.SetLogger(logging.NullLogger)
		return nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logging.SetLogger(logging.NewLogger(logging.LoggerConfig{
		Level:  logging.ParseLogLevel(cfg.LogLevel),
		Output: f,
		Prefix: "keyscope-demo",
	}))
	return nil
}

// Run initializes the screen, applies the keymap, and blocks in the
// host event loop until quit.
func (a *App) Run() error {
	if err := a.host.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.host.Fini()
	defer a.actions.Close()

	titles := a.cfg.Windows
	if len(titles) == 0 {
		titles = []string{"scratch"}
	}
	for _, title := range titles {
		a.host.CreateWindow(title)
	}

	km, err := a.ensureKeymap()
	if err != nil {
		return err
	}
	a.applyKeymap(km)
	a.setState(stateNormal)

	if w := a.host.Focused(); w != nil {
		w.Println("keyscope demo ready, F1 for help")
	}

	if a.cfg.LiveReload {
		watcher, err := keymap.NewWatcher(a.cfg.KeymapPath, func(km *keymap.Keymap) {
			// Reloads are marshaled onto the event loop so the engine,
			// keymap, and Lua state stay single-threaded.
			_ = a.host.Post(func() { a.reloadKeymap(km) })
		})
		if err != nil {
			return fmt.Errorf("watching keymap: %w", err)
		}
		defer watcher.Close()
	}

	return a.host.Run()
}

// Stop makes Run return. Safe from any goroutine.
func (a *App) Stop() {
	a.host.Stop()
}

// ensureKeymap loads the configured keymap file, writing the default
// keymap there first when the file does not exist.
func (a *App) ensureKeymap() (*keymap.Keymap, error) {
	if _, err := os.Stat(a.cfg.KeymapPath); os.IsNotExist(err) {
		if err := defaultKeymap().SaveFile(a.cfg.KeymapPath); err != nil {
			return nil, err
		}
		a.log.Info("wrote default keymap to %s", a.cfg.KeymapPath)
	}

	km, err := keymap.LoadFile(a.cfg.KeymapPath)
	if err != nil {
		return nil, err
	}
	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("keymap %s: %w", a.cfg.KeymapPath, err)
	}
	return km, nil
}

// applyKeymap registers the keymap's bindings for all windows, plus the
// always-available quit key under every state the keymap declares.
func (a *App) applyKeymap(km *keymap.Keymap) {
	n := km.Apply(a.engine, nil, a.actions.resolve)
	if a.cfg.QuitKey != "" {
		for _, sb := range km.States {
			a.engine.Register(nil, sb.State, a.cfg.QuitKey, a.quit)
			a.quitStates = append(a.quitStates, sb.State)
		}
	}
	a.keymap = km
	a.log.Info("keymap %q applied, %d accelerators", km.Name, n)
}

func (a *App) revertKeymap() {
	if a.keymap == nil {
		return
	}
	a.keymap.Revert(a.engine, nil, a.actions.resolve)
	for _, state := range a.quitStates {
		a.engine.Unregister(nil, state, a.cfg.QuitKey)
	}
	a.quitStates = nil
	a.keymap = nil
}

// reloadKeymap swaps the active keymap for a freshly loaded one,
// preserving the current state's enablement.
func (a *App) reloadKeymap(km *keymap.Keymap) {
	a.revertKeymap()
	a.applyKeymap(km)
	a.setState(a.state)
	if w := a.host.Focused(); w != nil {
		w.Println("keymap %q reloaded", km.Name)
	}
}

// setState switches which binding group is live and refreshes the UI.
func (a *App) setState(name string) {
	a.state = name
	a.engine.EnableOnly(nil, name)
	a.host.SetStatus(fmt.Sprintf(" [%s]  quit: %s", name, a.cfg.QuitKey))
	if name == stateHelp {
		a.showHelp()
	}
}

// showHelp prints the keymap's bindings into the focused window.
func (a *App) showHelp() {
	w := a.host.Focused()
	if w == nil || a.keymap == nil {
		return
	}
	w.Clear()
	w.Println("bindings (%s)", a.keymap.Name)
	for _, sb := range a.keymap.States {
		w.Println("[%s]", sb.State)
		for _, b := range sb.Bindings {
			w.Println("  %-24s %s", strings.Join(b.Keys, " / "), b.Description)
		}
	}
	if a.cfg.QuitKey != "" {
		w.Println("  %-24s quit", a.cfg.QuitKey)
	}
}

func (a *App) quit() {
	a.host.Stop()
}

func (a *App) newWindow() {
	a.host.CreateWindow(fmt.Sprintf("window %d", len(a.host.Windows())+1))
	a.host.SetStatus(fmt.Sprintf(" [%s]  %d windows", a.state, len(a.host.Windows())))
}

func (a *App) closeWindow() {
	if len(a.host.Windows()) <= 1 {
		a.host.SetStatus(" cannot close the last window")
		return
	}
	if w := a.host.Focused(); w != nil {
		a.host.DestroyWindow(w)
	}
}

func (a *App) focusNext() {
	a.host.FocusNext()
}

func (a *App) clearWindow() {
	if w := a.host.Focused(); w != nil {
		w.Clear()
	}
}

func (a *App) echo(msg string) {
	if w := a.host.Focused(); w != nil {
		w.Println("%s", msg)
	}
}

// defaultKeymap is written to disk on first run so there is something
// to edit and live-reload.
func defaultKeymap() *keymap.Keymap {
	km := keymap.NewKeymap("demo")
	km.Add(stateNormal, keymap.Binding{Keys: []string{"Ctrl+N"}, Action: "new-window", Description: "Open a new window"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"Ctrl+W"}, Action: "close-window", Description: "Close the focused window"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"Tab"}, Action: "focus-next", Description: "Focus the next window"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"Ctrl+L"}, Action: "clear", Description: "Clear the focused window"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"F1"}, Action: "help-mode", Description: "Show help"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"CmdOrCtrl+S"}, Script: "echo('saved at ' .. os.date('%H:%M:%S'))", Description: "Pretend to save"})
	km.Add(stateNormal, keymap.Binding{Keys: []string{"Ctrl+E"}, Script: "echo('hello from lua')", Description: "Run a script"})
	km.Add(stateHelp, keymap.Binding{Keys: []string{"Escape", "F1"}, Action: "normal-mode", Description: "Leave help"})
	return km
}
