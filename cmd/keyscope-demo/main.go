// Package main is the entry point for the keyscope demo.
//
// The demo runs a small tcell UI with a handful of windows and wires a
// JSON keymap into the shortcut engine. Edit the keymap file while the
// demo runs to see live reload in action.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.keymapPath != "" {
		cfg.KeymapPath = opts.keymapPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.noReload {
		cfg.LiveReload = false
	}

	app, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		app.Stop()
	}()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

type options struct {
	configPath string
	keymapPath string
	logLevel   string
	logFile    string
	noReload   bool
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "keyscope-demo.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "keyscope-demo.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.keymapPath, "keymap", "", "Path to keymap file (overrides config)")
	flag.StringVar(&opts.keymapPath, "k", "", "Path to keymap file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&opts.noReload, "no-reload", false, "Disable keymap live reload")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keyscope demo - window-scoped keyboard shortcuts\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyscope-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyscope-demo                       Run with defaults\n")
		fmt.Fprintf(os.Stderr, "  keyscope-demo -k mykeys.json        Use a custom keymap\n")
		fmt.Fprintf(os.Stderr, "  keyscope-demo -log-file demo.log    Log to a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keyscope-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
