// Package main is an interactive probe for the termkey input layer: it
// puts the terminal in raw mode and prints every decoded key press.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/willibrandon/termkey/internal/config"
	"github.com/willibrandon/termkey/internal/key"
	"github.com/willibrandon/termkey/internal/source"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath    string
	escapeTimeout time.Duration
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.escapeTimeout > 0 {
		cfg.EscapeTimeout = opts.escapeTimeout
	}

	src, err := source.New(cfg.SourceOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open input: %v\n", err)
		return 1
	}
	defer src.Close() //nolint:errcheck

	// Raw mode for the lifetime of the read loop; the context restores
	// the terminal on every exit path.
	raw := src.RawMode()
	defer raw.Restore() //nolint:errcheck
	if !raw.Valid() {
		fmt.Fprintln(os.Stderr, "Warning: input is not a terminal; echoing parsed bytes only")
	}

	// Replay presses a previous run left behind.
	for _, press := range source.GetTypeahead(src) {
		printPress(press)
	}

	fmt.Print("Press keys to inspect them. Ctrl+C or Ctrl+D exits.\r\n")

	if err := readLoop(src, cfg.EscapeTimeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\r\n", err)
		return 1
	}
	return 0
}

// readLoop prints presses until Ctrl+C or Ctrl+D arrives. Presses that
// follow the exit key in the same batch go to the typeahead store so a
// successor process can replay them.
func readLoop(src source.Source, escapeTimeout time.Duration) error {
	waiter, _ := src.(interface{ Wait(time.Duration) bool })
	for {
		presses, err := src.ReadKeys()
		if err != nil {
			return err
		}
		if len(presses) == 0 {
			if waiter == nil {
				return nil // no way to block; pipe sources end here
			}
			if !waiter.Wait(escapeTimeout) {
				// Quiet past the escape timeout: force-resolve any
				// pending partial sequence.
				if presses, err = src.FlushKeys(); err != nil {
					return err
				}
			}
			if src.Closed() {
				return nil
			}
		}
		for i, press := range presses {
			printPress(press)
			if press.Key == key.KeyControlC || press.Key == key.KeyControlD {
				source.StoreTypeahead(src, presses[i+1:])
				return nil
			}
		}
	}
}

func printPress(p key.Press) {
	if p.IsChar() {
		fmt.Printf("char %-12q width=%d\r\n", p.Data, p.DisplayWidth())
		return
	}
	fmt.Printf("key  %-12s data=%q\r\n", p.Key, p.Data)
}

func parseFlags() options {
	var opts options
	var timeoutMs int
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.IntVar(&timeoutMs, "escape-timeout", 0, "Escape timeout in milliseconds (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termkey - terminal key press inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termkey [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("termkey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.escapeTimeout = time.Duration(timeoutMs) * time.Millisecond
	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "termkey.json"
	}
	return filepath.Join(dir, "termkey", "input.json")
}
