package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/taptap/tapsdk-go/dlc"
	"github.com/taptap/tapsdk-go/script"
	"github.com/taptap/tapsdk-go/sdk"
	"github.com/taptap/tapsdk-go/user"
)

func main() {
	var (
		configFile  = flag.String("config", "tapctl.toml", "Path to TOML config")
		scriptFile  = flag.String("script", "", "JavaScript file to run against the SDK")
		watch       = flag.Duration("watch", 0, "Keep pumping events to the script for this long after it returns")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		sdk.SetLogger(logger)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: tapctl -config tapctl.toml [-script file.js] [-i]")
		os.Exit(1)
	}

	if err := run(cfg, *scriptFile, *watch, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, scriptFile string, watch time.Duration, interactive bool) error {
	if cfg.Library != "" {
		sdk.SetLibraryPath(cfg.Library)
	}

	if cfg.ClientID != "" {
		restart, err := sdk.RestartAppIfNecessary(cfg.ClientID)
		if err != nil {
			return err
		}
		if restart {
			fmt.Println("TapTap is relaunching the app; exiting.")
			return nil
		}
	}

	s, err := sdk.Init(cfg.PubKey)
	if err != nil {
		return err
	}
	defer s.Close()

	if interactive {
		return runInteractive(s, cfg)
	}
	if scriptFile != "" {
		return runScript(cfg, scriptFile, watch)
	}
	return printStatus(s)
}

// runScript executes one JavaScript file and, with -watch, keeps delivering
// events to its onEvent handlers afterwards.
func runScript(cfg Config, path string, watch time.Duration) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := script.New(script.SDKBackend{})
	if _, err := engine.RunScript(path, string(src)); err != nil {
		return err
	}

	if watch <= 0 {
		return nil
	}
	deadline := time.Now().Add(watch)
	for time.Now().Before(deadline) {
		time.Sleep(cfg.PollInterval)
		if _, err := engine.Poll(); err != nil {
			return err
		}
	}
	return nil
}

// printStatus is the default mode: one snapshot of what the platform knows.
func printStatus(s *sdk.SDK) error {
	if id, ok := s.ClientID(); ok {
		fmt.Printf("Client ID:  %s\n", id)
	} else {
		fmt.Println("Client ID:  (unavailable)")
	}
	if id, ok := user.OpenID(); ok {
		fmt.Printf("Open ID:    %s\n", id)
	} else {
		fmt.Println("Open ID:    (not signed in)")
	}
	fmt.Printf("Game owned: %v\n", dlc.GameOwned())
	return nil
}
