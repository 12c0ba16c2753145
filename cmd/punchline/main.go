package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/tinytelemetry/punchline/internal/clipboard"
	"github.com/tinytelemetry/punchline/internal/duckdb"
	"github.com/tinytelemetry/punchline/internal/httpserver"
	"github.com/tinytelemetry/punchline/internal/jokeapi"
	"github.com/tinytelemetry/punchline/internal/model"
	"github.com/tinytelemetry/punchline/internal/statsfile"
	"github.com/tinytelemetry/punchline/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("punchline", pflag.ContinueOnError)
	fs.String("config", "", "config file (default is $HOME/.config/punchline/config.yml)")
	fs.Bool("version", false, "print version information")
	fs.Bool("print-config", false, "print the effective configuration as YAML and exit")
	fs.StringP("category", "c", "", "initial joke category ("+strings.Join(model.Categories, ", ")+")")
	fs.String("storage-backend", "", "where stats are kept: file or duckdb")
	fs.String("api-base-url", "", "joke service base URL")
	fs.Duration("request-timeout", 0, "per-request timeout for the joke service")
	fs.Bool("no-companion", false, "do not start the local companion API")
	return fs
}

func main() {
	fs := newFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if showVersion, _ := fs.GetBool("version"); showVersion {
		fmt.Printf("Punchline - Terminal Joke Client\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	configPath, _ := fs.GetString("config")
	cfg, err := loadConfig(configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if printConfig, _ := fs.GetBool("print-config"); printConfig {
		out, err := marshalConfigYAML(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStatsStore opens the configured backend. Stats are best-effort, so a
// backend that fails to open is logged and the session runs without
// persistence.
func openStatsStore(cfg appConfig) (model.StatsStore, func()) {
	switch cfg.StorageBackend {
	case backendDuckDB:
		db, err := duckdb.NewStore(cfg.DBPath)
		if err != nil {
			log.Printf("opening duckdb stats store %s: %v (stats will not persist)", cfg.DBPath, err)
			return nil, func() {}
		}
		return model.NewKVStatsStore(db, model.StatsKey), func() { _ = db.Close() }
	default:
		dir, err := statsfile.Open(cfg.DataDir)
		if err != nil {
			log.Printf("opening stats dir %s: %v (stats will not persist)", cfg.DataDir, err)
			return nil, func() {}
		}
		return model.NewKVStatsStore(dir, model.StatsKey), func() {}
	}
}

func runTUI(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	store, closeStore := openStatsStore(cfg)
	defer closeStore()

	ctrl := tui.NewController(tui.ControllerDeps{
		Fetcher:       jokeapi.NewClient(cfg.APIBaseURL, jokeapi.WithTimeout(cfg.RequestTimeout)),
		Store:         store,
		Clipboard:     clipboard.System{},
		ToastDuration: cfg.ToastDuration,
	})
	page := tui.NewJokePage(ctrl, tui.DefaultBindings(), cfg.DefaultCategory)

	if cfg.CompanionEnabled && store != nil {
		stopCompanion := httpserver.Register(cfg.CompanionAddr, store)
		defer stopCompanion()
	}

	p := tea.NewProgram(tui.NewApp(page), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
