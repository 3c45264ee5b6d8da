// Package main is the entry point for the Bikeshare Dashboard TUI.
// It loads configuration and the dataset, then runs the Bubble Tea program.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/pages/about"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/pages/dashboard"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/version"
)

type options struct {
	dataPath string
	engine   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Terminal dashboard for the 2011-2012 bikeshare dataset",
		Long: `Bikeshare Dashboard - explore hourly bike rental data in the terminal.

Keyboard Shortcuts:
  1/a             About page
  2/d             Dashboard page
  Tab             Edit the date filter
  Enter           Apply the date filter
  j/k, Up/Down    Scroll
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  BIKESHARE_DATASET   Path to hour.csv (default: hour.csv)
  BIKESHARE_ENGINE    Query engine: memory or sqlite (default: memory)
  LOG_LEVEL           debug, info, warn or error (default: info)
  LOG_FILE            Write logs to this file (default: discarded)

Configuration:
  The application looks for .env files in the current directory and
  ~/.config/bikeshare-dashboard/.env`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.SetVersionTemplate(version.Info() + "\n")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "path to hour.csv (overrides BIKESHARE_DATASET)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "query engine: memory or sqlite (overrides BIKESHARE_ENGINE)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	})

	return cmd
}

// loadConfig reads the environment and applies flags that were set.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("data") {
		cfg.DatasetPath = opts.dataPath
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = opts.engine
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// run contains the main application logic, separated for cleaner error handling.
func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.Init(logOut, logger.ParseLevel(cfg.LogLevel))

	mgr, err := services.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	defer func() {
		if closeErr := mgr.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing engine: %v\n", closeErr)
		}
	}()

	model := app.NewModel(mgr)
	state := model.GetState()
	model.SetPage(services.ViewAbout, about.New(state, cfg, mgr))
	model.SetPage(services.ViewDashboard, dashboard.New(state, model.GetCommands()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(tea.Quit())
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("session ended", "session", mgr.Session().ID())
	return nil
}
