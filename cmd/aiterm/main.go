package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/iishyfishyy/aiterm/internal/agent"
	"github.com/iishyfishyy/aiterm/internal/config"
	"github.com/iishyfishyy/aiterm/internal/executor"
	"github.com/iishyfishyy/aiterm/internal/logging"
	"github.com/iishyfishyy/aiterm/internal/repl"
	"github.com/iishyfishyy/aiterm/internal/ui"
)

var (
	// version is set by goreleaser at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options holds the CLI flags
type options struct {
	debug bool
	model string
	copy  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "aiterm",
		Short:   "Natural language terminal powered by Gemini",
		Long:    "aiterm translates natural language into shell commands using Gemini and runs them after you confirm",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoop(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&opts.model, "model", "m", "", "Gemini model to use (overrides config)")
	rootCmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy each suggestion to the clipboard")

	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Choose the Gemini model and clipboard behaviour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd, opts)
		},
	}

	rootCmd.AddCommand(configureCmd)
	return rootCmd
}

// settings is the effective configuration after merging file and flags
type settings struct {
	model          string
	copySuggestion bool
}

func resolveSettings(cfg *config.Config, opts *options) settings {
	s := settings{
		model:          agent.DefaultModel,
		copySuggestion: cfg.CopySuggestion || opts.copy,
	}
	if cfg.Model != "" {
		s.model = cfg.Model
	}
	if opts.model != "" {
		s.model = opts.model
	}
	return s
}

func runLoop(cmd *cobra.Command, opts *options) error {
	log, err := logging.New(opts.debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := config.LoadEnv(); err != nil {
		return err
	}

	configPath, _ := config.GetConfigPath()
	log.Debug("loading config", zap.String("path", configPath))
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	s := resolveSettings(cfg, opts)

	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := agent.NewGeminiClient(ctx, apiKey)
	if err != nil {
		return err
	}
	log.Debug("gemini client ready", zap.String("model", s.model), zap.Bool("copy", s.copySuggestion))

	out := cmd.OutOrStdout()
	loop := repl.New(
		agent.NewGeminiAgent(client.Models, s.model, log),
		executor.NewShell(log),
		cmd.InOrStdin(),
		out,
		log,
	)
	if s.copySuggestion {
		loop.Copy = clipboard.WriteAll
	}

	ui.ShowBanner(out, s.model)
	return loop.Run(ctx)
}

func runConfigure(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("configure requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	model, err := ui.SelectModel(cfg.Model)
	if err != nil {
		return err
	}
	cfg.Model = model

	copySuggestion, err := ui.PromptYesNo("Copy every suggestion to the clipboard?", cfg.CopySuggestion)
	if err != nil {
		return err
	}
	cfg.CopySuggestion = copySuggestion

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	configPath, _ := config.GetConfigPath()
	ui.ShowSuccess(out, fmt.Sprintf("Configuration saved to %s", configPath))

	if err := config.LoadEnv(); err != nil {
		return err
	}
	if _, err := config.APIKey(); err != nil {
		ui.ShowInfo(out, "\nNo API key found. Export GEMINI_API_KEY or add it to a .env file:")
		if dir, err := config.GetConfigDir(); err == nil {
			ui.ShowInfo(out, fmt.Sprintf("  echo 'GEMINI_API_KEY=...' >> %s/%s", dir, config.EnvFileName))
		}
	}

	return nil
}
