package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wikisuggest/internal/config"
	"wikisuggest/internal/eventbus"
	"wikisuggest/internal/logging"
	"wikisuggest/internal/suggest"
	"wikisuggest/internal/ui"
	"wikisuggest/internal/wikipedia"
)

var opts options

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wikisuggest [seed]",
	Short: "Live Wikipedia search suggestions in the terminal",
	Long: `wikisuggest shows Wikipedia article suggestions while you type.

Suggestions are fetched once typing pauses; clearing the search box empties
the list shortly after. Enter opens the selected article in the browser.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.Flags().Changed, args)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.seed, "seed", config.DefaultSeed, "Initial search query")
	flags.StringVar(&opts.endpoint, "endpoint", config.DefaultEndpoint, "MediaWiki API endpoint")
	flags.DurationVar(&opts.debounce, "debounce", config.DefaultDebounceMs*time.Millisecond, "Quiet period before a query is sent")
	flags.DurationVar(&opts.grace, "grace", config.DefaultGraceMs*time.Millisecond, "Delay before an empty query clears the list")
	flags.StringVar(&opts.logFile, "log-file", "wikisuggest.log", "Log file, empty to disable logging")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.proxy, "proxy", "", "Proxy URL (http, https or socks5)")
	flags.BoolVar(&opts.saveConfig, "save-config", false, "Write the effective configuration to the config file")
}

func run(ctx context.Context, changed func(string) bool, args []string) error {
	configSvc := config.NewConfigService(opts.configPath, nil)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts, changed, args); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, logCloser, err := logging.OpenFile(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)
	logger.Debug("configuration resolved", "path", configSvc.Path())

	bus := eventbus.New(logger)
	defer bus.Close()
	eventbus.LogEvents(bus, logger)

	if opts.saveConfig {
		if err := config.NewConfigService(opts.configPath, bus).Save(cfg); err != nil {
			return err
		}
	}

	httpClient, err := wikipedia.NewHTTPClient(cfg.ProxyURL, cfg.RequestTimeout())
	if err != nil {
		return err
	}
	client, err := wikipedia.NewClient(cfg.Endpoint,
		wikipedia.WithHTTPClient(httpClient),
		wikipedia.WithUserAgent(cfg.UserAgent),
	)
	if err != nil {
		return err
	}

	ctrl := suggest.NewController(client, suggest.Options{
		Seed:     cfg.Seed,
		Debounce: cfg.Debounce(),
		Grace:    cfg.Grace(),
		Bus:      bus,
		Logger:   logger,
	})
	defer ctrl.Close()

	model := ui.NewModel(ctrl, cfg, bus)
	model.SetLogger(logger)

	logger.Info("starting", "seed", cfg.Seed, "endpoint", cfg.Endpoint, "debounce", cfg.Debounce(), "grace", cfg.Grace())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}
