package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmcdole/kickoff/internal/config"
	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/livesport"
	"github.com/mmcdole/kickoff/internal/log"
	"github.com/mmcdole/kickoff/internal/search"
	"github.com/mmcdole/kickoff/internal/store"
	"github.com/mmcdole/kickoff/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// stateBuffer is the capacity of the TUI state channel
const stateBuffer = 16

var configPath string

var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "Search leagues and teams from the terminal",
	Long: `kickoff searches sports leagues and teams through the Livesport search API.

Run without arguments for the interactive search screen, or use
"kickoff search <text>" for a one-shot query.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/kickoff/config.yaml)")
	rootCmd.SetVersionTemplate("kickoff {{.Version}}\n")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired components shared by every command
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	repo    *livesport.Client
	client  *search.Client
	history *store.HistoryStore // nil when history is disabled
}

// newApp loads configuration and wires the search stack
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	repo := livesport.NewClient(cfg.API, logger)
	a := &app{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		client: search.NewClient(repo, logger),
	}

	a.client.Subscribe(domain.StateObserverFunc(func(s domain.SearchState) {
		logger.Debug("search state changed", "phase", s.Phase.String(), "seq", s.Seq, "text", s.Query.Text)
	}))

	if cfg.History.Enabled {
		history, err := store.NewHistoryStore(cfg.History.Path, cfg.History.MaxEntries)
		if err != nil {
			// History is optional; keep searching without it
			logger.Warn("history unavailable", "path", cfg.History.Path, "error", err)
		} else {
			a.history = history
			a.client.Subscribe(search.NewHistoryRecorder(history, logger))
		}
	}

	return a, nil
}

// historyStore returns the store as an interface, nil when disabled
func (a *app) historyStore() domain.HistoryStore {
	if a.history == nil {
		return nil
	}
	return a.history
}

// Close releases the history database
func (a *app) Close() {
	if a.history == nil {
		return
	}
	if err := a.history.Close(); err != nil {
		a.logger.Warn("failed to close history", "error", err)
	}
}

func runTUI(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting kickoff", "version", Version)

	states := make(chan domain.SearchState, stateBuffer)
	unsubscribe := a.client.Subscribe(tui.NewChannelObserver(states))
	defer unsubscribe()

	model := tui.NewModel(tui.Options{
		Client:   a.client,
		States:   states,
		History:  a.historyStore(),
		Images:   a.repo,
		Category: a.cfg.DefaultCategory(),
		Context:  ctx,
		Logger:   a.logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
