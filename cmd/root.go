package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/clipedit/internal/app"
	"github.com/zjrosen/clipedit/internal/clipboard"
	"github.com/zjrosen/clipedit/internal/config"
	"github.com/zjrosen/clipedit/internal/flags"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/pubsub"
	"github.com/zjrosen/clipedit/internal/session"
	"github.com/zjrosen/clipedit/internal/store"
	"github.com/zjrosen/clipedit/internal/tracing"
	"github.com/zjrosen/clipedit/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin so the
	// OSC 11 reply cannot land in the editor as typed text.
	_ = lipgloss.HasDarkBackground()
}

const defaultConfigPath = ".clipedit/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "clipedit",
	Short: "A terminal scratchpad for clipboard text",
	Long: `clipedit is a terminal editor for clipboard text with undo/redo,
find and replace (plain or regular expression) and full/half-width conversion.
Content is saved between runs.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/clipedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to debug.log (or $CLIPEDIT_LOG)")
	rootCmd.PersistentFlags().String("db", "",
		"content database path (default: ~/.config/clipedit/clipedit.db)")
	rootCmd.Flags().Bool("no-watch", false,
		"do not reload content saved by other clipedit instances")

	_ = viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	viper.SetDefault("storage.key", defaults.Storage.Key)
	viper.SetDefault("storage.watch", defaults.Storage.Watch)
	viper.SetDefault("storage.watch_debounce", defaults.Storage.WatchDebounce)
	viper.SetDefault("ui.notification_duration", defaults.UI.NotificationDuration)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("search.case_sensitive", defaults.Search.CaseSensitive)
	viper.SetDefault("search.use_regex", defaults.Search.UseRegex)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", config.DefaultTracesFilePath())
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .clipedit/config.yaml (current directory)
		// 2. ~/.config/clipedit/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "clipedit"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if home, herr := os.UserHomeDir(); herr == nil {
				path := filepath.Join(home, ".config", "clipedit", "config.yaml")
				if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
					viper.SetConfigFile(path)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupLogging enables the file logger when --debug or CLIPEDIT_DEBUG is set.
func setupLogging(prefix string) (func(), error) {
	if !debugFlag && os.Getenv("CLIPEDIT_DEBUG") == "" {
		return func() {}, nil
	}
	logPath := os.Getenv("CLIPEDIT_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "clipedit starting", "debug", true, "logPath", logPath, "version", version)
	return cleanup, nil
}

// environment is everything a command needs to work on the stored content.
type environment struct {
	store    *store.Store
	session  *session.Session
	notices  *notify.Queue
	provider *tracing.Provider
}

func (e *environment) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "Failed to flush traces", err)
	}
	if err := e.store.Close(); err != nil {
		log.ErrorErr(log.CatStore, "Failed to close store", err)
	}
}

// openEnvironment validates the config, opens the store and an opened
// session over it.
func openEnvironment(ctx context.Context, clip clipboard.Clipboard) (*environment, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	st, err := store.Open(ctx, cfg.StoragePath())
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, fmt.Errorf("opening content store: %w", err)
	}

	notices := notify.NewQueue()
	opts := []session.Option{
		session.WithStore(st),
		session.WithNotifier(notices),
		session.WithTracer(provider.Tracer()),
		session.WithMaxHistory(cfg.History.MaxEntries),
	}
	if cfg.Storage.Key != "" {
		opts = append(opts, session.WithKey(cfg.Storage.Key))
	}
	if clip != nil {
		opts = append(opts, session.WithClipboard(clip))
	}

	sess := session.New(opts...)
	env := &environment{store: st, session: sess, notices: notices, provider: provider}
	if err := sess.Open(ctx); err != nil {
		env.Close()
		return nil, fmt.Errorf("opening session: %w", err)
	}
	return env, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("clipedit")
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	env, err := openEnvironment(ctx, clipboard.NewSystem(os.Stdout))
	if err != nil {
		return err
	}
	defer env.Close()

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Storage.Watch = false
	}

	var events *pubsub.Broker[string]
	if cfg.Storage.Watch {
		events = pubsub.NewBroker[string]()
		defer events.Close()

		w, err := watcher.New(watcher.Config{
			DBPath:   env.store.Path(),
			Debounce: cfg.Storage.WatchDebounce,
		}, events)
		if err == nil {
			err = w.Start(ctx)
		}
		if err != nil {
			// The editor works without live reload.
			log.Warn(log.CatWatcher, "Watcher disabled", "error", err)
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = defaultConfigPath
	}

	zone.NewGlobal()

	model := app.New(ctx, app.Options{
		Session:    env.session,
		Notices:    env.notices,
		Config:     cfg,
		ConfigPath: configPath,
		Flags:      flags.New(cfg.Flags),
		Events:     events,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
