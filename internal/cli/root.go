package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arturyumaev/casinodesk/internal/factory"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	redisstorage "github.com/arturyumaev/casinodesk/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loaded, err := DefaultConfig()
	if err != nil {
		// Flags still need a config to bind to; fall back to zero values
		loaded = &Config{Session: "default", Storage: "memory", Output: "text"}
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:   "casinodesk",
		Short: "Operator console for the game economy service",
		Long: `casinodesk is the operator console for the game economy service.

It manages the player record grid (ordering, selection, filtering, role
changes, rewards) and the game asset configuration draft. Grid state and
drafts persist per operator session between invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			apiCfg, err := gameapi.ConfigFromEnv()
			if err != nil {
				return err
			}

			factoryCfg := factory.Config{
				SessionID:   model.SessionID(cfg.Session),
				APIConfig:   apiCfg,
				Logger:      newLogger(cfg.Verbose),
				StorageType: cfg.Storage,
			}
			if cfg.Storage == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			app, err = factory.New(factoryCfg)
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Session, "session", cfg.Session, "Operator session name (env: CASINODESK_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Session store: memory, redis (env: CASINODESK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: CASINODESK_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newDashboardCmd())

	return rootCmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
