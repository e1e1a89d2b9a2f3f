package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/config"
	"github.com/balkashynov/timevate/internal/db"
	"github.com/balkashynov/timevate/internal/logging"
	"github.com/balkashynov/timevate/internal/tracking"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	configPath string
	dataDir    string
	ephemeral  bool
)

const shutdownTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:   "timevate",
	Short: "Track focused time and micro-wins",
	Long: `timevate tracks how you spend your time from the terminal.
Start a session, log small accomplishments as micro-wins, run timed
challenges and see how today and this week add up.`,
	Args: cobra.NoArgs,
	Run:  withApp(runHome),
}

// app is what every command that touches tracking data runs against
type app struct {
	cfg config.Config
	log *slog.Logger
	svc *tracking.Service

	closers []io.Closer
}

// loadRuntime reads the config and opens the log file
func loadRuntime() (config.Config, *slog.Logger, io.Closer, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, nil, nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if dataDir != "" {
		cfg = cfg.WithDataDir(dataDir)
	}

	logger, closer, err := logging.OpenFile(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, closer, nil
}

// openApp loads config and logging, opens the store and builds the service
func openApp(ctx context.Context) (*app, error) {
	cfg, logger, logCloser, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: logger, closers: []io.Closer{logCloser}}

	var store db.Store
	if ephemeral {
		store = db.NewMemoryStore()
		logger.Debug("using in-memory store")
	} else {
		sqlite, err := db.Open(cfg.DBPath)
		if err != nil {
			a.close(ctx)
			return nil, err
		}
		// Closed before the log file
		a.closers = append([]io.Closer{sqlite}, a.closers...)
		store = sqlite
	}

	loc, err := cfg.Location()
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	a.svc, err = tracking.New(ctx, store,
		tracking.WithLocation(loc),
		tracking.WithLogger(logger),
	)
	if err != nil {
		a.close(ctx)
		return nil, err
	}
	return a, nil
}

// close waits for pending writes, then releases the store and the log file
func (a *app) close(ctx context.Context) {
	if a.svc != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		if err := a.svc.Close(ctx); err != nil {
			a.log.Error("failed to persist state on exit", "error", err)
			fmt.Printf("Warning: some changes may not have been saved: %v\n", err)
		}
		cancel()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil && a.log != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}

// withApp wraps a command function to set up the tracking service first
func withApp(fn func(*cobra.Command, []string, *app)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := openApp(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.close(cmd.Context())
		fn(cmd, args, a)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timevate %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.timevate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for the database and log file")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep data in memory only, nothing is saved")

	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(winCmd)
	rootCmd.AddCommand(winsCmd)
	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(impactCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
