package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Show the active configuration and where it was loaded from.
Use --init to write a config file with the defaults.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			path = p
		}

		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if dataDir != "" {
			cfg = cfg.WithDataDir(dataDir)
		}

		initFile, _ := cmd.Flags().GetBool("init")
		if initFile {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Config already exists at %s\n", path)
				return
			} else if !errors.Is(err, os.ErrNotExist) {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := cfg.Save(path); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("✅ Wrote %s\n", path)
		}

		timezone := cfg.Timezone
		if timezone == "" {
			timezone = "local"
		}
		fmt.Printf("Config file: %s\n", path)
		fmt.Printf("Data dir:    %s\n", cfg.DataDir)
		fmt.Printf("Database:    %s\n", cfg.DBPath)
		fmt.Printf("Log file:    %s (%s)\n", cfg.LogPath(), cfg.LogLevel)
		fmt.Printf("Timezone:    %s\n", timezone)
		fmt.Printf("Reminders:   every %s\n", cfg.Reminders.Every)
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Write a config file with the current settings")
}
