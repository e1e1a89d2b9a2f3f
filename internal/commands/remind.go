package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/notify"
	"github.com/balkashynov/timevate/internal/parser"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show time-check reminders while running",
	Long: `Keep running and show reminders in this terminal until ctrl+c.

By default a time-check reminder fires every hour (reminders.every in the
config file). Use --in to add a one-off micro-goal reminder.

Examples:
  timevate remind                                    # Hourly time check
  timevate remind --every 30m                        # Every 30 minutes
  timevate remind --in 25m --title "Break" --no-repeat`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, closer, err := loadRuntime()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer closer.Close()

		every := cfg.Reminders.Every
		if s, _ := cmd.Flags().GetString("every"); s != "" {
			seconds, err := parser.ParseDuration(s)
			if err != nil {
				fmt.Printf("Error: invalid --every: %v\n", err)
				return
			}
			every = time.Duration(seconds) * time.Second
		}
		noRepeat, _ := cmd.Flags().GetBool("no-repeat")
		in, _ := cmd.Flags().GetString("in")
		if noRepeat && in == "" {
			fmt.Println("Error: nothing to remind about, use --in with --no-repeat")
			return
		}

		fired := make(chan struct{}, 1)
		terminal := notify.NewTerminalNotifier(os.Stdout)
		scheduler := notify.NewScheduler(notify.NotifierFunc(func(n notify.Notification) error {
			defer func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			}()
			return terminal.Notify(n)
		}), logger)
		defer scheduler.CancelAll()

		if !noRepeat {
			if err := scheduler.HourlyReminder(every); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("⏰ Time check every %s\n", every)
		}

		if in != "" {
			seconds, err := parser.ParseDuration(in)
			if err != nil {
				fmt.Printf("Error: invalid --in: %v\n", err)
				return
			}
			title, _ := cmd.Flags().GetString("title")
			body, _ := cmd.Flags().GetString("body")
			if err := scheduler.MicroGoalReminder(title, body, seconds); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("🎯 \"%s\" in %s\n", title, time.Duration(seconds)*time.Second)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nReminders stopped")
				return
			case <-fired:
				// One-off reminders are done once nothing else is scheduled
				if scheduler.Pending() == 0 {
					return
				}
			}
		}
	},
}

func init() {
	remindCmd.Flags().String("every", "", "Interval between time checks (default from config, 1h)")
	remindCmd.Flags().String("in", "", "One-off reminder after this long: 90s, 25m, 1h")
	remindCmd.Flags().String("title", "🎯 Micro-goal", "Title of the one-off reminder")
	remindCmd.Flags().String("body", "Time to check in on your goal.", "Body of the one-off reminder")
	remindCmd.Flags().Bool("no-repeat", false, "Skip the repeating time check")
}
