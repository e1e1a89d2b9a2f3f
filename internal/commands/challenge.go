package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/challenges"
	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/notify"
	"github.com/balkashynov/timevate/internal/parser"
	"github.com/balkashynov/timevate/internal/tui"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List the built-in challenges",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tiers := []int{challenges.OneMinute, challenges.FiveMinutes, challenges.OneHour}

		if d, _ := cmd.Flags().GetString("duration"); d != "" {
			seconds, err := parser.ParseDuration(d)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			tiers = []int{seconds}
		}

		found := false
		for _, tier := range tiers {
			list := challenges.ByDuration(tier)
			if len(list) == 0 {
				continue
			}
			found = true
			fmt.Println(headingStyle.Render(format.Duration(tier) + " challenges"))
			for _, c := range list {
				fmt.Printf("  %-4s %-32s %s\n", c.ID, c.Title, mutedStyle.Render(c.Category))
			}
			fmt.Println()
		}
		if !found {
			fmt.Println("No challenges with that duration")
			return
		}
		fmt.Println("Run one with 'timevate challenge <id>'")
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge <id>",
	Short: "Run a challenge countdown",
	Long: `Run a challenge countdown. Completing it logs a micro-win with the
challenge's full duration; giving up logs nothing.

Examples:
  timevate challenge 1          # Countdown with interactive UI
  timevate challenge 1 --no-ui  # Plain countdown, ctrl+c to give up`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		c, ok := challenges.Find(args[0])
		if !ok {
			fmt.Printf("Error: challenge '%s' not found. See 'timevate challenges'.\n", args[0])
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if _, err := tui.RunChallengeTUI(c, a.svc); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if runPlainChallenge(ctx, c, a) {
			win := a.svc.AddMicroWin(c.Win(time.Time{}))
			a.log.Info("challenge completed", "challenge", c.ID, "win", win.ID)
			fmt.Printf("🏆 Challenge complete! \"%s\" logged as a micro-win (%s)\n", win.Title, format.Duration(win.Duration))
		} else {
			a.log.Info("challenge abandoned", "challenge", c.ID)
			fmt.Printf("\n❌ Challenge \"%s\" abandoned.\n", c.Title)
		}
	}),
}

// runPlainChallenge counts down on a single terminal line. Completion is
// signalled by a micro-goal notification; it returns false if ctx ends first.
func runPlainChallenge(ctx context.Context, c models.Challenge, a *app) bool {
	done := make(chan struct{})
	terminal := notify.NewTerminalNotifier(os.Stdout)
	scheduler := notify.NewScheduler(notify.NotifierFunc(func(n notify.Notification) error {
		defer close(done)
		fmt.Println()
		return terminal.Notify(n)
	}), a.log)
	defer scheduler.CancelAll()

	if err := scheduler.MicroGoalReminder("🎯 "+c.Title, "Time's up, challenge done!", c.Duration); err != nil {
		a.log.Warn("could not schedule challenge end", "error", err)
		return c.Duration <= 0
	}

	fmt.Printf("⚡ %s (%s)\n", c.Title, c.Category)
	if c.Description != "" {
		fmt.Println(mutedStyle.Render(c.Description))
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	remaining := c.Duration
	for {
		fmt.Printf("\r⏳ %-10s left", format.Duration(remaining))
		select {
		case <-done:
			return true
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if remaining > 0 {
				remaining--
			}
		}
	}
}

func init() {
	challengesCmd.Flags().StringP("duration", "d", "", "Only challenges of this length: 1m, 5m, 1h")
	challengeCmd.Flags().Bool("no-ui", false, "Plain countdown without interactive UI")
}
