package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/tracking"
	"github.com/balkashynov/timevate/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a time-tracking session",
	Long: `Start a time-tracking session. Opens the interactive stopwatch by default, use --no-ui for simple start.

Examples:
  timevate start          # Start and watch the stopwatch
  timevate start --no-ui  # Start without UI, stop later with 'timevate stop'`,
	Args: cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		session, err := a.svc.StartSession()
		if errors.Is(err, tracking.ErrSessionActive) {
			fmt.Printf("A session is already running since %s\n", session.StartTime.In(a.svc.Location()).Format("15:04:05"))
		} else if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		} else {
			a.log.Info("session started", "id", session.ID)
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			if err == nil {
				fmt.Println("⏱️  Started tracking time")
				fmt.Printf("Started at: %s\n", session.StartTime.In(a.svc.Location()).Format("15:04:05"))
			}
			return
		}

		if err := tui.RunSessionTUI(session, a.svc); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running session",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		session, ok := a.svc.StopSession()
		if !ok {
			fmt.Println("No active time tracking session")
			return
		}
		a.log.Info("session stopped", "id", session.ID, "duration", session.Duration)

		fmt.Println("⏹️  Stopped tracking time")
		fmt.Printf("Session duration: %s\n", format.Duration(session.Duration))
		total := a.svc.Snapshot().TimeData
		fmt.Printf("Total tracked: %s over %d sessions\n", format.Duration(total.TotalActiveTime), total.Sessions)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		session, ok := a.svc.CurrentSession()
		if !ok {
			fmt.Println("No active time tracking session")
			return
		}

		now := a.svc.Now()
		fmt.Println("⏱️  Currently tracking")
		fmt.Printf("Started at: %s (%s)\n",
			session.StartTime.In(a.svc.Location()).Format("15:04:05"),
			format.Ago(session.StartTime, now))
		fmt.Printf("Elapsed time: %s\n", format.Duration(int(session.Elapsed(now).Seconds())))
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start session without interactive UI")
}
