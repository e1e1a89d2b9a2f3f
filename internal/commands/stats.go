package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/format"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show time spent today",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		today := a.svc.TimeSpentToday()
		wins := a.svc.TodayWins()
		now := a.svc.Now()

		fmt.Println(headingStyle.Render("📅 " + now.Format("Monday, 2 January")))
		fmt.Printf("Time spent: %s\n", format.Duration(today.TotalActiveTime))
		fmt.Printf("Micro-wins: %d\n", len(wins))
		if today.LastActive != nil {
			fmt.Printf("Last session ended %s\n", format.Ago(*today.LastActive, now))
		}
		if session, ok := a.svc.CurrentSession(); ok {
			fmt.Printf("Session running for %s (not counted until stopped)\n",
				format.Duration(int(session.Elapsed(now).Seconds())))
		}

		if len(wins) > 0 {
			fmt.Println()
			printWins(wins, 0, a)
		}
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show stats for the last seven days",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		stats := a.svc.WeeklyStats()
		total := a.svc.Snapshot().TimeData

		fmt.Println(headingStyle.Render("📈 Last 7 days"))
		fmt.Printf("Micro-wins:     %s\n", humanize.Comma(int64(stats.TotalWins)))
		fmt.Printf("Time in wins:   %s\n", format.Duration(stats.TotalTime))
		fmt.Printf("Daily average:  %d wins\n", stats.AverageDaily)

		streak := a.svc.Streak()
		fmt.Printf("Streak:         %d day%s\n", streak, plural(streak))

		fmt.Println()
		fmt.Println(mutedStyle.Render(fmt.Sprintf("All time: %s tracked over %s sessions",
			format.Duration(total.TotalActiveTime), humanize.Comma(int64(total.Sessions)))))
	}),
}
