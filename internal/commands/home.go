package commands

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// runHome prints the dashboard shown when timevate runs without a command
func runHome(cmd *cobra.Command, args []string, a *app) {
	now := a.svc.Now()
	r := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))

	fmt.Println(headingStyle.Render(format.Greeting(now, r)))
	fmt.Printf("%s  %s\n\n", strings.ToUpper(format.WordAt(now)), mutedStyle.Render(now.Format("Monday 15:04")))

	if session, ok := a.svc.CurrentSession(); ok {
		fmt.Printf("⏱️  Session running for %s (since %s)\n",
			format.Duration(int(session.Elapsed(now).Seconds())),
			session.StartTime.In(now.Location()).Format("15:04"))
	} else {
		fmt.Println("No active session. Run 'timevate start' to begin.")
	}

	fmt.Println(todayLine(a.svc.TimeSpentToday()))

	if streak := a.svc.Streak(); streak > 0 {
		fmt.Printf("🔥 Streak: %d day%s\n", streak, plural(streak))
	}

	week := a.svc.WeeklyStats()
	fmt.Printf("📈 This week: %d wins, %s\n", week.TotalWins, format.Duration(week.TotalTime))

	fmt.Println()
	fmt.Println(mutedStyle.Render("timevate help for all commands"))
}

// todayLine summarises TimeSpentToday, whose Sessions field counts today's micro-wins
func todayLine(today models.TimeData) string {
	return fmt.Sprintf("📅 Today: %s across %d micro-win%s",
		format.Duration(today.TotalActiveTime), today.Sessions, plural(today.Sessions))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
