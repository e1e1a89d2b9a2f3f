package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/format"
	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/parser"
	"github.com/balkashynov/timevate/internal/tui"
)

var winCmd = &cobra.Command{
	Use:   "win [description]",
	Short: "Log a micro-win",
	Long: `Log a micro-win: something small you finished and how long it took.

Modes:
  Interactive: timevate win (no arguments)
  Quick: timevate win "Read an article" --duration 5m --category Learning
  Smart parsing: timevate win "Read an article #Learning 5m"

Smart parsing syntax:
  #Category   - Category (one word)
  5m, 90s, 1h - Duration at the end of the text
  2 minutes   - Duration written out at the end of the text`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		noUI, _ := cmd.Flags().GetBool("no-ui")

		parsed := parser.ParseWin(strings.Join(args, " "))
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			parsed.Category = category
		}
		if d, _ := cmd.Flags().GetString("duration"); d != "" {
			seconds, err := parser.ParseDuration(d)
			if err != nil {
				parsed.Errors = append(parsed.Errors, err.Error())
			} else {
				parsed.Duration = seconds
			}
		}

		if len(args) > 0 && parsed.Duration == 0 && len(parsed.Errors) == 0 {
			parsed.Errors = append(parsed.Errors, "Duration is required")
		}

		if len(args) == 0 || len(parsed.Errors) > 0 {
			if noUI {
				fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
				return
			}
			if len(args) > 0 {
				fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
				fmt.Println("Opening interactive mode for confirmation...")
			}
			if err := tui.RunWinTUI(parsed, a.svc); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		win := a.svc.AddMicroWin(models.MicroWin{
			Title:    parsed.Title,
			Category: parsed.Category,
			Duration: parsed.Duration,
		})
		a.log.Info("micro-win added", "id", win.ID, "duration", win.Duration)

		fmt.Printf("✅ Micro-win \"%s\" logged (%s)\n", win.Title, format.Duration(win.Duration))
		if win.Category != "" {
			fmt.Printf("  Category: %s\n", win.Category)
		}
	}),
}

var winsCmd = &cobra.Command{
	Use:   "wins",
	Short: "List recent micro-wins",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		limit, _ := cmd.Flags().GetInt("limit")
		todayOnly, _ := cmd.Flags().GetBool("today")

		wins := a.svc.Snapshot().MicroWins
		if todayOnly {
			wins = a.svc.TodayWins()
		}
		if len(wins) == 0 {
			fmt.Println("No micro-wins yet. Use 'timevate win' or 'timevate challenge' to log one.")
			return
		}

		printWins(wins, limit, a)
	}),
}

// printWins prints wins newest first as a table
func printWins(wins []models.MicroWin, limit int, a *app) {
	if limit > 0 && len(wins) > limit {
		wins = wins[:limit]
	}
	now := a.svc.Now()

	fmt.Printf("%-40s %-14s %-9s %s\n", "TITLE", "CATEGORY", "DURATION", "WHEN")
	fmt.Println(strings.Repeat("-", 80))
	for _, w := range wins {
		// Truncate title if too long
		title := w.Title
		if len([]rune(title)) > 38 {
			title = string([]rune(title)[:35]) + "..."
		}
		category := w.Category
		if len([]rune(category)) > 13 {
			category = string([]rune(category)[:10]) + "..."
		}
		fmt.Printf("%-40s %-14s %-9s %s\n", title, category, format.Duration(w.Duration), format.Ago(w.CompletedAt, now))
	}
}

func init() {
	winCmd.Flags().StringP("category", "c", "", "Category, e.g. Health or Learning")
	winCmd.Flags().StringP("duration", "d", "", "Duration: 90, 90s, 5m, 1h30m, 2 minutes")
	winCmd.Flags().Bool("no-ui", false, "Never open the interactive form")

	winsCmd.Flags().IntP("limit", "n", 20, "Show at most this many wins (0 for all)")
	winsCmd.Flags().Bool("today", false, "Show only today's wins")
}
