package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/timevate/internal/impact"
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "See what a second, a minute or an hour can achieve",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		timeframes := impact.Timeframes()

		if s, _ := cmd.Flags().GetString("timeframe"); s != "" {
			tf, err := impact.ParseTimeframe(s)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			timeframes = []impact.Timeframe{tf}
		}

		fmt.Println(headingStyle.Render("Time Impact"))
		fmt.Println(mutedStyle.Render("Discover what you can achieve"))
		fmt.Println()

		for _, tf := range timeframes {
			fmt.Println(headingStyle.Render("⏱  " + tf.Label()))
			for _, item := range impact.ByTimeframe(tf) {
				title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(item.Color))
				fmt.Printf("  %s %s\n", title.Render(item.Title), mutedStyle.Render("("+item.Category+")"))
				fmt.Printf("    %s\n", item.Description)
				fmt.Printf("    Achievement: %s · Impact: %s\n", item.Value, item.Impact)
			}
			fmt.Println()
		}

		fmt.Println("💡 Small actions compound into extraordinary results.")
	},
}

func init() {
	impactCmd.Flags().StringP("timeframe", "t", "", "Only one timeframe: second, minute or hour")
}
