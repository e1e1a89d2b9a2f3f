package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tracked time, sessions and micro-wins",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), "This deletes all tracked time and micro-wins. Continue? [y/N] ") {
			fmt.Println("❌ Nothing was deleted.")
			return
		}

		if err := a.svc.ClearAll(cmd.Context()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		a.log.Info("all data cleared")
		fmt.Println("🗑️  All data cleared")
	}),
}

// confirm prints prompt and reads a yes/no answer from r
func confirm(r io.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
